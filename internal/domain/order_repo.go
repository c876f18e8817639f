package domain

import "time"

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	// UpdateOrderStatus writes newStatus only if the row still holds
	// oldStatus, returning ErrStaleState otherwise.
	UpdateOrderStatus(orderID string, oldStatus, newStatus OrderStatus) error
	GetOrdersByStoreID(storeID string, filters OrderFilters, page, limit int64, sortBy, sortOrder string) ([]*Order, int64, error)
	GetOrdersByCustomerID(customerID string, page, limit int64) ([]*Order, int64, error)
	// GetDeliveredOrders returns the store's entregue orders created in
	// [from, to).
	GetDeliveredOrders(storeID string, from, to time.Time) ([]*Order, error)
}
