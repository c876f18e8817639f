package orderdto

import "github.com/pedelocal/pedelocal-order-service/internal/domain"

type CreateOrderInput struct {
	StoreID     string
	CustomerID  string
	Items       []domain.OrderItem
	DeliveryFee int64
}

type ListOrdersInput struct {
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string
	Filters   domain.OrderFilters
}
