package kafka

const OrderStatusTopic = "order-status-events"

type OrderStatusEvent struct {
	OrderID    string `json:"order_id"`
	StoreID    string `json:"store_id"`
	CustomerID string `json:"customer_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorRole  string `json:"actor_role"`
	Total      int64  `json:"total"`
}
