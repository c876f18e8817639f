package order

import (
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/metrics"
	orderdto "github.com/pedelocal/pedelocal-order-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(actor domain.Actor, input *orderdto.CreateOrderInput) (*domain.Order, error)
	Transition(actor domain.Actor, orderID string, target domain.OrderStatus) (*domain.Order, error)

	GetOrderByID(actor domain.Actor, orderID string) (*domain.Order, error)
	GetStoreOrders(actor domain.Actor, storeID string, input *orderdto.ListOrdersInput) ([]*domain.Order, int64, error)
	GetCustomerOrders(actor domain.Actor, customerID string, page, limit int64) ([]*domain.Order, int64, error)
}

// EventPublisher is the slice of the Kafka publisher the order flow needs.
type EventPublisher interface {
	PublishOrderStatus(event kafka.OrderStatusEvent) error
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
	AuditSink domain.AuditSink
	Publisher EventPublisher
	Metrics   *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	auditSink domain.AuditSink,
	eventPublisher EventPublisher,
	orderMetrics *metrics.OrderMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo: orderRepo,
		AuditSink: auditSink,
		Publisher: eventPublisher,
		Metrics:   orderMetrics,
	}
}
