package order

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
	orderdto "github.com/pedelocal/pedelocal-order-service/internal/usecase/dto/order"
)

// CreateOrder persists a new pendente order. Totals are derived here and
// nowhere else: subtotal from the items, total = subtotal + delivery fee.
func (uc *DefaultOrderUsecase) CreateOrder(actor domain.Actor, input *orderdto.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if input.DeliveryFee < 0 {
		return nil, fmt.Errorf("delivery fee must be non-negative")
	}

	var subtotal int64
	for _, item := range input.Items {
		if item.UnitPrice < 0 || item.Quantity < 1 {
			return nil, fmt.Errorf("invalid item %s: price and quantity must be non-negative", item.ProductID)
		}
		subtotal += item.UnitPrice * item.Quantity
	}

	now := time.Now()
	order := &domain.Order{
		ID:          uuid.New().String(),
		StoreID:     input.StoreID,
		CustomerID:  input.CustomerID,
		Items:       input.Items,
		Subtotal:    subtotal,
		DeliveryFee: input.DeliveryFee,
		Total:       subtotal + input.DeliveryFee,
		Status:      domain.StatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	uc.appendAudit(&domain.AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     "order.create",
		EntityType: "order",
		EntityID:   order.ID,
		AfterValue: string(domain.StatusPendente),
		CreatedAt:  now,
	})

	if uc.Publisher != nil {
		go func(event kafka.OrderStatusEvent) {
			if err := uc.Publisher.PublishOrderStatus(event); err != nil {
				slog.Error("failed to publish kafka order event", "stage", "creation", "error", err.Error())
			}
		}(kafka.OrderStatusEvent{
			OrderID:    order.ID,
			StoreID:    order.StoreID,
			CustomerID: order.CustomerID,
			ToStatus:   string(domain.StatusPendente),
			ActorRole:  string(actor.Role),
			Total:      order.Total,
		})
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCreated(order.StoreID, order.Total)
	}

	return order, nil
}
