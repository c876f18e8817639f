package order

import (
	"log/slog"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
)

// Transition moves an order to target if the actor is allowed to and the
// move is a legal forward step. The status write is conditioned on the
// status read here; a concurrent writer makes this call fail with
// ErrStaleState and the caller re-reads and retries.
//
// Once the status write commits it is authoritative: audit, events and
// metrics are best-effort and never roll it back.
func (uc *DefaultOrderUsecase) Transition(actor domain.Actor, orderID string, target domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeStatusWrite(actor, order); err != nil {
		uc.recordTransitionError(order.StoreID, "forbidden")
		return nil, err
	}

	if !domain.ValidStatus(target) || !domain.CanTransition(order.Status, target) {
		uc.recordTransitionError(order.StoreID, "invalid_transition")
		return nil, domain.ErrInvalidTransition
	}

	from := order.Status
	if err := uc.OrderRepo.UpdateOrderStatus(orderID, from, target); err != nil {
		if err == domain.ErrStaleState {
			uc.recordTransitionError(order.StoreID, "stale_state")
		}
		return nil, err
	}

	now := time.Now()
	order.Status = target
	order.UpdatedAt = now

	uc.appendAudit(&domain.AuditEntry{
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      "order.transition",
		EntityType:  "order",
		EntityID:    order.ID,
		BeforeValue: string(from),
		AfterValue:  string(target),
		CreatedAt:   now,
	})

	if uc.Publisher != nil {
		go func(event kafka.OrderStatusEvent) {
			if err := uc.Publisher.PublishOrderStatus(event); err != nil {
				slog.Error("failed to publish kafka order event", "stage", "transition", "error", err.Error())
			}
		}(kafka.OrderStatusEvent{
			OrderID:    order.ID,
			StoreID:    order.StoreID,
			CustomerID: order.CustomerID,
			FromStatus: string(from),
			ToStatus:   string(target),
			ActorRole:  string(actor.Role),
			Total:      order.Total,
		})
	}

	uc.recordTransitionMetrics(order, from, target, now)

	return order, nil
}

func (uc *DefaultOrderUsecase) appendAudit(entry *domain.AuditEntry) {
	if uc.AuditSink == nil {
		return
	}
	if err := uc.AuditSink.Append(entry); err != nil {
		slog.Error("failed to append audit entry",
			"action", entry.Action,
			"entity_id", entry.EntityID,
			"error", err.Error(),
		)
	}
}

func (uc *DefaultOrderUsecase) recordTransitionError(storeID, errorType string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordTransitionError(storeID, errorType)
	}
}

func (uc *DefaultOrderUsecase) recordTransitionMetrics(order *domain.Order, from, to domain.OrderStatus, now time.Time) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordTransition(order.StoreID, string(from), string(to))
	switch to {
	case domain.StatusEntregue:
		uc.Metrics.RecordOrderDelivered(order.StoreID, order.Total)
	case domain.StatusCancelado:
		uc.Metrics.RecordOrderCanceled(order.StoreID)
	default:
		return
	}
	uc.Metrics.RecordFulfillmentDuration(order.StoreID, string(to), now.Sub(order.CreatedAt).Seconds())
}
