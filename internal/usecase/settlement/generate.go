package settlement

import (
	"log/slog"
	"math"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
)

// Generate aggregates a store's delivered orders created in
// [periodStart, periodEnd) into a pendente settlement. The store's current
// commission rate is snapshotted onto the record and stays fixed there.
//
// A period with no qualifying orders still yields a settlement, with all
// monetary fields zero. Generation does not detect overlap with previous
// periods; callers serialize generation per store and keep periods disjoint.
func (uc *DefaultSettlementUsecase) Generate(actor domain.Actor, storeID string, periodStart, periodEnd time.Time) (*domain.Settlement, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if periodStart.After(periodEnd) {
		return nil, domain.ErrInvalidPeriod
	}

	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}

	orders, err := uc.OrderRepo.GetDeliveredOrders(storeID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	var gross, deliveryFees int64
	for _, order := range orders {
		gross += order.Total
		deliveryFees += order.DeliveryFee
	}

	// Single rounding point; net is then exact by construction.
	commission := int64(math.Round(float64(gross) * store.CommissionRate / 100))

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	settlement := &domain.Settlement{
		ID:                idGenerator(),
		StoreID:           storeID,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		OrderCount:        int64(len(orders)),
		GrossValue:        gross,
		DeliveryFeesTotal: deliveryFees,
		CommissionRate:    store.CommissionRate,
		CommissionAmount:  commission,
		NetValue:          gross - commission,
		Status:            domain.SettlementPendente,
		CreatedAt:         time.Now(),
	}

	if err := uc.SettlementRepo.CreateSettlement(settlement); err != nil {
		return nil, err
	}

	uc.appendAudit(&domain.AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     "settlement.generate",
		EntityType: "settlement",
		EntityID:   settlement.ID,
		AfterValue: string(domain.SettlementPendente),
		CreatedAt:  settlement.CreatedAt,
	})

	if uc.Publisher != nil {
		go func(event kafka.SettlementEvent) {
			if err := uc.Publisher.PublishSettlement(event); err != nil {
				slog.Error("failed to publish kafka settlement event", "stage", "generation", "error", err.Error())
			}
		}(kafka.SettlementEvent{
			SettlementID: settlement.ID,
			StoreID:      settlement.StoreID,
			Status:       string(settlement.Status),
			GrossValue:   settlement.GrossValue,
			NetValue:     settlement.NetValue,
		})
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordSettlementGenerated(storeID, gross, commission, settlement.NetValue)
	}

	return settlement, nil
}

func (uc *DefaultSettlementUsecase) appendAudit(entry *domain.AuditEntry) {
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
