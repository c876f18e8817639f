package settlement

import (
	"log/slog"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
)

// Process applies the only legal settlement transition, pendente -> pago,
// recording the payment timestamp. Pago is terminal: there is no reversal
// path. Every call lands in the audit trail, successful or not, with the
// requested status and note.
func (uc *DefaultSettlementUsecase) Process(actor domain.Actor, settlementID string, newStatus domain.SettlementStatus, note string) (*domain.Settlement, error) {
	settlement, err := uc.SettlementRepo.GetSettlementByID(settlementID)
	if err != nil {
		return nil, err
	}

	from := settlement.Status
	result, err := uc.process(actor, settlement, newStatus, note)

	auditNote := note
	if err != nil {
		auditNote = note + " (rejeitado: " + err.Error() + ")"
	}
	uc.appendAudit(&domain.AuditEntry{
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      "settlement.process",
		EntityType:  "settlement",
		EntityID:    settlementID,
		BeforeValue: string(from),
		AfterValue:  string(newStatus),
		Note:        auditNote,
		CreatedAt:   time.Now(),
	})

	return result, err
}

func (uc *DefaultSettlementUsecase) process(actor domain.Actor, settlement *domain.Settlement, newStatus domain.SettlementStatus, note string) (*domain.Settlement, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if newStatus != domain.SettlementPago || settlement.Status != domain.SettlementPendente {
		return nil, domain.ErrInvalidTransition
	}

	paidAt := time.Now()
	if err := uc.SettlementRepo.MarkSettlementPaid(settlement.ID, note, paidAt); err != nil {
		return nil, err
	}

	settlement.Status = domain.SettlementPago
	settlement.Note = note
	settlement.PaidAt = &paidAt

	if uc.Publisher != nil {
		go func(event kafka.SettlementEvent) {
			if err := uc.Publisher.PublishSettlement(event); err != nil {
				slog.Error("failed to publish kafka settlement event", "stage", "payment", "error", err.Error())
			}
		}(kafka.SettlementEvent{
			SettlementID: settlement.ID,
			StoreID:      settlement.StoreID,
			Status:       string(domain.SettlementPago),
			GrossValue:   settlement.GrossValue,
			NetValue:     settlement.NetValue,
		})
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordSettlementPaid(settlement.StoreID)
	}

	return settlement, nil
}

// GetStoreSettlements lets a store inspect its own payout history; admins
// see any store's.
func (uc *DefaultSettlementUsecase) GetStoreSettlements(actor domain.Actor, storeID string) ([]*domain.Settlement, error) {
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleLoja && actor.StoreID == storeID) {
		return nil, domain.ErrForbidden
	}
	return uc.SettlementRepo.GetSettlementsByStoreID(storeID)
}
