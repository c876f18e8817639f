package domain

import "time"

type SettlementStatus string

const (
	SettlementPendente SettlementStatus = "pendente"
	SettlementPago     SettlementStatus = "pago"
)

// Settlement is one store's payout over a half-open period
// [PeriodStart, PeriodEnd). Monetary fields are integer centavos, so
// NetValue = GrossValue - CommissionAmount holds exactly.
type Settlement struct {
	ID                string
	StoreID           string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	OrderCount        int64
	GrossValue        int64
	DeliveryFeesTotal int64
	// CommissionRate is the store's rate at generation time. Immutable on
	// the settlement even if the store's rate later changes.
	CommissionRate   float64
	CommissionAmount int64
	NetValue         int64
	Status           SettlementStatus
	Note             string
	PaidAt           *time.Time
	CreatedAt        time.Time
}

type SettlementRepository interface {
	CreateSettlement(settlement *Settlement) error
	GetSettlementByID(settlementID string) (*Settlement, error)
	// MarkSettlementPaid flips pendente -> pago, returning ErrStaleState
	// if the row is no longer pendente.
	MarkSettlementPaid(settlementID string, note string, paidAt time.Time) error
	GetSettlementsByStoreID(storeID string) ([]*Settlement, error)
}
