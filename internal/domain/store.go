package domain

import "time"

type Store struct {
	ID       string
	TenantID string
	Name     string
	// CommissionRate is the platform percentage charged on a settlement's
	// gross value. Snapshotted onto each settlement at generation time.
	CommissionRate float64
	DeliveryFee    int64
	Timezone       string
	Schedule       StoreSchedule
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Location resolves the store's configured timezone. Stores without a
// timezone of their own, or with an unknown one, use fallback; a nil
// fallback means UTC.
func (s *Store) Location(fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.UTC
	}
	if s.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

type StoreRepository interface {
	CreateStore(store *Store) error
	GetStoreByID(storeID string) (*Store, error)
	GetStoresByTenantID(tenantID string) ([]*Store, error)
	UpdateManualOverride(storeID string, closed bool) error
	// ReplaceSchedule swaps the store's mode and the full weekly rule set.
	ReplaceSchedule(storeID string, mode ScheduleMode, rules []WeeklyRule) error
}
