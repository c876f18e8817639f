package store

import (
	"errors"
	"testing"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
)

type stubStoreRepo struct {
	stores       map[string]*domain.Store
	lastOverride *bool
	lastMode     domain.ScheduleMode
	lastRules    []domain.WeeklyRule
}

func (s *stubStoreRepo) CreateStore(store *domain.Store) error {
	s.stores[store.ID] = store
	return nil
}

func (s *stubStoreRepo) GetStoreByID(id string) (*domain.Store, error) {
	store, ok := s.stores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func (s *stubStoreRepo) GetStoresByTenantID(tenantID string) ([]*domain.Store, error) {
	var out []*domain.Store
	for _, store := range s.stores {
		if store.TenantID == tenantID {
			out = append(out, store)
		}
	}
	return out, nil
}

func (s *stubStoreRepo) UpdateManualOverride(id string, closed bool) error {
	if _, ok := s.stores[id]; !ok {
		return domain.ErrNotFound
	}
	s.lastOverride = &closed
	s.stores[id].Schedule.ManualOverrideClosed = closed
	return nil
}

func (s *stubStoreRepo) ReplaceSchedule(id string, mode domain.ScheduleMode, rules []domain.WeeklyRule) error {
	if _, ok := s.stores[id]; !ok {
		return domain.ErrNotFound
	}
	s.lastMode = mode
	s.lastRules = rules
	return nil
}

func fixture() (*DefaultStoreUsecase, *stubStoreRepo) {
	repo := &stubStoreRepo{stores: map[string]*domain.Store{
		"store-a": {
			ID:       "store-a",
			TenantID: "city-1",
			Name:     "Cantina da Vila",
			Timezone: "UTC",
			Schedule: domain.StoreSchedule{Mode: domain.ModeAlwaysOpen},
		},
		"store-b": {
			ID:       "store-b",
			TenantID: "city-1",
			Name:     "Padoca do Centro",
			Timezone: "UTC",
			Schedule: domain.StoreSchedule{Mode: domain.ModeAlwaysClosed},
		},
	}}
	return NewDefaultStoreUsecase(repo, nil, time.UTC), repo
}

func TestGetStoreUsesDefaultTimezoneFallback(t *testing.T) {
	// Open 09:00-18:00 on Mondays, no timezone of its own: the evaluation
	// must run in the marketplace default, not UTC.
	repo := &stubStoreRepo{stores: map[string]*domain.Store{
		"store-c": {
			ID:       "store-c",
			TenantID: "city-1",
			Schedule: domain.StoreSchedule{
				Mode: domain.ModeWeekly,
				WeeklyRules: map[time.Weekday]domain.WeeklyRule{
					time.Monday: {Weekday: time.Monday, Enabled: true, StartMinute: 9 * 60, EndMinute: 18 * 60},
				},
			},
		},
	}}
	uc := NewDefaultStoreUsecase(repo, nil, time.FixedZone("UTC-3", -3*3600))

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// 11:00 UTC is 08:00 local: closed, even though a UTC fallback would
	// report open.
	listing, err := uc.GetStore("store-c", monday.Add(11*time.Hour))
	if err != nil {
		t.Fatalf("GetStore: %v", err)
	}
	if listing.IsOpen {
		t.Error("expected closed at 08:00 in the default timezone")
	}

	// 13:00 UTC is 10:00 local: open.
	listing, _ = uc.GetStore("store-c", monday.Add(13*time.Hour))
	if !listing.IsOpen {
		t.Error("expected open at 10:00 in the default timezone")
	}
}

func TestListStoresComputesAvailabilityPerRead(t *testing.T) {
	uc, _ := fixture()
	listings, err := uc.ListStores("city-1", time.Now())
	if err != nil {
		t.Fatalf("ListStores: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("listings = %d, want 2", len(listings))
	}
	byID := map[string]bool{}
	for _, l := range listings {
		byID[l.Store.ID] = l.IsOpen
	}
	if !byID["store-a"] || byID["store-b"] {
		t.Errorf("availability = %v, want store-a open and store-b closed", byID)
	}
}

func TestSetManualOverrideClosesListing(t *testing.T) {
	uc, _ := fixture()
	owner := domain.Actor{ID: "owner-a", Role: domain.RoleLoja, StoreID: "store-a"}

	if err := uc.SetManualOverride(owner, "store-a", true); err != nil {
		t.Fatalf("SetManualOverride: %v", err)
	}
	listing, err := uc.GetStore("store-a", time.Now())
	if err != nil {
		t.Fatalf("GetStore: %v", err)
	}
	if listing.IsOpen {
		t.Error("override must force the listing closed")
	}

	if err := uc.SetManualOverride(owner, "store-a", false); err != nil {
		t.Fatalf("clear override: %v", err)
	}
	listing, _ = uc.GetStore("store-a", time.Now())
	if !listing.IsOpen {
		t.Error("clearing the override must hand back to the schedule")
	}
}

func TestStoreWriteAuthorization(t *testing.T) {
	uc, _ := fixture()

	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"foreign loja", domain.Actor{ID: "x", Role: domain.RoleLoja, StoreID: "store-b"}, domain.ErrForbidden},
		{"cliente", domain.Actor{ID: "x", Role: domain.RoleCliente}, domain.ErrForbidden},
		{"admin", domain.Actor{ID: "x", Role: domain.RoleAdmin}, nil},
	}
	for _, tt := range tests {
		err := uc.SetManualOverride(tt.actor, "store-a", true)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestUpdateScheduleValidation(t *testing.T) {
	uc, repo := fixture()
	owner := domain.Actor{ID: "owner-a", Role: domain.RoleLoja, StoreID: "store-a"}

	good := []domain.WeeklyRule{
		{Weekday: time.Monday, Enabled: true, StartMinute: 18 * 60, EndMinute: 2 * 60},
		{Weekday: time.Tuesday, Enabled: false},
	}
	if err := uc.UpdateSchedule(owner, "store-a", domain.ModeWeekly, good); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}
	if repo.lastMode != domain.ModeWeekly || len(repo.lastRules) != 2 {
		t.Errorf("schedule not forwarded to repo: mode=%s rules=%d", repo.lastMode, len(repo.lastRules))
	}

	bad := [][]domain.WeeklyRule{
		{{Weekday: time.Monday, Enabled: true, StartMinute: 0, EndMinute: 1440}},
		{{Weekday: time.Monday, Enabled: true, StartMinute: -1, EndMinute: 600}},
		{
			{Weekday: time.Monday, Enabled: true, StartMinute: 0, EndMinute: 600},
			{Weekday: time.Monday, Enabled: true, StartMinute: 700, EndMinute: 800},
		},
	}
	for i, rules := range bad {
		if err := uc.UpdateSchedule(owner, "store-a", domain.ModeWeekly, rules); err == nil {
			t.Errorf("case %d: invalid schedule accepted", i)
		}
	}

	if err := uc.UpdateSchedule(owner, "store-a", "sometimes", nil); err == nil {
		t.Error("unknown mode accepted")
	}
}
