package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
)

type StoreUsecase interface {
	GetStore(storeID string, now time.Time) (*StoreListing, error)
	ListStores(tenantID string, now time.Time) ([]*StoreListing, error)
	SetManualOverride(actor domain.Actor, storeID string, closed bool) error
	UpdateSchedule(actor domain.Actor, storeID string, mode domain.ScheduleMode, rules []domain.WeeklyRule) error
}

// StoreListing is a store plus its availability computed for this read.
// Open/closed is never persisted; it is re-evaluated on every listing.
type StoreListing struct {
	Store  *domain.Store
	IsOpen bool
}

type DefaultStoreUsecase struct {
	StoreRepo domain.StoreRepository
	AuditSink domain.AuditSink
	// DefaultLoc is the marketplace-wide timezone for stores that have
	// none of their own.
	DefaultLoc *time.Location
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository, auditSink domain.AuditSink, defaultLoc *time.Location) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{StoreRepo: storeRepo, AuditSink: auditSink, DefaultLoc: defaultLoc}
}

func (uc *DefaultStoreUsecase) GetStore(storeID string, now time.Time) (*StoreListing, error) {
	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}
	return &StoreListing{
		Store:  store,
		IsOpen: store.Schedule.IsOpenAt(now, store.Location(uc.DefaultLoc)),
	}, nil
}

func (uc *DefaultStoreUsecase) ListStores(tenantID string, now time.Time) ([]*StoreListing, error) {
	stores, err := uc.StoreRepo.GetStoresByTenantID(tenantID)
	if err != nil {
		return nil, err
	}

	listings := make([]*StoreListing, len(stores))
	for i, store := range stores {
		listings[i] = &StoreListing{
			Store:  store,
			IsOpen: store.Schedule.IsOpenAt(now, store.Location(uc.DefaultLoc)),
		}
	}
	return listings, nil
}

// SetManualOverride flips the store's force-closed switch. It only ever
// forces closed; clearing it hands control back to the schedule.
func (uc *DefaultStoreUsecase) SetManualOverride(actor domain.Actor, storeID string, closed bool) error {
	if err := authorizeStoreWrite(actor, storeID); err != nil {
		return err
	}

	if err := uc.StoreRepo.UpdateManualOverride(storeID, closed); err != nil {
		return err
	}

	uc.appendAudit(&domain.AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     "store.manual_override",
		EntityType: "store",
		EntityID:   storeID,
		AfterValue: fmt.Sprintf("closed=%t", closed),
		CreatedAt:  time.Now(),
	})
	return nil
}

func (uc *DefaultStoreUsecase) UpdateSchedule(actor domain.Actor, storeID string, mode domain.ScheduleMode, rules []domain.WeeklyRule) error {
	if err := authorizeStoreWrite(actor, storeID); err != nil {
		return err
	}
	if err := validateSchedule(mode, rules); err != nil {
		return err
	}

	if err := uc.StoreRepo.ReplaceSchedule(storeID, mode, rules); err != nil {
		return err
	}

	uc.appendAudit(&domain.AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     "store.schedule_update",
		EntityType: "store",
		EntityID:   storeID,
		AfterValue: string(mode),
		CreatedAt:  time.Now(),
	})
	return nil
}

func authorizeStoreWrite(actor domain.Actor, storeID string) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleLoja:
		if actor.StoreID == storeID {
			return nil
		}
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}

func validateSchedule(mode domain.ScheduleMode, rules []domain.WeeklyRule) error {
	switch mode {
	case domain.ModeAlwaysOpen, domain.ModeAlwaysClosed, domain.ModeWeekly:
	default:
		return fmt.Errorf("unknown schedule mode %q", mode)
	}

	seen := make(map[time.Weekday]bool, len(rules))
	for _, rule := range rules {
		if rule.Weekday < time.Sunday || rule.Weekday > time.Saturday {
			return fmt.Errorf("invalid weekday %d", rule.Weekday)
		}
		if seen[rule.Weekday] {
			return fmt.Errorf("duplicate rule for %s", rule.Weekday)
		}
		seen[rule.Weekday] = true

		if rule.StartMinute < 0 || rule.StartMinute >= 1440 || rule.EndMinute < 0 || rule.EndMinute >= 1440 {
			return fmt.Errorf("rule for %s: minutes must be in [0,1440)", rule.Weekday)
		}
	}
	return nil
}

func (uc *DefaultStoreUsecase) appendAudit(entry *domain.AuditEntry) {
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
