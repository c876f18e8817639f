package repository

import (
	"errors"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/mappers"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) CreateStore(store *domain.Store) error {
	storeModel := mappers.ToGORMStore(store)
	return r.DB.Create(storeModel).Error
}

func (r *DefaultStoreRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	var store models.StoreModel
	if err := r.DB.Preload("Rules").First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainStore(&store), nil
}

func (r *DefaultStoreRepository) GetStoresByTenantID(tenantID string) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.DB.Preload("Rules").
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, err
	}

	stores := make([]*domain.Store, len(storeModels))
	for i, storeModel := range storeModels {
		stores[i] = mappers.ToDomainStore(&storeModel)
	}

	return stores, nil
}

func (r *DefaultStoreRepository) UpdateManualOverride(storeID string, closed bool) error {
	res := r.DB.Model(&models.StoreModel{}).
		Where("id = ?", storeID).
		Updates(map[string]interface{}{
			"manual_override_closed": closed,
			"updated_at":             time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceSchedule swaps mode and rules in one transaction so a listing read
// never sees a half-replaced week.
func (r *DefaultStoreRepository) ReplaceSchedule(storeID string, mode domain.ScheduleMode, rules []domain.WeeklyRule) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.StoreModel{}).
			Where("id = ?", storeID).
			Updates(map[string]interface{}{
				"schedule_mode": string(mode),
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Where("store_id = ?", storeID).Delete(&models.ScheduleRuleModel{}).Error; err != nil {
			return err
		}

		for _, rule := range rules {
			ruleModel := mappers.ToGORMScheduleRule(storeID, rule)
			if err := tx.Create(&ruleModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
