package repository

import (
	"errors"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/mappers"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSettlementRepository struct {
	DB *gorm.DB
}

func NewDefaultSettlementRepository(db *gorm.DB) *DefaultSettlementRepository {
	return &DefaultSettlementRepository{DB: db}
}

func (r *DefaultSettlementRepository) CreateSettlement(settlement *domain.Settlement) error {
	settlementModel := mappers.ToGORMSettlement(settlement)
	return r.DB.Create(settlementModel).Error
}

func (r *DefaultSettlementRepository) GetSettlementByID(settlementID string) (*domain.Settlement, error) {
	var settlement models.SettlementModel
	if err := r.DB.First(&settlement, "id = ?", settlementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainSettlement(&settlement), nil
}

// MarkSettlementPaid is conditioned on the row still being pendente, same
// optimistic pattern as order status writes.
func (r *DefaultSettlementRepository) MarkSettlementPaid(settlementID string, note string, paidAt time.Time) error {
	res := r.DB.Model(&models.SettlementModel{}).
		Where("id = ? AND status = ?", settlementID, domain.SettlementPendente).
		Updates(map[string]interface{}{
			"status":  domain.SettlementPago,
			"note":    note,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.SettlementModel{}).Where("id = ?", settlementID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrStaleState
	}
	return nil
}

func (r *DefaultSettlementRepository) GetSettlementsByStoreID(storeID string) ([]*domain.Settlement, error) {
	var settlementModels []models.SettlementModel
	if err := r.DB.
		Where("store_id = ?", storeID).
		Order("period_start DESC").
		Find(&settlementModels).Error; err != nil {
		return nil, err
	}

	settlements := make([]*domain.Settlement, len(settlementModels))
	for i, settlementModel := range settlementModels {
		settlements[i] = mappers.ToDomainSettlement(&settlementModel)
	}

	return settlements, nil
}
