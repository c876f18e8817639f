package mappers

import (
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
)

func ToDomainSettlement(model *models.SettlementModel) *domain.Settlement {
	return &domain.Settlement{
		ID:                model.ID,
		StoreID:           model.StoreID,
		PeriodStart:       model.PeriodStart,
		PeriodEnd:         model.PeriodEnd,
		OrderCount:        model.OrderCount,
		GrossValue:        model.GrossValue,
		DeliveryFeesTotal: model.DeliveryFeesTotal,
		CommissionRate:    model.CommissionRate,
		CommissionAmount:  model.CommissionAmount,
		NetValue:          model.NetValue,
		Status:            model.Status,
		Note:              model.Note,
		PaidAt:            model.PaidAt,
		CreatedAt:         model.CreatedAt,
	}
}

func ToGORMSettlement(settlement *domain.Settlement) *models.SettlementModel {
	return &models.SettlementModel{
		ID:                settlement.ID,
		StoreID:           settlement.StoreID,
		PeriodStart:       settlement.PeriodStart,
		PeriodEnd:         settlement.PeriodEnd,
		OrderCount:        settlement.OrderCount,
		GrossValue:        settlement.GrossValue,
		DeliveryFeesTotal: settlement.DeliveryFeesTotal,
		CommissionRate:    settlement.CommissionRate,
		CommissionAmount:  settlement.CommissionAmount,
		NetValue:          settlement.NetValue,
		Status:            settlement.Status,
		Note:              settlement.Note,
		PaidAt:            settlement.PaidAt,
		CreatedAt:         settlement.CreatedAt,
	}
}
