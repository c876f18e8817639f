package models

import (
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
)

type SettlementModel struct {
	ID                string `gorm:"primaryKey"`
	StoreID           string `gorm:"type:uuid;index"`
	PeriodStart       time.Time
	PeriodEnd         time.Time
	OrderCount        int64
	GrossValue        int64
	DeliveryFeesTotal int64
	CommissionRate    float64
	CommissionAmount  int64
	NetValue          int64
	Status            domain.SettlementStatus `gorm:"index"`
	Note              string
	PaidAt            *time.Time
	CreatedAt         time.Time
}
