package models

import (
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
)

type OrderModel struct {
	ID          string             `gorm:"primaryKey;type:uuid"`
	StoreID     string             `gorm:"type:uuid;index:idx_store_status"`
	CustomerID  string             `gorm:"type:uuid;index"`
	Subtotal    int64
	DeliveryFee int64
	Total       int64
	Status      domain.OrderStatus `gorm:"index:idx_store_status"`
	Items       []OrderItemModel   `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `gorm:"index:idx_created_at"`
	UpdatedAt   time.Time
}

type OrderItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   string `gorm:"type:uuid;index"`
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int64
	Note      string
}
