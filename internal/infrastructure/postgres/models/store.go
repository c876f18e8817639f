package models

import "time"

type StoreModel struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	TenantID             string `gorm:"type:uuid;index"`
	Name                 string
	CommissionRate       float64
	DeliveryFee          int64
	Timezone             string
	ScheduleMode         string
	ManualOverrideClosed bool
	Rules                []ScheduleRuleModel `gorm:"foreignKey:StoreID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ScheduleRuleModel holds one weekly opening window. Start/end are nullable:
// a rule without times means closed that day.
type ScheduleRuleModel struct {
	ID          uint   `gorm:"primaryKey"`
	StoreID     string `gorm:"type:uuid;uniqueIndex:idx_store_weekday"`
	Weekday     int    `gorm:"uniqueIndex:idx_store_weekday"`
	Enabled     bool
	StartMinute *int
	EndMinute   *int
}
