package models

import "time"

type AuditEntryModel struct {
	ID          uint   `gorm:"primaryKey"`
	ActorID     string `gorm:"index"`
	ActorRole   string
	Action      string
	EntityType  string `gorm:"index:idx_entity"`
	EntityID    string `gorm:"index:idx_entity"`
	BeforeValue string
	AfterValue  string
	Note        string
	CreatedAt   time.Time
}
