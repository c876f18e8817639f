package repository

import (
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type PGAuditSink struct {
	DB *gorm.DB
}

func NewPGAuditSink(db *gorm.DB) *PGAuditSink {
	return &PGAuditSink{DB: db}
}

func (s *PGAuditSink) Append(entry *domain.AuditEntry) error {
	model := models.AuditEntryModel{
		ActorID:     entry.ActorID,
		ActorRole:   string(entry.ActorRole),
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		BeforeValue: entry.BeforeValue,
		AfterValue:  entry.AfterValue,
		Note:        entry.Note,
		CreatedAt:   entry.CreatedAt,
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}
	return s.DB.Create(&model).Error
}
