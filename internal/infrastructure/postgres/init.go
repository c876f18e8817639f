package postgres

import (
	"log"

	"github.com/pedelocal/pedelocal-order-service/internal/config"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.StoreModel{},
		&models.ScheduleRuleModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.SettlementModel{},
		&models.AuditEntryModel{},
	)

	return db
}
