package settlement

import (
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/metrics"
)

type SettlementUsecase interface {
	Generate(actor domain.Actor, storeID string, periodStart, periodEnd time.Time) (*domain.Settlement, error)
	Process(actor domain.Actor, settlementID string, newStatus domain.SettlementStatus, note string) (*domain.Settlement, error)
	GetStoreSettlements(actor domain.Actor, storeID string) ([]*domain.Settlement, error)
}

type EventPublisher interface {
	PublishSettlement(event kafka.SettlementEvent) error
}

type DefaultSettlementUsecase struct {
	SettlementRepo domain.SettlementRepository
	OrderRepo      domain.OrderRepository
	StoreRepo      domain.StoreRepository
	AuditSink      domain.AuditSink
	Publisher      EventPublisher
	Metrics        *metrics.OrderMetrics
}

func NewDefaultSettlementUsecase(
	settlementRepo domain.SettlementRepository,
	orderRepo domain.OrderRepository,
	storeRepo domain.StoreRepository,
	auditSink domain.AuditSink,
	eventPublisher EventPublisher,
	orderMetrics *metrics.OrderMetrics) *DefaultSettlementUsecase {

	return &DefaultSettlementUsecase{
		SettlementRepo: settlementRepo,
		OrderRepo:      orderRepo,
		StoreRepo:      storeRepo,
		AuditSink:      auditSink,
		Publisher:      eventPublisher,
		Metrics:        orderMetrics,
	}
}
