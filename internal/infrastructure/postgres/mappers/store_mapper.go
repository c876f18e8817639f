package mappers

import (
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	rules := make(map[time.Weekday]domain.WeeklyRule, len(model.Rules))
	for _, r := range model.Rules {
		rules[time.Weekday(r.Weekday)] = toDomainRule(r)
	}

	return &domain.Store{
		ID:             model.ID,
		TenantID:       model.TenantID,
		Name:           model.Name,
		CommissionRate: model.CommissionRate,
		DeliveryFee:    model.DeliveryFee,
		Timezone:       model.Timezone,
		Schedule: domain.StoreSchedule{
			Mode:                 domain.ScheduleMode(model.ScheduleMode),
			ManualOverrideClosed: model.ManualOverrideClosed,
			WeeklyRules:          rules,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// toDomainRule disables rules with missing times; the evaluator treats
// them as closed.
func toDomainRule(r models.ScheduleRuleModel) domain.WeeklyRule {
	rule := domain.WeeklyRule{
		Weekday: time.Weekday(r.Weekday),
		Enabled: r.Enabled && r.StartMinute != nil && r.EndMinute != nil,
	}
	if r.StartMinute != nil {
		rule.StartMinute = *r.StartMinute
	}
	if r.EndMinute != nil {
		rule.EndMinute = *r.EndMinute
	}
	return rule
}

func ToGORMStore(store *domain.Store) *models.StoreModel {
	rules := make([]models.ScheduleRuleModel, 0, len(store.Schedule.WeeklyRules))
	for _, r := range store.Schedule.WeeklyRules {
		rules = append(rules, ToGORMScheduleRule(store.ID, r))
	}

	return &models.StoreModel{
		ID:                   store.ID,
		TenantID:             store.TenantID,
		Name:                 store.Name,
		CommissionRate:       store.CommissionRate,
		DeliveryFee:          store.DeliveryFee,
		Timezone:             store.Timezone,
		ScheduleMode:         string(store.Schedule.Mode),
		ManualOverrideClosed: store.Schedule.ManualOverrideClosed,
		Rules:                rules,
		CreatedAt:            store.CreatedAt,
		UpdatedAt:            store.UpdatedAt,
	}
}

func ToGORMScheduleRule(storeID string, r domain.WeeklyRule) models.ScheduleRuleModel {
	start, end := r.StartMinute, r.EndMinute
	return models.ScheduleRuleModel{
		StoreID:     storeID,
		Weekday:     int(r.Weekday),
		Enabled:     r.Enabled,
		StartMinute: &start,
		EndMinute:   &end,
	}
}
