package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics groups the Prometheus series for order and settlement flows.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	OrderTransitionsTotal prometheus.CounterVec
	TransitionErrorsTotal prometheus.CounterVec

	OrdersDeliveredTotal       prometheus.CounterVec
	OrdersDeliveredAmountTotal prometheus.CounterVec
	OrdersCanceledTotal        prometheus.CounterVec

	OrderFulfillmentDuration prometheus.HistogramVec

	SettlementsGeneratedTotal prometheus.CounterVec
	SettlementsPaidTotal      prometheus.CounterVec
	SettlementGrossTotal      prometheus.CounterVec
	SettlementCommissionTotal prometheus.CounterVec
	SettlementNetTotal        prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created through checkout",
			},
			[]string{"store_id"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total value of created orders in centavos",
			},
			[]string{"store_id"},
		),

		OrderTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Accepted order status transitions",
			},
			[]string{"store_id", "from", "to"},
		),

		TransitionErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transition_errors_total",
				Help: "Rejected order status transitions",
			},
			[]string{"store_id", "error_type"},
		),

		OrdersDeliveredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_total",
				Help: "Orders that reached entregue",
			},
			[]string{"store_id"},
		),

		OrdersDeliveredAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_amount_total",
				Help: "Total value of delivered orders in centavos",
			},
			[]string{"store_id"},
		),

		OrdersCanceledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_canceled_total",
				Help: "Orders that reached cancelado",
			},
			[]string{"store_id"},
		),

		OrderFulfillmentDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_fulfillment_duration_seconds",
				Help:    "Time from creation to a terminal status",
				Buckets: prometheus.ExponentialBuckets(60, 2, 10), // 1m, 2m, 4m...
			},
			[]string{"store_id", "final_status"},
		),

		SettlementsGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlements_generated_total",
				Help: "Settlements generated per store",
			},
			[]string{"store_id"},
		),

		SettlementsPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlements_paid_total",
				Help: "Settlements moved to pago",
			},
			[]string{"store_id"},
		),

		SettlementGrossTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_gross_total",
				Help: "Gross settled value in centavos",
			},
			[]string{"store_id"},
		),

		SettlementCommissionTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_commission_total",
				Help: "Platform commission in centavos",
			},
			[]string{"store_id"},
		),

		SettlementNetTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_net_total",
				Help: "Net payout to stores in centavos",
			},
			[]string{"store_id"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(storeID string, total int64) {
	m.OrdersCreatedTotal.WithLabelValues(storeID).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(storeID).Add(float64(total))
}

func (m *OrderMetrics) RecordTransition(storeID, from, to string) {
	m.OrderTransitionsTotal.WithLabelValues(storeID, from, to).Inc()
}

func (m *OrderMetrics) RecordTransitionError(storeID, errorType string) {
	m.TransitionErrorsTotal.WithLabelValues(storeID, errorType).Inc()
}

func (m *OrderMetrics) RecordOrderDelivered(storeID string, total int64) {
	m.OrdersDeliveredTotal.WithLabelValues(storeID).Inc()
	m.OrdersDeliveredAmountTotal.WithLabelValues(storeID).Add(float64(total))
}

func (m *OrderMetrics) RecordOrderCanceled(storeID string) {
	m.OrdersCanceledTotal.WithLabelValues(storeID).Inc()
}

func (m *OrderMetrics) RecordFulfillmentDuration(storeID, finalStatus string, seconds float64) {
	m.OrderFulfillmentDuration.WithLabelValues(storeID, finalStatus).Observe(seconds)
}

func (m *OrderMetrics) RecordSettlementGenerated(storeID string, gross, commission, net int64) {
	m.SettlementsGeneratedTotal.WithLabelValues(storeID).Inc()
	m.SettlementGrossTotal.WithLabelValues(storeID).Add(float64(gross))
	m.SettlementCommissionTotal.WithLabelValues(storeID).Add(float64(commission))
	m.SettlementNetTotal.WithLabelValues(storeID).Add(float64(net))
}

func (m *OrderMetrics) RecordSettlementPaid(storeID string) {
	m.SettlementsPaidTotal.WithLabelValues(storeID).Inc()
}
