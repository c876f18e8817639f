package kafka

const SettlementTopic = "settlement-events"

type SettlementEvent struct {
	SettlementID string `json:"settlement_id"`
	StoreID      string `json:"store_id"`
	Status       string `json:"status"`
	GrossValue   int64  `json:"gross_value"`
	NetValue     int64  `json:"net_value"`
}
