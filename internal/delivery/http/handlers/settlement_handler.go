package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/middleware"
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/usecase/settlement"
)

type SettlementHandler struct {
	uc settlement.SettlementUsecase
}

func NewSettlementHandler(uc settlement.SettlementUsecase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

type generateRequest struct {
	StoreID     string    `json:"storeId" binding:"required"`
	PeriodStart time.Time `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time `json:"periodEnd" binding:"required"`
}

// POST /settlements
func (h *SettlementHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.ActorFromContext(c)
	s, err := h.uc.Generate(actor, req.StoreID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSettlementResponse(s))
}

type processRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// PATCH /settlements/:id/status
func (h *SettlementHandler) Process(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.ActorFromContext(c)
	s, err := h.uc.Process(actor, c.Param("id"), domain.SettlementStatus(req.Status), req.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettlementResponse(s))
}

// GET /stores/:id/settlements
func (h *SettlementHandler) ListByStore(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	settlements, err := h.uc.GetStoreSettlements(actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]settlementResponse, len(settlements))
	for i, s := range settlements {
		out[i] = toSettlementResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"settlements": out})
}

type settlementResponse struct {
	ID                string     `json:"id"`
	StoreID           string     `json:"storeId"`
	PeriodStart       time.Time  `json:"periodStart"`
	PeriodEnd         time.Time  `json:"periodEnd"`
	OrderCount        int64      `json:"orderCount"`
	GrossValue        int64      `json:"grossValue"`
	DeliveryFeesTotal int64      `json:"deliveryFeesTotal"`
	CommissionRate    float64    `json:"commissionRate"`
	CommissionAmount  int64      `json:"commissionAmount"`
	NetValue          int64      `json:"netValue"`
	Status            string     `json:"status"`
	Note              string     `json:"note,omitempty"`
	PaidAt            *time.Time `json:"paidAt,omitempty"`
}

func toSettlementResponse(s *domain.Settlement) settlementResponse {
	return settlementResponse{
		ID:                s.ID,
		StoreID:           s.StoreID,
		PeriodStart:       s.PeriodStart,
		PeriodEnd:         s.PeriodEnd,
		OrderCount:        s.OrderCount,
		GrossValue:        s.GrossValue,
		DeliveryFeesTotal: s.DeliveryFeesTotal,
		CommissionRate:    s.CommissionRate,
		CommissionAmount:  s.CommissionAmount,
		NetValue:          s.NetValue,
		Status:            string(s.Status),
		Note:              s.Note,
		PaidAt:            s.PaidAt,
	}
}
