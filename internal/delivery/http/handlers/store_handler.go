package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/middleware"
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/usecase/store"
)

type StoreHandler struct {
	uc store.StoreUsecase
}

func NewStoreHandler(uc store.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// GET /stores/:id
func (h *StoreHandler) GetByID(c *gin.Context) {
	listing, err := h.uc.GetStore(c.Param("id"), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStoreResponse(listing))
}

// GET /stores?tenant=...
func (h *StoreHandler) List(c *gin.Context) {
	tenantID := c.Query("tenant")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant is required"})
		return
	}

	listings, err := h.uc.ListStores(tenantID, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]storeResponse, len(listings))
	for i, l := range listings {
		out[i] = toStoreResponse(l)
	}
	c.JSON(http.StatusOK, gin.H{"stores": out})
}

type overrideRequest struct {
	Closed *bool `json:"closed" binding:"required"`
}

// PUT /stores/:id/availability
func (h *StoreHandler) SetManualOverride(c *gin.Context) {
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.uc.SetManualOverride(actor, c.Param("id"), *req.Closed); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type scheduleRuleRequest struct {
	Weekday     int  `json:"weekday"`
	Enabled     bool `json:"enabled"`
	StartMinute int  `json:"startMinute"`
	EndMinute   int  `json:"endMinute"`
}

type scheduleRequest struct {
	Mode  string                `json:"mode" binding:"required"`
	Rules []scheduleRuleRequest `json:"rules"`
}

// PUT /stores/:id/schedule
func (h *StoreHandler) UpdateSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rules := make([]domain.WeeklyRule, len(req.Rules))
	for i, r := range req.Rules {
		rules[i] = domain.WeeklyRule{
			Weekday:     time.Weekday(r.Weekday),
			Enabled:     r.Enabled,
			StartMinute: r.StartMinute,
			EndMinute:   r.EndMinute,
		}
	}

	actor := middleware.ActorFromContext(c)
	if err := h.uc.UpdateSchedule(actor, c.Param("id"), domain.ScheduleMode(req.Mode), rules); err != nil {
		switch err {
		case domain.ErrForbidden, domain.ErrNotFound:
			writeError(c, err)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

type storeResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenantId"`
	Name        string `json:"name"`
	DeliveryFee int64  `json:"deliveryFee"`
	IsOpen      bool   `json:"isOpen"`
}

func toStoreResponse(l *store.StoreListing) storeResponse {
	return storeResponse{
		ID:          l.Store.ID,
		TenantID:    l.Store.TenantID,
		Name:        l.Store.Name,
		DeliveryFee: l.Store.DeliveryFee,
		IsOpen:      l.IsOpen,
	}
}
