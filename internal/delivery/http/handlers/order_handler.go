package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/middleware"
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/usecase/order"
	orderdto "github.com/pedelocal/pedelocal-order-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	uc order.OrderUsecase
}

func NewOrderHandler(uc order.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.ActorFromContext(c)
	updated, err := h.uc.Transition(actor, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(updated))
}

// GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	o, err := h.uc.GetOrderByID(actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

// GET /stores/:id/orders
func (h *OrderHandler) ListByStore(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var filters domain.OrderFilters
	for _, s := range c.QueryArray("status") {
		filters.Statuses = append(filters.Statuses, domain.OrderStatus(s))
	}

	input := &orderdto.ListOrdersInput{
		Page:      queryInt64(c, "page", 1),
		Limit:     queryInt64(c, "limit", 20),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Filters:   filters,
	}

	orders, total, err := h.uc.GetStoreOrders(actor, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(orders), "total": total})
}

// GET /customers/:id/orders
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	orders, total, err := h.uc.GetCustomerOrders(actor, c.Param("id"),
		queryInt64(c, "page", 1), queryInt64(c, "limit", 20))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(orders), "total": total})
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	StoreID     string              `json:"storeId"`
	CustomerID  string              `json:"customerId"`
	Items       []orderItemResponse `json:"items"`
	Subtotal    int64               `json:"subtotal"`
	DeliveryFee int64               `json:"deliveryFee"`
	Total       int64               `json:"total"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Note:      it.Note,
		}
	}
	return orderResponse{
		ID:          o.ID,
		StoreID:     o.StoreID,
		CustomerID:  o.CustomerID,
		Items:       items,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   o.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toOrderResponses(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

func queryInt64(c *gin.Context, key string, def int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}
