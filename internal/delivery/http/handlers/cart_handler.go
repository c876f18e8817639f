package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/middleware"
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/usecase/cart"
)

// CartHandler exposes the session cart. The session is keyed by the
// authenticated customer, so a cart follows the customer across devices
// for the lifetime of the session store.
type CartHandler struct {
	uc *cart.DefaultCartUsecase
}

func NewCartHandler(uc *cart.DefaultCartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	c.JSON(http.StatusOK, toCartResponse(h.uc.GetCart(actor.ID)))
}

type addItemRequest struct {
	StoreID        string `json:"storeId" binding:"required"`
	ProductID      string `json:"productId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	UnitPrice      int64  `json:"unitPrice" binding:"min=0"`
	Quantity       int64  `json:"quantity" binding:"required,min=1"`
	Note           string `json:"note"`
	ConfirmReplace bool   `json:"confirmReplace"`
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.ActorFromContext(c)
	res, err := h.uc.AddItem(actor.ID, domain.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		Note:      req.Note,
		StoreID:   req.StoreID,
	}, req.ConfirmReplace)
	if err != nil {
		writeError(c, err)
		return
	}

	if res.RequiresConfirmation {
		// Adding from another store replaces the whole cart; the client
		// must repeat the request with confirmReplace set.
		c.JSON(http.StatusConflict, gin.H{
			"requiresConfirmation": true,
			"cart":                 toCartResponse(res.Cart),
		})
		return
	}

	c.JSON(http.StatusOK, toCartResponse(res.Cart))
}

type updateQuantityRequest struct {
	Quantity int64  `json:"quantity"`
	Note     string `json:"note"`
}

// PATCH /cart/items/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.ActorFromContext(c)
	updated := h.uc.UpdateQuantity(actor.ID, c.Param("productId"), req.Note, req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(updated))
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	updated := h.uc.RemoveItem(actor.ID, c.Param("productId"), c.Query("note"))
	c.JSON(http.StatusOK, toCartResponse(updated))
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if actor.Role != domain.RoleCliente {
		writeError(c, domain.ErrForbidden)
		return
	}

	order, err := h.uc.Checkout(actor, actor.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

type cartItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
	StoreID   string `json:"storeId"`
}

type cartResponse struct {
	StoreID  string             `json:"storeId,omitempty"`
	Items    []cartItemResponse `json:"items"`
	Subtotal int64              `json:"subtotal"`
}

func toCartResponse(c domain.Cart) cartResponse {
	items := make([]cartItemResponse, len(c.Items))
	for i, it := range c.Items {
		items[i] = cartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Note:      it.Note,
			StoreID:   it.StoreID,
		}
	}
	return cartResponse{
		StoreID:  c.StoreID(),
		Items:    items,
		Subtotal: c.Subtotal(),
	}
}
