package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/wms/backend/internal/application/trade"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	poService *tradeapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(poService *tradeapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/purchase-orders", h.List)
	rg.POST("/purchase-orders", h.Create)
	rg.POST("/purchase-order-items", h.AddItem)
	rg.PATCH("/purchase-orders/:po_id/status", h.TransitionStatus)
}

// List returns all purchase orders joined with supplier names
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	orders, err := h.poService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, orders)
}

// Create creates a new purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.poService.Create(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "PO created")
}

// AddItem appends a line item to a purchase order
func (h *PurchaseOrderHandler) AddItem(c *gin.Context) {
	var req tradeapp.AddPurchaseOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.poService.AddItem(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "PO item added")
}

// TransitionStatus sets a purchase order's status
func (h *PurchaseOrderHandler) TransitionStatus(c *gin.Context) {
	var req tradeapp.TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.poService.TransitionStatus(c.Request.Context(), c.Param("po_id"), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "PO status updated")
}
