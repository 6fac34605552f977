package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/wms/backend/internal/application/trade"
)

// SaleHandler handles sale API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sales", h.List)
	rg.POST("/sales/process", h.Process)
}

// List returns all sale orders, newest first
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, sales)
}

// Process executes a sale atomically: the sale record and the stock decrement
// happen in one store-side call
func (h *SaleHandler) Process(c *gin.Context) {
	var req tradeapp.ProcessSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.saleService.Process(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Sale processed")
}
