package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/wms/backend/internal/application/catalog"
)

// ProductHandler handles product, pricing and net-price API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product and pricing routes. The net-prices route
// must come before any parameterized product route so gin does not shadow it.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.POST("/products", h.Create)
	rg.GET("/products/net-prices", h.ListNetPrices)
	rg.GET("/product-pricing/:productId", h.ListPricing)
	rg.POST("/product-pricing", h.AddPricing)
}

// List returns all products ordered by name
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, products)
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.productService.Create(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Product created")
}

// ListPricing returns the pricing rows for one product
func (h *ProductHandler) ListPricing(c *gin.Context) {
	rows, err := h.productService.ListPricing(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, rows)
}

// AddPricing appends a pricing row to a product
func (h *ProductHandler) AddPricing(c *gin.Context) {
	var req catalogapp.AddPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.productService.AddPricing(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Pricing added")
}

// ListNetPrices returns the store-computed net price view
func (h *ProductHandler) ListNetPrices(c *gin.Context) {
	rows, err := h.productService.ListNetPrices(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, rows)
}
