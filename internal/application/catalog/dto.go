package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a product. Quantity and
// location are optional; absent values take the store defaults.
type CreateProductRequest struct {
	ProductID         string `json:"Product_id" binding:"required,min=1,max=50"`
	Name              string `json:"name" binding:"required,min=1,max=200"`
	QuantityOnHand    *int   `json:"quantity_on_hand" binding:"omitempty,min=0"`
	Description       string `json:"Description" binding:"max=2000"`
	WarehouseLocation string `json:"Warehouse_Location" binding:"max=100"`
}

// AddPricingRequest appends a pricing row to a product
type AddPricingRequest struct {
	ProductID string           `json:"Product_id" binding:"required,min=1,max=50"`
	UnitPrice *decimal.Decimal `json:"Unit_price" binding:"required"`
	Discount  *decimal.Decimal `json:"discount"`
	Tax       *decimal.Decimal `json:"tax"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ProductID         string `json:"Product_id"`
	Name              string `json:"name"`
	QuantityOnHand    int    `json:"quantity_on_hand"`
	Description       string `json:"Description"`
	WarehouseLocation string `json:"Warehouse_Location"`
}

// PricingResponse represents a pricing row in API responses
type PricingResponse struct {
	ProductID string          `json:"Product_id"`
	UnitPrice decimal.Decimal `json:"Unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
}

// NetPriceResponse is one (product, pricing) pair with the store-computed
// net price
type NetPriceResponse struct {
	ProductID string          `json:"Product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"Unit_price"`
	NetPrice  decimal.Decimal `json:"Net_Price"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ProductID:         p.ProductID,
		Name:              p.Name,
		QuantityOnHand:    p.QuantityOnHand,
		Description:       p.Description,
		WarehouseLocation: p.WarehouseLocation,
	}
}

// ToProductResponseList converts a slice of domain products
func ToProductResponseList(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}

// ToPricingResponseList converts a slice of pricing rows
func ToPricingResponseList(rows []catalog.ProductPricing) []PricingResponse {
	responses := make([]PricingResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, PricingResponse{
			ProductID: rows[i].ProductID,
			UnitPrice: rows[i].UnitPrice,
			Discount:  rows[i].Discount,
			Tax:       rows[i].Tax,
		})
	}
	return responses
}

// ToNetPriceResponseList converts net-price projection rows
func ToNetPriceResponseList(rows []catalog.NetPriceRow) []NetPriceResponse {
	responses := make([]NetPriceResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, NetPriceResponse{
			ProductID: rows[i].ProductID,
			Name:      rows[i].Name,
			UnitPrice: rows[i].UnitPrice,
			NetPrice:  rows[i].NetPrice,
		})
	}
	return responses
}
