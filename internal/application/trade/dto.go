package trade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/trade"
)

const dateLayout = "2006-01-02"

// CreatePurchaseOrderRequest represents a request to create a purchase order.
// Dates travel as YYYY-MM-DD strings.
type CreatePurchaseOrderRequest struct {
	POID                 string `json:"po_id" binding:"required,min=1,max=50"`
	SupplierID           string `json:"Supplier_id" binding:"required,min=1,max=50"`
	OrderDate            string `json:"order_date" binding:"required,dateonly"`
	ExpectedDeliveryDate string `json:"Expected_delivery_date" binding:"omitempty,dateonly"`
	Status               string `json:"Status" binding:"max=50"`
}

// AddPurchaseOrderItemRequest appends a line item to a purchase order
type AddPurchaseOrderItemRequest struct {
	POID      string `json:"po_id" binding:"required,min=1,max=50"`
	ProductID string `json:"Product_id" binding:"required,min=1,max=50"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// TransitionStatusRequest sets a purchase order's status. An absent expected
// delivery date preserves the stored value.
type TransitionStatusRequest struct {
	Status               string `json:"Status" binding:"required,min=1,max=50"`
	ExpectedDeliveryDate string `json:"Expected_delivery_date" binding:"omitempty,dateonly"`
}

// ProcessSaleRequest carries the caller-supplied parameters of a sale
type ProcessSaleRequest struct {
	SOID         string           `json:"So_id" binding:"required,min=1,max=50"`
	CustomerName string           `json:"Customer_name" binding:"required,min=1,max=200"`
	ProductID    string           `json:"Product_id" binding:"required,min=1,max=50"`
	Quantity     int              `json:"Quantity" binding:"required,min=1"`
	UnitPrice    *decimal.Decimal `json:"Unit_Price" binding:"required"`
}

// PurchaseOrderResponse is a purchase order joined with its supplier's name
type PurchaseOrderResponse struct {
	POID                 string  `json:"po_id"`
	SupplierID           string  `json:"Supplier_id"`
	SupplierName         string  `json:"Supplier_Name"`
	OrderDate            string  `json:"order_date"`
	ExpectedDeliveryDate *string `json:"Expected_delivery_date"`
	Status               string  `json:"Status"`
}

// SaleOrderResponse represents a sale order in API responses
type SaleOrderResponse struct {
	SOID         string          `json:"So_id"`
	CustomerName string          `json:"Customer_name"`
	ProductID    string          `json:"Product_id"`
	Quantity     int             `json:"Quantity"`
	UnitPrice    decimal.Decimal `json:"Unit_Price"`
	OrderDate    string          `json:"order_date"`
	Status       string          `json:"Status"`
	TotalAmount  decimal.Decimal `json:"Total_Amount"`
}

// parseDate parses a required YYYY-MM-DD date string
func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", field+" must be a YYYY-MM-DD date")
	}
	return d, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD date string; empty input
// yields nil
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ToPurchaseOrderResponseList converts joined purchase order rows
func ToPurchaseOrderResponseList(rows []trade.PurchaseOrderWithSupplier) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		var expected *string
		if row.ExpectedDeliveryDate != nil {
			s := row.ExpectedDeliveryDate.Format(dateLayout)
			expected = &s
		}
		responses = append(responses, PurchaseOrderResponse{
			POID:                 row.POID,
			SupplierID:           row.SupplierID,
			SupplierName:         row.SupplierName,
			OrderDate:            row.OrderDate.Format(dateLayout),
			ExpectedDeliveryDate: expected,
			Status:               string(row.Status),
		})
	}
	return responses
}

// ToSaleOrderResponseList converts sale orders
func ToSaleOrderResponseList(orders []trade.SaleOrder) []SaleOrderResponse {
	responses := make([]SaleOrderResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		responses = append(responses, SaleOrderResponse{
			SOID:         o.SOID,
			CustomerName: o.CustomerName,
			ProductID:    o.ProductID,
			Quantity:     o.Quantity,
			UnitPrice:    o.UnitPrice,
			OrderDate:    o.OrderDate.Format(dateLayout),
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
		})
	}
	return responses
}
