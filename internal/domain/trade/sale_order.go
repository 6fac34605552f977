package trade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// SaleOrder records a completed sale. Rows are created only by the
// sale-processing routine, which also decrements the product's stock in the
// same store-side unit of work; order date, status and total amount are
// store-assigned.
type SaleOrder struct {
	SOID         string          `gorm:"column:so_id;type:varchar(50);primaryKey"`
	CustomerName string          `gorm:"type:varchar(200);not null"`
	ProductID    string          `gorm:"column:product_id;type:varchar(50);not null;index"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	OrderDate    time.Time       `gorm:"not null"`
	Status       string          `gorm:"type:varchar(50);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (SaleOrder) TableName() string {
	return "sale_orders"
}

// ProcessSaleCommand carries the caller-supplied parameters of a sale. It is
// passed through to sp_process_sale as a single call; the application layer
// never splits the stock check from the deduction.
type ProcessSaleCommand struct {
	SOID         string
	CustomerName string
	ProductID    string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// Validate checks required fields before the command reaches the store
func (c ProcessSaleCommand) Validate() error {
	if strings.TrimSpace(c.SOID) == "" {
		return shared.NewDomainError("INVALID_SO_ID", "Sale order id is required")
	}
	if strings.TrimSpace(c.CustomerName) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name is required")
	}
	if strings.TrimSpace(c.ProductID) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_ID", "Product id is required")
	}
	if c.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if c.UnitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}
	return nil
}
