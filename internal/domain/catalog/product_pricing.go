package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// ProductPricing is one pricing row for a product. Rows are append-only; a
// product may carry many (price history / tiers). Discount and tax are raw
// fractions and are intentionally not range-checked, matching the store.
type ProductPricing struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID string          `gorm:"column:product_id;type:varchar(50);not null;index"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Discount  decimal.Decimal `gorm:"type:numeric(8,4);not null;default:0"`
	Tax       decimal.Decimal `gorm:"type:numeric(8,4);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ProductPricing) TableName() string {
	return "product_pricing"
}

// NewProductPricing creates a pricing row for a product
func NewProductPricing(productID string, unitPrice, discount, tax decimal.Decimal) (*ProductPricing, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product id is required")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	return &ProductPricing{
		ID:        uuid.New(),
		ProductID: productID,
		UnitPrice: unitPrice,
		Discount:  discount,
		Tax:       tax,
	}, nil
}

// NetPrice computes unit_price * (1 - discount) * (1 + tax). The store owns
// this formula (fn_calculate_net_price); this method mirrors it for callers
// that already hold a pricing row.
func (p *ProductPricing) NetPrice() decimal.Decimal {
	one := decimal.NewFromInt(1)
	return p.UnitPrice.Mul(one.Sub(p.Discount)).Mul(one.Add(p.Tax))
}

// NetPriceRow is the read-only projection returned by the net-price listing:
// one row per (product, pricing) pair with the store-computed net price.
type NetPriceRow struct {
	ProductID string          `gorm:"column:product_id"`
	Name      string          `gorm:"column:name"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price"`
	NetPrice  decimal.Decimal `gorm:"column:net_price"`
}
