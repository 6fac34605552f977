package catalog

import (
	"strings"
	"time"

	"github.com/wms/backend/internal/domain/shared"
)

// DefaultWarehouseLocation is assigned when no location is supplied
const DefaultWarehouseLocation = "Unassigned"

// Product represents a stocked product. Quantity on hand is mutated only by
// sale processing in the store; the application layer never writes it directly.
type Product struct {
	ProductID         string `gorm:"column:product_id;type:varchar(50);primaryKey"`
	Name              string `gorm:"type:varchar(200);not null"`
	QuantityOnHand    int    `gorm:"not null;default:0;check:quantity_on_hand >= 0"`
	Description       string `gorm:"type:text"`
	WarehouseLocation string `gorm:"type:varchar(100);not null;default:'Unassigned'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with required fields and defaults applied
func NewProduct(id, name string, quantityOnHand int, description, location string) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name is required")
	}
	if quantityOnHand < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity on hand cannot be negative")
	}
	if location == "" {
		location = DefaultWarehouseLocation
	}

	return &Product{
		ProductID:         id,
		Name:              name,
		QuantityOnHand:    quantityOnHand,
		Description:       description,
		WarehouseLocation: location,
	}, nil
}

// CanFulfill reports whether the product has enough stock for the requested
// quantity. The authoritative check happens inside the sale-processing routine;
// this mirror exists for domain-level reasoning and tests.
func (p *Product) CanFulfill(quantity int) bool {
	return quantity > 0 && p.QuantityOnHand >= quantity
}
