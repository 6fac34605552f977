package trade

import (
	"context"
	"time"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindAllWithSupplier lists purchase orders joined with supplier names,
	// ordered by order date descending
	FindAllWithSupplier(ctx context.Context) ([]PurchaseOrderWithSupplier, error)

	// Create inserts a new purchase order
	Create(ctx context.Context, po *PurchaseOrder) error

	// AddItem appends a line item to a purchase order
	AddItem(ctx context.Context, item *PurchaseOrderItem) error

	// UpdateStatus sets the status of a purchase order. A nil expectedDelivery
	// preserves the stored expected delivery date (COALESCE in the UPDATE).
	// Returns shared.ErrNotFound when no order matches.
	UpdateStatus(ctx context.Context, poID string, status PurchaseOrderStatus, expectedDelivery *time.Time) error
}

// SaleOrderRepository defines the interface for sale order persistence
type SaleOrderRepository interface {
	// FindAll lists sale orders ordered by order date descending
	FindAll(ctx context.Context) ([]SaleOrder, error)

	// ProcessSale invokes sp_process_sale: inserts the sale record and
	// decrements the product's quantity on hand as one atomic store-side
	// operation. Insufficient stock or an unknown product fails the whole call
	// with no partial effect.
	ProcessSale(ctx context.Context, cmd ProcessSaleCommand) error
}
