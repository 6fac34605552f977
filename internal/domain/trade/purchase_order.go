package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
)

// PurchaseOrderStatus represents the lifecycle state of a purchase order.
// Pending and Received model the supported flow; the API accepts any status
// string, so free-text statuses remain representable.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending  PurchaseOrderStatus = "Pending"
	PurchaseOrderStatusReceived PurchaseOrderStatus = "Received"
)

// PurchaseOrder is an agreement to buy product quantities from a supplier.
// Status is the only mutable field after creation.
type PurchaseOrder struct {
	POID                 string              `gorm:"column:po_id;type:varchar(50);primaryKey"`
	SupplierID           string              `gorm:"column:supplier_id;type:varchar(50);not null;index"`
	OrderDate            time.Time           `gorm:"type:date;not null"`
	ExpectedDeliveryDate *time.Time          `gorm:"type:date"`
	Status               PurchaseOrderStatus `gorm:"type:varchar(50);not null;default:'Pending'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a purchase order; an empty status defaults to Pending
func NewPurchaseOrder(poID, supplierID string, orderDate time.Time, expectedDelivery *time.Time, status PurchaseOrderStatus) (*PurchaseOrder, error) {
	if strings.TrimSpace(poID) == "" {
		return nil, shared.NewDomainError("INVALID_PO_ID", "Purchase order id is required")
	}
	if strings.TrimSpace(supplierID) == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_ID", "Supplier id is required")
	}
	if orderDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ORDER_DATE", "Order date is required")
	}
	if status == "" {
		status = PurchaseOrderStatusPending
	}

	return &PurchaseOrder{
		POID:                 poID,
		SupplierID:           supplierID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expectedDelivery,
		Status:               status,
	}, nil
}

// TransitionStatus sets a new status. The expected delivery date is only
// overwritten when a new value is supplied; a nil argument preserves the
// existing value (coalesce-preserve).
func (po *PurchaseOrder) TransitionStatus(status PurchaseOrderStatus, expectedDelivery *time.Time) error {
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Status is required")
	}

	po.Status = status
	if expectedDelivery != nil {
		po.ExpectedDeliveryDate = expectedDelivery
	}
	po.UpdatedAt = time.Now()

	return nil
}

// IsReceived reports whether the order reached the Received state
func (po *PurchaseOrder) IsReceived() bool {
	return po.Status == PurchaseOrderStatusReceived
}

// PurchaseOrderItem is one line of a purchase order. Items are append-only and
// have no effect on stock; receiving stock is outside the modeled flow.
type PurchaseOrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	POID      string    `gorm:"column:po_id;type:varchar(50);not null;index"`
	ProductID string    `gorm:"column:product_id;type:varchar(50);not null;index"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a purchase order line item
func NewPurchaseOrderItem(poID, productID string, quantity int) (*PurchaseOrderItem, error) {
	if strings.TrimSpace(poID) == "" {
		return nil, shared.NewDomainError("INVALID_PO_ID", "Purchase order id is required")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product id is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &PurchaseOrderItem{
		ID:        uuid.New(),
		POID:      poID,
		ProductID: productID,
		Quantity:  quantity,
	}, nil
}

// PurchaseOrderWithSupplier is the listing projection: a purchase order joined
// with its supplier's name.
type PurchaseOrderWithSupplier struct {
	POID                 string              `gorm:"column:po_id"`
	SupplierID           string              `gorm:"column:supplier_id"`
	SupplierName         string              `gorm:"column:supplier_name"`
	OrderDate            time.Time           `gorm:"column:order_date"`
	ExpectedDeliveryDate *time.Time          `gorm:"column:expected_delivery_date"`
	Status               PurchaseOrderStatus `gorm:"column:status"`
}
