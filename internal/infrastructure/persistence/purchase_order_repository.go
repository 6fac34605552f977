package persistence

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindAllWithSupplier lists purchase orders joined with supplier names,
// ordered by order date descending
func (r *GormPurchaseOrderRepository) FindAllWithSupplier(ctx context.Context) ([]trade.PurchaseOrderWithSupplier, error) {
	var rows []trade.PurchaseOrderWithSupplier
	if err := r.db.WithContext(ctx).
		Raw(`SELECT po.po_id, po.supplier_id, s.name AS supplier_name,
		            po.order_date, po.expected_delivery_date, po.status
		     FROM purchase_orders po
		     JOIN suppliers s ON s.supplier_id = po.supplier_id
		     ORDER BY po.order_date DESC`).
		Scan(&rows).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return rows, nil
}

// Create inserts a new purchase order
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, po *trade.PurchaseOrder) error {
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

// AddItem appends a line item to a purchase order
func (r *GormPurchaseOrderRepository) AddItem(ctx context.Context, item *trade.PurchaseOrderItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

// UpdateStatus sets the status of a purchase order. The expected delivery date
// is coalesced against the stored value so a nil argument preserves it.
func (r *GormPurchaseOrderRepository) UpdateStatus(ctx context.Context, poID string, status trade.PurchaseOrderStatus, expectedDelivery *time.Time) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE purchase_orders
		 SET status = ?, expected_delivery_date = COALESCE(?, expected_delivery_date), updated_at = NOW()
		 WHERE po_id = ?`,
		status, expectedDelivery, poID,
	)
	if result.Error != nil {
		return translateStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
