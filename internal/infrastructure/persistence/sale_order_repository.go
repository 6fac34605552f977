package persistence

import (
	"context"

	"github.com/wms/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormSaleOrderRepository implements SaleOrderRepository using GORM
type GormSaleOrderRepository struct {
	db *gorm.DB
}

// NewGormSaleOrderRepository creates a new GormSaleOrderRepository
func NewGormSaleOrderRepository(db *gorm.DB) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{db: db}
}

// FindAll lists sale orders ordered by order date descending
func (r *GormSaleOrderRepository) FindAll(ctx context.Context) ([]trade.SaleOrder, error) {
	var sales []trade.SaleOrder
	if err := r.db.WithContext(ctx).Order("order_date DESC").Find(&sales).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return sales, nil
}

// ProcessSale invokes sp_process_sale as a single store-side call. The
// procedure checks stock, decrements the product and inserts the sale record
// in one unit of work; splitting that into a read-then-write pair here would
// reintroduce the lost-update race the routine exists to prevent.
func (r *GormSaleOrderRepository) ProcessSale(ctx context.Context, cmd trade.ProcessSaleCommand) error {
	if err := r.db.WithContext(ctx).Exec(
		"CALL sp_process_sale(?, ?, ?, ?, ?)",
		cmd.SOID, cmd.CustomerName, cmd.ProductID, cmd.Quantity, cmd.UnitPrice,
	).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

// Ensure GormSaleOrderRepository implements SaleOrderRepository
var _ trade.SaleOrderRepository = (*GormSaleOrderRepository)(nil)
