package persistence

import (
	"context"

	"github.com/wms/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormProductPricingRepository implements ProductPricingRepository using GORM
type GormProductPricingRepository struct {
	db *gorm.DB
}

// NewGormProductPricingRepository creates a new GormProductPricingRepository
func NewGormProductPricingRepository(db *gorm.DB) *GormProductPricingRepository {
	return &GormProductPricingRepository{db: db}
}

// FindByProductID finds pricing rows for a product ordered by unit price ascending
func (r *GormProductPricingRepository) FindByProductID(ctx context.Context, productID string) ([]catalog.ProductPricing, error) {
	var rows []catalog.ProductPricing
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("unit_price").
		Find(&rows).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return rows, nil
}

// Create appends a pricing row
func (r *GormProductPricingRepository) Create(ctx context.Context, pricing *catalog.ProductPricing) error {
	if err := r.db.WithContext(ctx).Create(pricing).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

// ListNetPrices returns one row per (product, pricing) pair. The net price
// comes from fn_calculate_net_price so the formula stays owned by the store.
func (r *GormProductPricingRepository) ListNetPrices(ctx context.Context) ([]catalog.NetPriceRow, error) {
	var rows []catalog.NetPriceRow
	if err := r.db.WithContext(ctx).
		Raw(`SELECT p.product_id, p.name, pp.unit_price,
		            fn_calculate_net_price(p.product_id, pp.unit_price) AS net_price
		     FROM products p
		     JOIN product_pricing pp ON pp.product_id = p.product_id
		     ORDER BY p.name, pp.unit_price`).
		Scan(&rows).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return rows, nil
}

// Ensure GormProductPricingRepository implements ProductPricingRepository
var _ catalog.ProductPricingRepository = (*GormProductPricingRepository)(nil)
