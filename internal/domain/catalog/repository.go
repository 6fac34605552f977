package catalog

import (
	"context"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindAll finds all products ordered by name
	FindAll(ctx context.Context) ([]Product, error)

	// Create inserts a new product
	Create(ctx context.Context, product *Product) error
}

// ProductPricingRepository defines the interface for pricing persistence.
// Pricing rows are append-only.
type ProductPricingRepository interface {
	// FindByProductID finds pricing rows for a product ordered by unit price ascending
	FindByProductID(ctx context.Context, productID string) ([]ProductPricing, error)

	// Create appends a pricing row
	Create(ctx context.Context, pricing *ProductPricing) error

	// ListNetPrices returns one row per (product, pricing) pair with the net
	// price computed by the store's fn_calculate_net_price, ordered by product
	// name then unit price ascending
	ListNetPrices(ctx context.Context) ([]NetPriceRow, error)
}
