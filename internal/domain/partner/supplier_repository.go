package partner

import (
	"context"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindAll finds all suppliers ordered by name
	FindAll(ctx context.Context) ([]Supplier, error)

	// Create inserts a new supplier; a duplicate identifier surfaces as a
	// constraint error from the store
	Create(ctx context.Context, supplier *Supplier) error
}
