package partner

import (
	"context"

	"github.com/wms/backend/internal/domain/partner"
)

// SupplierService handles supplier business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// List returns all suppliers ordered by name
func (s *SupplierService) List(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponseList(suppliers), nil
}

// Create creates a new supplier. An empty status defaults to Active; a
// duplicate identifier surfaces as a store constraint error.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) error {
	supplier, err := partner.NewSupplier(
		req.SupplierID,
		req.Name,
		req.ContactPerson,
		req.BankAccountNo,
		partner.SupplierStatus(req.SupplierStatus),
	)
	if err != nil {
		return err
	}

	return s.supplierRepo.Create(ctx, supplier)
}
