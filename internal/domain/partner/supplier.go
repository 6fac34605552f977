package partner

import (
	"strings"
	"time"

	"github.com/wms/backend/internal/domain/shared"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "Active"
	SupplierStatusInactive SupplierStatus = "Inactive"
)

// Supplier represents a supplier in the partner context.
// The identifier is caller-supplied; uniqueness is enforced by the store.
type Supplier struct {
	SupplierID    string         `gorm:"column:supplier_id;type:varchar(50);primaryKey"`
	Name          string         `gorm:"type:varchar(200);not null"`
	ContactPerson string         `gorm:"type:varchar(100)"`
	BankAccountNo string         `gorm:"type:varchar(100)"`
	Status        SupplierStatus `gorm:"type:varchar(50);not null;default:'Active'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields. An empty status
// defaults to Active; any non-empty status string is accepted as-is, matching
// the permissive store contract.
func NewSupplier(id, name, contactPerson, bankAccountNo string, status SupplierStatus) (*Supplier, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_ID", "Supplier id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name is required")
	}
	if status == "" {
		status = SupplierStatusActive
	}

	return &Supplier{
		SupplierID:    id,
		Name:          name,
		ContactPerson: contactPerson,
		BankAccountNo: bankAccountNo,
		Status:        status,
	}, nil
}

// IsActive reports whether the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
