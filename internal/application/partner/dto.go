package partner

import (
	"github.com/wms/backend/internal/domain/partner"
)

// CreateSupplierRequest represents a request to create a supplier. Field names
// follow the wire contract of the store schema.
type CreateSupplierRequest struct {
	SupplierID     string `json:"Supplier_id" binding:"required,min=1,max=50"`
	Name           string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson  string `json:"Contact_person" binding:"max=100"`
	BankAccountNo  string `json:"Bank_Account_No" binding:"max=100"`
	SupplierStatus string `json:"Supplier_Status" binding:"max=50"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	SupplierID     string `json:"Supplier_id"`
	Name           string `json:"name"`
	ContactPerson  string `json:"Contact_person"`
	BankAccountNo  string `json:"Bank_Account_No"`
	SupplierStatus string `json:"Supplier_Status"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:     s.SupplierID,
		Name:           s.Name,
		ContactPerson:  s.ContactPerson,
		BankAccountNo:  s.BankAccountNo,
		SupplierStatus: string(s.Status),
	}
}

// ToSupplierResponseList converts a slice of domain suppliers. Always returns
// a non-nil slice so lists serialize as [] rather than null.
func ToSupplierResponseList(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, ToSupplierResponse(&suppliers[i]))
	}
	return responses
}
