package dto

import "github.com/fintrackhq/finance_tracker_app/internal/core/domain"

// CreateSupplierRequest carries a new supplier. Code must be unique across
// suppliers; the repository surfaces a duplicate error otherwise.
type CreateSupplierRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	PaymentTerms string `json:"paymentTerms"`
}

// UpdateSupplierRequest uses pointers to distinguish omitted fields.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
	PaymentTerms *string `json:"paymentTerms"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// SupplierResponse is the outward shape of a supplier.
type SupplierResponse struct {
	SupplierID   string `json:"supplierID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	PaymentTerms string `json:"paymentTerms"`
	Status       string `json:"status"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:   s.SupplierID,
		Code:         s.Code,
		Name:         s.Name,
		Category:     s.Category,
		ContactName:  s.ContactName,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		PaymentTerms: s.PaymentTerms,
		Status:       string(s.Status),
	}
}

// ToSupplierResponses converts a slice of domain suppliers.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}
