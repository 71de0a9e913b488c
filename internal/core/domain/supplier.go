package domain

// SupplierStatus indicates whether a supplier is available for new expenses.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
)

// Supplier is a payee that expenses reference.
type Supplier struct {
	SupplierID   string         `json:"supplierID"`
	Code         string         `json:"code"` // unique business code
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	ContactName  string         `json:"contactName"`
	ContactEmail string         `json:"contactEmail"`
	ContactPhone string         `json:"contactPhone"`
	PaymentTerms string         `json:"paymentTerms"`
	Status       SupplierStatus `json:"status"`
	AuditFields
}
