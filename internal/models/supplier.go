package models

// Supplier is the storage shape of a supplier row.
type Supplier struct {
	SupplierID   string `db:"supplier_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Category     string `db:"category"`
	ContactName  string `db:"contact_name"`
	ContactEmail string `db:"contact_email"`
	ContactPhone string `db:"contact_phone"`
	PaymentTerms string `db:"payment_terms"`
	Status       string `db:"status"`
	AuditFields
}
