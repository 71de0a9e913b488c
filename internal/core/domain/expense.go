package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend record. Supplier, payment type, payment center
// and status references must resolve to existing reference rows; violations
// surface as foreign-key errors from the repository layer.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	ExpenseDate     time.Time       `json:"expenseDate"`
	Description     string          `json:"description"`
	SupplierID      string          `json:"supplierID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentTypeID   string          `json:"paymentTypeID"`
	PaymentCenterID string          `json:"paymentCenterID"`
	ExpenseStatusID string          `json:"expenseStatusID"`
	Notes           string          `json:"notes"`
	AuditFields
}
