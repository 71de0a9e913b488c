package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the storage shape of an expense row.
type Expense struct {
	ExpenseID       string          `db:"expense_id"`
	ExpenseDate     time.Time       `db:"expense_date"`
	Description     string          `db:"description"`
	SupplierID      string          `db:"supplier_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentTypeID   string          `db:"payment_type_id"`
	PaymentCenterID string          `db:"payment_center_id"`
	ExpenseStatusID string          `db:"expense_status_id"`
	Notes           string          `db:"notes"`
	AuditFields
}
