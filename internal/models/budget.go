package models

import "github.com/shopspring/decimal"

// PaymentCenterBudget is the storage shape of a budget row. The composite
// budget id is the primary key; no separate uniqueness constraint exists on
// (payment_center_id, year).
type PaymentCenterBudget struct {
	BudgetID        string          `db:"budget_id"`
	PaymentCenterID string          `db:"payment_center_id"`
	Year            int             `db:"year"`
	Amount          decimal.Decimal `db:"amount"`
	AuditFields
}
