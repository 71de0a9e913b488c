package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentCenterBudget holds the budget amount for one (payment center, year)
// pair. At most one row exists per pair; uniqueness is enforced by the
// deterministic composite primary key, not by a separate constraint.
type PaymentCenterBudget struct {
	BudgetID        string          `json:"budgetID"` // composite: budget-<centerID>-<year>
	PaymentCenterID string          `json:"paymentCenterID"`
	Year            int             `json:"year"`
	Amount          decimal.Decimal `json:"amount"`
	AuditFields
}

// BudgetID derives the composite primary key for a (center, year) pair.
func BudgetID(paymentCenterID string, year int) string {
	return fmt.Sprintf("budget-%s-%d", paymentCenterID, year)
}
