package dto

import (
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveBudgetsRequest is the batch budget edit for one year. Amounts arrive as
// entered strings keyed by payment center id; every value must parse to a
// non-negative number or the whole batch is rejected before any write.
type SaveBudgetsRequest struct {
	Year    int               `json:"year" binding:"required,min=2000,max=2100"`
	Amounts map[string]string `json:"amounts" binding:"required,min=1"`
}

// BudgetResponse is the outward shape of one budget row.
type BudgetResponse struct {
	BudgetID        string          `json:"budgetID"`
	PaymentCenterID string          `json:"paymentCenterID"`
	Year            int             `json:"year"`
	Amount          decimal.Decimal `json:"amount"`
}

// ToBudgetResponse converts a domain budget row.
func ToBudgetResponse(b *domain.PaymentCenterBudget) BudgetResponse {
	return BudgetResponse{
		BudgetID:        b.BudgetID,
		PaymentCenterID: b.PaymentCenterID,
		Year:            b.Year,
		Amount:          b.Amount,
	}
}

// ToBudgetResponses converts a slice of domain budget rows.
func ToBudgetResponses(budgets []domain.PaymentCenterBudget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return out
}
