package repositories

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// BudgetRepository defines persistence operations for payment-center budgets.
// Insert and Update are deliberately separate: the save flow checks remote
// existence and picks one, never a blind upsert, so creation and modification
// keep distinct audit semantics.
type BudgetRepository interface {
	BudgetExists(ctx context.Context, budgetID string) (bool, error)
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.PaymentCenterBudget, error)
	FindBudgets(ctx context.Context) ([]domain.PaymentCenterBudget, error)
	InsertBudget(ctx context.Context, budget domain.PaymentCenterBudget) error
	UpdateBudget(ctx context.Context, budget domain.PaymentCenterBudget) error
}
