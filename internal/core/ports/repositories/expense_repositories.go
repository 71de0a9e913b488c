package repositories

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expense rows.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	FindExpenses(ctx context.Context) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}
