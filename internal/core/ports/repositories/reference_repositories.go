package repositories

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// ReferenceRepository defines persistence operations for the small lookup
// tables (payment centers, payment types, expense statuses, programs).
type ReferenceRepository interface {
	FindPaymentCenters(ctx context.Context) ([]domain.PaymentCenter, error)
	FindPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	FindExpenseStatuses(ctx context.Context) ([]domain.ExpenseStatus, error)
	FindPrograms(ctx context.Context) ([]domain.Program, error)
	SavePrograms(ctx context.Context, programs []domain.Program) error
}
