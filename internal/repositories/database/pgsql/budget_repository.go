package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	db *pgxpool.Pool
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{db: db}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toDomainBudget(m models.PaymentCenterBudget) domain.PaymentCenterBudget {
	return domain.PaymentCenterBudget{
		BudgetID:        m.BudgetID,
		PaymentCenterID: m.PaymentCenterID,
		Year:            m.Year,
		Amount:          m.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const budgetColumns = `budget_id, payment_center_id, year, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.PaymentCenterBudget, error) {
	var m models.PaymentCenterBudget
	err := row.Scan(
		&m.BudgetID,
		&m.PaymentCenterID,
		&m.Year,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBudgetRepository) BudgetExists(ctx context.Context, budgetID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payment_center_budgets WHERE budget_id = $1);`, budgetID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check budget existence: %w", err)
	}
	return exists, nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.PaymentCenterBudget, error) {
	query := `SELECT ` + budgetColumns + ` FROM payment_center_budgets WHERE budget_id = $1;`
	m, err := scanBudget(r.db.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}
	d := toDomainBudget(m)
	return &d, nil
}

func (r *PgxBudgetRepository) FindBudgets(ctx context.Context) ([]domain.PaymentCenterBudget, error) {
	query := `SELECT ` + budgetColumns + ` FROM payment_center_budgets ORDER BY year, payment_center_id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.PaymentCenterBudget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, toDomainBudget(m))
	}
	return budgets, rows.Err()
}

// InsertBudget creates a new budget row. A duplicate composite id surfaces as
// a classified duplicate error rather than silently upserting.
func (r *PgxBudgetRepository) InsertBudget(ctx context.Context, budget domain.PaymentCenterBudget) error {
	query := `
        INSERT INTO payment_center_budgets (` + budgetColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		budget.BudgetID, budget.PaymentCenterID, budget.Year, budget.Amount,
		budget.CreatedAt, budget.CreatedBy, budget.LastUpdatedAt, budget.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", classifyPgError(err))
	}
	return nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.PaymentCenterBudget) error {
	query := `
        UPDATE payment_center_budgets
        SET amount = $1, last_updated_at = $2, last_updated_by = $3
        WHERE budget_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, budget.Amount, budget.LastUpdatedAt, budget.LastUpdatedBy, budget.BudgetID)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", classifyPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
