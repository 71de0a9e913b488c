package pgsql

import (
	"context"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReferenceRepository struct {
	db *pgxpool.Pool
}

func newPgxReferenceRepository(db *pgxpool.Pool) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{db: db}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) FindPaymentCenters(ctx context.Context) ([]domain.PaymentCenter, error) {
	query := `SELECT payment_center_id, name, description, created_at, created_by, last_updated_at, last_updated_by FROM payment_centers ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment centers: %w", err)
	}
	defer rows.Close()

	centers := []domain.PaymentCenter{}
	for rows.Next() {
		var c domain.PaymentCenter
		if err := rows.Scan(&c.PaymentCenterID, &c.Name, &c.Description, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan payment center row: %w", err)
		}
		centers = append(centers, c)
	}
	return centers, rows.Err()
}

func (r *PgxReferenceRepository) FindPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	rows, err := r.db.Query(ctx, `SELECT payment_type_id, name, created_at, created_by, last_updated_at, last_updated_by FROM payment_types ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment types: %w", err)
	}
	return scanNamedRows(rows, func(id, name string, audit domain.AuditFields) domain.PaymentType {
		return domain.PaymentType{PaymentTypeID: id, Name: name, AuditFields: audit}
	})
}

func (r *PgxReferenceRepository) FindExpenseStatuses(ctx context.Context) ([]domain.ExpenseStatus, error) {
	rows, err := r.db.Query(ctx, `SELECT expense_status_id, name, created_at, created_by, last_updated_at, last_updated_by FROM expense_statuses ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense statuses: %w", err)
	}
	return scanNamedRows(rows, func(id, name string, audit domain.AuditFields) domain.ExpenseStatus {
		return domain.ExpenseStatus{ExpenseStatusID: id, Name: name, AuditFields: audit}
	})
}

func (r *PgxReferenceRepository) FindPrograms(ctx context.Context) ([]domain.Program, error) {
	rows, err := r.db.Query(ctx, `SELECT program_id, name, created_at, created_by, last_updated_at, last_updated_by FROM programs ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}
	return scanNamedRows(rows, func(id, name string, audit domain.AuditFields) domain.Program {
		return domain.Program{ProgramID: id, Name: name, AuditFields: audit}
	})
}

// scanNamedRows scans the common (id, name, audit) lookup-row shape shared by
// the small reference tables.
func scanNamedRows[T any](rows pgx.Rows, build func(id, name string, audit domain.AuditFields) T) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		var id, name string
		var audit domain.AuditFields
		if err := rows.Scan(&id, &name, &audit.CreatedAt, &audit.CreatedBy, &audit.LastUpdatedAt, &audit.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan lookup row: %w", err)
		}
		out = append(out, build(id, name, audit))
	}
	return out, rows.Err()
}

func (r *PgxReferenceRepository) SavePrograms(ctx context.Context, programs []domain.Program) error {
	batch := &pgx.Batch{}
	query := `
        INSERT INTO programs (program_id, name, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (program_id) DO NOTHING;
    `
	for _, p := range programs {
		batch.Queue(query, p.ProgramID, p.Name, p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range programs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save program seed: %w", classifyPgError(err))
		}
	}
	return nil
}
