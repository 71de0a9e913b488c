package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func toDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		EntryDate:      m.EntryDate,
		Reference:      m.Reference,
		Description:    m.Description,
		Status:         domain.JournalStatus(m.Status),
		Total:          m.Total,
		ApprovedAt:     m.ApprovedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.ApprovedBy != nil {
		d.ApprovedBy = *m.ApprovedBy
	}
	return d
}

func toDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:          m.LineID,
		JournalEntryID:  m.JournalEntryID,
		LineNumber:      m.LineNumber,
		LineType:        domain.LineType(m.LineType),
		ProgramID:       m.ProgramID,
		PaymentCenterID: m.PaymentCenterID,
		Amount:          m.Amount,
		Description:     m.Description,
	}
}

const journalEntryColumns = `journal_entry_id, entry_date, reference, description, status, total, approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, journal_entry_id, line_number, line_type, program_id, payment_center_id, amount, description`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.EntryDate,
		&m.Reference,
		&m.Description,
		&m.Status,
		&m.Total,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanJournalLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.JournalEntryID,
		&m.LineNumber,
		&m.LineType,
		&m.ProgramID,
		&m.PaymentCenterID,
		&m.Amount,
		&m.Description,
	)
	return m, err
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
        INSERT INTO journal_lines (` + journalLineColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	for _, line := range lines {
		batch.Queue(query,
			line.LineID, line.JournalEntryID, line.LineNumber, string(line.LineType),
			line.ProgramID, line.PaymentCenterID, line.Amount, line.Description,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line: %w", classifyPgError(err))
		}
	}
	return results.Close()
}

func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO journal_entries (` + journalEntryColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	var approvedBy *string
	if entry.ApprovedBy != "" {
		approvedBy = &entry.ApprovedBy
	}
	_, err = tx.Exec(ctx, query,
		entry.JournalEntryID, entry.EntryDate, entry.Reference, entry.Description,
		string(entry.Status), entry.Total, approvedBy, entry.ApprovedAt,
		entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry: %w", classifyPgError(err))
	}

	if err := insertLines(ctx, tx, lines); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry save: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}
	d := toDomainJournalEntry(m)
	return &d, nil
}

func (r *PgxJournalRepository) FindJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries ORDER BY entry_date DESC, journal_entry_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, toDomainJournalEntry(m))
	}
	return entries, rows.Err()
}

func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_entry_id = $1 ORDER BY line_number;`
	return r.queryLines(ctx, query, entryID)
}

func (r *PgxJournalRepository) FindAllLines(ctx context.Context) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines ORDER BY journal_entry_id, line_number;`
	return r.queryLines(ctx, query)
}

func (r *PgxJournalRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.JournalLine, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, toDomainJournalLine(m))
	}
	return lines, rows.Err()
}

func (r *PgxJournalRepository) ReplaceJournalLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        UPDATE journal_entries
        SET entry_date = $1, reference = $2, description = $3, status = $4, total = $5, last_updated_at = $6, last_updated_by = $7
        WHERE journal_entry_id = $8;
    `
	cmdTag, err := tx.Exec(ctx, query,
		entry.EntryDate, entry.Reference, entry.Description, string(entry.Status),
		entry.Total, entry.LastUpdatedAt, entry.LastUpdatedBy, entry.JournalEntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", classifyPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %w", apperrors.ErrNotFound)
	}

	// Lines are swapped wholesale, never patched in place.
	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_entry_id = $1;`, entry.JournalEntryID); err != nil {
		return fmt.Errorf("failed to delete journal lines: %w", err)
	}
	if err := insertLines(ctx, tx, lines); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal line replace: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) UpdateJournalStatus(ctx context.Context, entryID string, status domain.JournalStatus, approverID string, approvedAt time.Time, updatedBy string) error {
	query := `
        UPDATE journal_entries
        SET status = $1, approved_by = $2, approved_at = $3, last_updated_at = $4, last_updated_by = $5
        WHERE journal_entry_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), approverID, approvedAt, approvedAt, updatedBy, entryID)
	if err != nil {
		return fmt.Errorf("failed to update journal status: %w", classifyPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxJournalRepository) DeleteJournalEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete journal lines: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE journal_entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %w", apperrors.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry delete: %w", err)
	}
	return nil
}
