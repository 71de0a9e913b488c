package pgsql

import (
	"context"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	db *pgxpool.Pool
}

func newPgxAuditRepository(db *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{db: db}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

const auditColumns = `entry_id, entity_type, entity_id, action, actor_id, actor_name, timestamp, changes, description`

func (r *PgxAuditRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	query := `
        INSERT INTO audit_log (` + auditColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID, string(entry.EntityType), entry.EntityID, string(entry.Action),
		entry.ActorID, entry.ActorName, entry.Timestamp, entry.Changes, entry.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", classifyPgError(err))
	}
	return nil
}

func (r *PgxAuditRepository) FindEntries(ctx context.Context, entityType domain.Collection, limit int) ([]domain.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log`
	args := []any{}
	if entityType != "" {
		query += ` WHERE entity_type = $1`
		args = append(args, string(entityType))
	}
	query += fmt.Sprintf(` ORDER BY timestamp DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		var m models.AuditLogEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntityType,
			&m.EntityID,
			&m.Action,
			&m.ActorID,
			&m.ActorName,
			&m.Timestamp,
			&m.Changes,
			&m.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		entries = append(entries, domain.AuditLogEntry{
			EntryID:     m.EntryID,
			EntityType:  domain.Collection(m.EntityType),
			EntityID:    m.EntityID,
			Action:      domain.AuditAction(m.Action),
			ActorID:     m.ActorID,
			ActorName:   m.ActorName,
			Timestamp:   m.Timestamp,
			Changes:     m.Changes,
			Description: m.Description,
		})
	}
	return entries, rows.Err()
}
