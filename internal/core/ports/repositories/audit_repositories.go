package repositories

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// AuditRepository defines persistence for the append-only audit log.
// There is no update or delete: entries are immutable once written.
type AuditRepository interface {
	AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error
	FindEntries(ctx context.Context, entityType domain.Collection, limit int) ([]domain.AuditLogEntry, error)
}
