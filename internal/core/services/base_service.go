package services

import (
	"context"
	"log/slog"

	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// actorFromStore resolves the acting user from the entity store so audit
// entries carry a display name. A missing row degrades to the system actor.
func actorFromStore(store *cache.Store, userID string) *domain.User {
	if user, ok := store.Users.Get(userID); ok {
		return &user
	}
	return nil
}

// recordAudit persists one audit entry and mirrors it in the store. Audit
// failures never fail the mutation they describe; they are logged and the
// store is flagged dirty instead.
func (s *BaseService) recordAudit(ctx context.Context, auditRepo portsrepo.AuditRepository, store *cache.Store, entry domain.AuditLogEntry) {
	if err := auditRepo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to append audit entry",
			slog.String("entity_type", string(entry.EntityType)),
			slog.String("entity_id", entry.EntityID),
			slog.String("action", string(entry.Action)))
		store.MarkDirty()
		return
	}
	store.AuditLog.Append(entry)
}
