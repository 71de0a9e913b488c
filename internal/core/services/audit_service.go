package services

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepository
	store     *cache.Store
}

// NewAuditService creates the audit log read service. Reads always hit the
// repository: the store's audit mirror is a bounded window, not the full log.
func NewAuditService(auditRepo portsrepo.AuditRepository, store *cache.Store) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, store: store}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) ListEntries(ctx context.Context, entityType domain.Collection, limit int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.auditRepo.FindEntries(ctx, entityType, limit)
}
