package services

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
)

type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepository
	store         *cache.Store
}

// NewReferenceService creates the lookup-table read service.
func NewReferenceService(referenceRepo portsrepo.ReferenceRepository, store *cache.Store) portssvc.ReferenceSvcFacade {
	return &referenceService{referenceRepo: referenceRepo, store: store}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

func (s *referenceService) ListPaymentCenters(ctx context.Context) ([]domain.PaymentCenter, error) {
	if s.store.Loaded() {
		return s.store.PaymentCenters.Snapshot(), nil
	}
	centers, err := s.referenceRepo.FindPaymentCenters(ctx)
	if err != nil {
		return nil, err
	}
	s.store.PaymentCenters.Replace(centers)
	return centers, nil
}

func (s *referenceService) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	if s.store.Loaded() {
		return s.store.PaymentTypes.Snapshot(), nil
	}
	types, err := s.referenceRepo.FindPaymentTypes(ctx)
	if err != nil {
		return nil, err
	}
	s.store.PaymentTypes.Replace(types)
	return types, nil
}

func (s *referenceService) ListExpenseStatuses(ctx context.Context) ([]domain.ExpenseStatus, error) {
	if s.store.Loaded() {
		return s.store.ExpenseStatuses.Snapshot(), nil
	}
	statuses, err := s.referenceRepo.FindExpenseStatuses(ctx)
	if err != nil {
		return nil, err
	}
	s.store.ExpenseStatuses.Replace(statuses)
	return statuses, nil
}

func (s *referenceService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	if s.store.Loaded() {
		return s.store.Programs.Snapshot(), nil
	}
	programs, err := s.referenceRepo.FindPrograms(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Programs.Replace(programs)
	return programs, nil
}
