package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepository
	auditRepo    portsrepo.AuditRepository
	store        *cache.Store
}

// NewSupplierService creates the supplier CRUD service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepository, auditRepo portsrepo.AuditRepository, store *cache.Store) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo, auditRepo: auditRepo, store: store}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:   uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		Category:     req.Category,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		PaymentTerms: req.PaymentTerms,
		Status:       domain.SupplierActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "failed to save supplier", slog.String("code", req.Code))
		return nil, err
	}
	s.store.Suppliers.Append(supplier)

	actor := actorFromStore(s.store, creatorID)
	entry := BuildAuditEntry(domain.CollectionSuppliers, supplier.SupplierID, domain.AuditCreate,
		encodeChanges(map[string]any{"code": supplier.Code, "name": supplier.Name}),
		fmt.Sprintf("created supplier %s", supplier.Name), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, entry)

	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	if supplier, ok := s.store.Suppliers.Get(supplierID); ok {
		return &supplier, nil
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	s.store.Suppliers.Upsert(*supplier)
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	if s.store.Loaded() {
		return s.store.Suppliers.Snapshot(), nil
	}
	suppliers, err := s.supplierRepo.FindSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Suppliers.Replace(suppliers)
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterID string) (*domain.Supplier, error) {
	// Edits only apply to records already in the store; an unknown id fails
	// before any remote work.
	supplier, ok := s.store.Suppliers.Get(supplierID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	before := supplier

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.ContactName != nil {
		supplier.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		supplier.ContactPhone = *req.ContactPhone
	}
	if req.PaymentTerms != nil {
		supplier.PaymentTerms = *req.PaymentTerms
	}
	if req.Status != nil {
		supplier.Status = domain.SupplierStatus(*req.Status)
	}
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = updaterID

	if err := s.supplierRepo.UpdateSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	s.store.Suppliers.Upsert(supplier)

	actor := actorFromStore(s.store, updaterID)
	entry := BuildAuditEntry(domain.CollectionSuppliers, supplierID, domain.AuditUpdate,
		encodeBeforeAfter(before, supplier),
		fmt.Sprintf("updated supplier %s", supplier.Name), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, entry)

	return &supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, deleterID string) error {
	// A record absent from the store cannot be deleted remotely either;
	// skip the round trip.
	supplier, ok := s.store.Suppliers.Get(supplierID)
	if !ok {
		return apperrors.ErrNotFound
	}

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		s.LogError(ctx, err, "failed to delete supplier", slog.String("supplier_id", supplierID))
		return err
	}
	s.store.Suppliers.Remove(supplierID)

	actor := actorFromStore(s.store, deleterID)
	entry := BuildAuditEntry(domain.CollectionSuppliers, supplierID, domain.AuditDelete,
		encodeSnapshot(supplier),
		fmt.Sprintf("deleted supplier %s", supplier.Name), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, entry)

	return nil
}
