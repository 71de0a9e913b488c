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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	auditRepo   portsrepo.AuditRepository
	store       *cache.Store
}

// NewExpenseService creates the expense CRUD service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, auditRepo portsrepo.AuditRepository, store *cache.Store) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, auditRepo: auditRepo, store: store}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorID string) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		ExpenseDate:     req.ExpenseDate,
		Description:     req.Description,
		SupplierID:      req.SupplierID,
		Amount:          req.Amount,
		PaymentTypeID:   req.PaymentTypeID,
		PaymentCenterID: req.PaymentCenterID,
		ExpenseStatusID: req.ExpenseStatusID,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to save expense", slog.String("supplier_id", req.SupplierID))
		return nil, err
	}
	s.store.Expenses.Append(expense)

	actor := actorFromStore(s.store, creatorID)
	entry := BuildAuditEntry(domain.CollectionExpenses, expense.ExpenseID, domain.AuditCreate,
		encodeChanges(map[string]any{"description": expense.Description, "amount": expense.Amount.String()}),
		fmt.Sprintf("created expense %s", expense.Description), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, entry)

	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if expense, ok := s.store.Expenses.Get(expenseID); ok {
		return &expense, nil
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	s.store.Expenses.Upsert(*expense)
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	if s.store.Loaded() {
		return s.store.Expenses.Snapshot(), nil
	}
	expenses, err := s.expenseRepo.FindExpenses(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Expenses.Replace(expenses)
	return expenses, nil
}

func (s *expenseService) FilterExpensesByCenter(ctx context.Context, paymentCenterID string) ([]domain.Expense, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Expense{}
	for _, e := range expenses {
		if e.PaymentCenterID == paymentCenterID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterID string) (*domain.Expense, error) {
	// Edits only apply to records already in the store; an unknown id fails
	// before any remote work.
	expense, ok := s.store.Expenses.Get(expenseID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	before := expense

	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.SupplierID != nil {
		expense.SupplierID = *req.SupplierID
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.PaymentTypeID != nil {
		expense.PaymentTypeID = *req.PaymentTypeID
	}
	if req.PaymentCenterID != nil {
		expense.PaymentCenterID = *req.PaymentCenterID
	}
	if req.ExpenseStatusID != nil {
		expense.ExpenseStatusID = *req.ExpenseStatusID
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterID

	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	s.store.Expenses.Upsert(expense)

	actor := actorFromStore(s.store, updaterID)
	entry := BuildAuditEntry(domain.CollectionExpenses, expenseID, domain.AuditUpdate,
		encodeBeforeAfter(before, expense),
		fmt.Sprintf("updated expense %s", expense.Description), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, entry)

	return &expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, deleterID string) error {
	// A record absent from the store cannot be deleted remotely either;
	// skip the round trip.
	expense, ok := s.store.Expenses.Get(expenseID)
	if !ok {
		return apperrors.ErrNotFound
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	s.store.Expenses.Remove(expenseID)

	actor := actorFromStore(s.store, deleterID)
	entry := BuildAuditEntry(domain.CollectionExpenses, expenseID, domain.AuditDelete,
		encodeSnapshot(expense),
		fmt.Sprintf("deleted expense %s", expense.Description), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, entry)

	return nil
}
