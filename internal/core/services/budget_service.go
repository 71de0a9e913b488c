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
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
	auditRepo  portsrepo.AuditRepository
	store      *cache.Store
}

// NewBudgetService creates the budget reconciliation service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, auditRepo portsrepo.AuditRepository, store *cache.Store) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, auditRepo: auditRepo, store: store}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// SaveBudgets applies a batch budget edit for one year. The whole batch is
// parsed and validated before the first write. Each (center, year) pair
// resolves to the deterministic composite id; remote existence of that id
// decides between insert and update, never a blind upsert, so creation and
// modification keep distinct audit records.
func (s *budgetService) SaveBudgets(ctx context.Context, req dto.SaveBudgetsRequest, actorID string) ([]domain.PaymentCenterBudget, error) {
	type parsedAmount struct {
		centerID string
		amount   decimal.Decimal
	}
	parsed := make([]parsedAmount, 0, len(req.Amounts))
	for centerID, raw := range req.Amounts {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("amount for payment center %s is not a number: %w", centerID, apperrors.ErrValidation)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("amount for payment center %s must not be negative: %w", centerID, apperrors.ErrValidation)
		}
		if !s.store.PaymentCenters.Contains(centerID) {
			return nil, fmt.Errorf("unknown payment center %s: %w", centerID, apperrors.ErrValidation)
		}
		parsed = append(parsed, parsedAmount{centerID: centerID, amount: amount})
	}

	actor := actorFromStore(s.store, actorID)
	saved := make([]domain.PaymentCenterBudget, 0, len(parsed))
	for _, p := range parsed {
		budgetID := domain.BudgetID(p.centerID, req.Year)
		now := time.Now()

		exists, err := s.budgetRepo.BudgetExists(ctx, budgetID)
		if err != nil {
			s.LogError(ctx, err, "failed to check budget existence", slog.String("budget_id", budgetID))
			return saved, err
		}

		budget := domain.PaymentCenterBudget{
			BudgetID:        budgetID,
			PaymentCenterID: p.centerID,
			Year:            req.Year,
			Amount:          p.amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}

		action := domain.AuditCreate
		payload := encodeChanges(map[string]any{"year": req.Year, "amount": p.amount.String()})
		if exists {
			existing, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
			if err != nil {
				s.LogError(ctx, err, "failed to load existing budget", slog.String("budget_id", budgetID))
				return saved, err
			}
			budget.CreatedAt = existing.CreatedAt
			budget.CreatedBy = existing.CreatedBy
			if err := s.budgetRepo.UpdateBudget(ctx, budget); err != nil {
				s.LogError(ctx, err, "failed to update budget", slog.String("budget_id", budgetID))
				return saved, err
			}
			action = domain.AuditUpdate
			payload = encodeBeforeAfter(*existing, budget)
		} else {
			if err := s.budgetRepo.InsertBudget(ctx, budget); err != nil {
				s.LogError(ctx, err, "failed to insert budget", slog.String("budget_id", budgetID))
				return saved, err
			}
		}
		s.store.Budgets.Upsert(budget)
		saved = append(saved, budget)

		audit := BuildAuditEntry(domain.CollectionBudgets, budgetID, action,
			payload,
			fmt.Sprintf("budget for payment center %s, year %d set to %s", p.centerID, req.Year, p.amount.String()),
			actor, time.Now())
		s.recordAudit(ctx, s.auditRepo, s.store, audit)
	}

	return saved, nil
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.PaymentCenterBudget, error) {
	if s.store.Loaded() {
		return s.store.Budgets.Snapshot(), nil
	}
	budgets, err := s.budgetRepo.FindBudgets(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Budgets.Replace(budgets)
	return budgets, nil
}

func (s *budgetService) ListBudgetsForYear(ctx context.Context, year int) ([]domain.PaymentCenterBudget, error) {
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.PaymentCenterBudget{}
	for _, b := range budgets {
		if b.Year == year {
			out = append(out, b)
		}
	}
	return out, nil
}
