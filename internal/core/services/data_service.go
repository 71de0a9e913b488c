package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type dataService struct {
	BaseService
	repos portsrepo.Container
	store *cache.Store
}

// NewDataService creates the service that owns the initial load of every
// collection into the entity store.
func NewDataService(repos portsrepo.Container, store *cache.Store) portssvc.DataSvcFacade {
	return &dataService{repos: repos, store: store}
}

var _ portssvc.DataSvcFacade = (*dataService)(nil)

// InitializeData loads every collection concurrently. A failed collection is
// logged and left empty rather than aborting the whole load, so one bad table
// does not take the application down. Journal lines are joined onto their
// entries, and an empty Programs table is seeded with the default set.
func (s *dataService) InitializeData(ctx context.Context) error {
	var wg sync.WaitGroup

	load := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.LogError(ctx, err, "initial load failed for collection, leaving it empty",
					slog.String("collection", name))
				s.store.MarkDirty()
			}
		}()
	}

	load(string(domain.CollectionUsers), func() error {
		users, err := s.repos.User.FindUsers(ctx)
		if err != nil {
			return err
		}
		s.store.Users.Replace(users)
		return nil
	})
	load(string(domain.CollectionSuppliers), func() error {
		suppliers, err := s.repos.Supplier.FindSuppliers(ctx)
		if err != nil {
			return err
		}
		s.store.Suppliers.Replace(suppliers)
		return nil
	})
	load(string(domain.CollectionPaymentCenters), func() error {
		centers, err := s.repos.Reference.FindPaymentCenters(ctx)
		if err != nil {
			return err
		}
		s.store.PaymentCenters.Replace(centers)
		return nil
	})
	load(string(domain.CollectionPaymentTypes), func() error {
		types, err := s.repos.Reference.FindPaymentTypes(ctx)
		if err != nil {
			return err
		}
		s.store.PaymentTypes.Replace(types)
		return nil
	})
	load(string(domain.CollectionExpenseStatuses), func() error {
		statuses, err := s.repos.Reference.FindExpenseStatuses(ctx)
		if err != nil {
			return err
		}
		s.store.ExpenseStatuses.Replace(statuses)
		return nil
	})
	load(string(domain.CollectionBudgets), func() error {
		budgets, err := s.repos.Budget.FindBudgets(ctx)
		if err != nil {
			return err
		}
		s.store.Budgets.Replace(budgets)
		return nil
	})
	load(string(domain.CollectionExpenses), func() error {
		expenses, err := s.repos.Expense.FindExpenses(ctx)
		if err != nil {
			return err
		}
		s.store.Expenses.Replace(expenses)
		return nil
	})
	load(string(domain.CollectionJournalEntries), func() error {
		return s.loadJournalEntries(ctx)
	})
	load(string(domain.CollectionAuditLog), func() error {
		entries, err := s.repos.Audit.FindEntries(ctx, "", 500)
		if err != nil {
			return err
		}
		s.store.AuditLog.Replace(entries)
		return nil
	})
	load(string(domain.CollectionPrograms), func() error {
		programs, err := s.repos.Reference.FindPrograms(ctx)
		if err != nil {
			return err
		}
		s.store.Programs.Replace(programs)
		return nil
	})

	wg.Wait()

	if s.store.Programs.Len() == 0 {
		if err := s.seedPrograms(ctx); err != nil {
			s.LogError(ctx, err, "failed to seed default programs")
			s.store.MarkDirty()
		}
	}

	s.store.MarkLoaded()
	s.LogInfo(ctx, "initial data load complete",
		slog.Int("users", s.store.Users.Len()),
		slog.Int("suppliers", s.store.Suppliers.Len()),
		slog.Int("expenses", s.store.Expenses.Len()),
		slog.Int("journal_entries", s.store.JournalEntries.Len()),
		slog.Bool("dirty", s.store.Dirty()))
	return nil
}

// loadJournalEntries fetches entry headers and every line row, then groups
// lines onto their parent ordered by line number.
func (s *dataService) loadJournalEntries(ctx context.Context) error {
	entries, err := s.repos.Journal.FindJournalEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load journal entries: %w", err)
	}
	lines, err := s.repos.Journal.FindAllLines(ctx)
	if err != nil {
		return fmt.Errorf("failed to load journal lines: %w", err)
	}

	byEntry := make(map[string][]domain.JournalLine, len(entries))
	for _, line := range lines {
		byEntry[line.JournalEntryID] = append(byEntry[line.JournalEntryID], line)
	}
	for i := range entries {
		entries[i].Lines = byEntry[entries[i].JournalEntryID]
	}

	s.store.JournalEntries.Replace(entries)
	return nil
}

// seedPrograms persists the default program set under the system actor.
func (s *dataService) seedPrograms(ctx context.Context) error {
	now := time.Now()
	programs := make([]domain.Program, len(domain.DefaultPrograms))
	for i, name := range domain.DefaultPrograms {
		programs[i] = domain.Program{
			ProgramID: uuid.NewString(),
			Name:      name,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     domain.SystemActor,
				LastUpdatedAt: now,
				LastUpdatedBy: domain.SystemActor,
			},
		}
	}

	if err := s.repos.Reference.SavePrograms(ctx, programs); err != nil {
		return err
	}
	s.store.Programs.Replace(programs)

	for _, p := range programs {
		entry := BuildAuditEntry(domain.CollectionPrograms, p.ProgramID, domain.AuditCreate,
			encodeChanges(map[string]any{"name": p.Name}), "seeded default program", nil, time.Now())
		s.recordAudit(ctx, s.repos.Audit, s.store, entry)
	}
	s.LogInfo(ctx, "seeded default programs", slog.Int("count", len(programs)))
	return nil
}
