package services

import (
	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/platform/config"
)

// NewServiceContainer wires every service against the shared entity store and
// the repository container.
func NewServiceContainer(cfg *config.Config, repos portsrepo.Container, sessionStore portsrepo.SessionStore, store *cache.Store) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.User, repos.Audit, store),
		Supplier:  NewSupplierService(repos.Supplier, repos.Audit, store),
		Expense:   NewExpenseService(repos.Expense, repos.Audit, store),
		Journal:   NewJournalService(repos.Journal, repos.Audit, store),
		Budget:    NewBudgetService(repos.Budget, repos.Audit, store),
		Reference: NewReferenceService(repos.Reference, store),
		Audit:     NewAuditService(repos.Audit, store),
		Session:   NewSessionService(repos.User, repos.Audit, sessionStore, store, cfg),
		Data:      NewDataService(repos, store),
	}
}
