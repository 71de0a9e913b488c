package pgsql

import (
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires every pgsql repository against the shared pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.Container {
	return portsrepo.Container{
		User:      newPgxUserRepository(dbPool),
		Supplier:  newPgxSupplierRepository(dbPool),
		Reference: newPgxReferenceRepository(dbPool),
		Budget:    newPgxBudgetRepository(dbPool),
		Expense:   newPgxExpenseRepository(dbPool),
		Journal:   newPgxJournalRepository(dbPool),
		Audit:     newPgxAuditRepository(dbPool),
	}
}
