package services

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
)

// UserSvcFacade exposes user administration operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error)
	ApproveUser(ctx context.Context, userID string, approverID string) (*domain.User, error)
	RejectUser(ctx context.Context, userID string, approverID string) (*domain.User, error)
	DeactivateUser(ctx context.Context, userID string, updaterID string) (*domain.User, error)
}

// SupplierSvcFacade exposes supplier CRUD.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string, deleterID string) error
}

// ExpenseSvcFacade exposes expense CRUD.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	FilterExpensesByCenter(ctx context.Context, paymentCenterID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, deleterID string) error
}

// JournalSvcFacade exposes journal entry operations, including the
// Draft -> Approved | Rejected status transitions.
type JournalSvcFacade interface {
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error)
	GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterID string) (*domain.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, entryID string, deleterID string) error
	ApproveJournalEntry(ctx context.Context, entryID string, approverID string) (*domain.JournalEntry, error)
	RejectJournalEntry(ctx context.Context, entryID string, approverID string) (*domain.JournalEntry, error)
}

// BudgetSvcFacade exposes the batch budget save flow and budget reads.
type BudgetSvcFacade interface {
	SaveBudgets(ctx context.Context, req dto.SaveBudgetsRequest, actorID string) ([]domain.PaymentCenterBudget, error)
	ListBudgets(ctx context.Context) ([]domain.PaymentCenterBudget, error)
	ListBudgetsForYear(ctx context.Context, year int) ([]domain.PaymentCenterBudget, error)
}

// ReferenceSvcFacade exposes reads over the lookup tables.
type ReferenceSvcFacade interface {
	ListPaymentCenters(ctx context.Context) ([]domain.PaymentCenter, error)
	ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	ListExpenseStatuses(ctx context.Context) ([]domain.ExpenseStatus, error)
	ListPrograms(ctx context.Context) ([]domain.Program, error)
}

// AuditSvcFacade exposes reads over the append-only audit log.
type AuditSvcFacade interface {
	ListEntries(ctx context.Context, entityType domain.Collection, limit int) ([]domain.AuditLogEntry, error)
}

// DataSvcFacade owns the initial load of every collection into the entity
// store.
type DataSvcFacade interface {
	InitializeData(ctx context.Context) error
}

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	User      UserSvcFacade
	Supplier  SupplierSvcFacade
	Expense   ExpenseSvcFacade
	Journal   JournalSvcFacade
	Budget    BudgetSvcFacade
	Reference ReferenceSvcFacade
	Audit     AuditSvcFacade
	Session   SessionSvcFacade
	Data      DataSvcFacade
}
