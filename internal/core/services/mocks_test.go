package services_test

import (
	"context"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock SupplierRepository ---

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	var supplier *domain.Supplier
	if args.Get(0) != nil {
		supplier = args.Get(0).(*domain.Supplier)
	}
	return supplier, args.Error(1)
}

func (m *MockSupplierRepository) FindSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	var suppliers []domain.Supplier
	if args.Get(0) != nil {
		suppliers = args.Get(0).([]domain.Supplier)
	}
	return suppliers, args.Error(1)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalRepository) FindJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	return entries, args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	return lines, args.Error(1)
}

func (m *MockJournalRepository) FindAllLines(ctx context.Context) ([]domain.JournalLine, error) {
	args := m.Called(ctx)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	return lines, args.Error(1)
}

func (m *MockJournalRepository) ReplaceJournalLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalStatus(ctx context.Context, entryID string, status domain.JournalStatus, approverID string, approvedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, entryID, status, approverID, approvedAt, updatedBy)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournalEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) BudgetExists(ctx context.Context, budgetID string) (bool, error) {
	args := m.Called(ctx, budgetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.PaymentCenterBudget, error) {
	args := m.Called(ctx, budgetID)
	var budget *domain.PaymentCenterBudget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.PaymentCenterBudget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) FindBudgets(ctx context.Context) ([]domain.PaymentCenterBudget, error) {
	args := m.Called(ctx)
	var budgets []domain.PaymentCenterBudget
	if args.Get(0) != nil {
		budgets = args.Get(0).([]domain.PaymentCenterBudget)
	}
	return budgets, args.Error(1)
}

func (m *MockBudgetRepository) InsertBudget(ctx context.Context, budget domain.PaymentCenterBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.PaymentCenterBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// --- Mock ReferenceRepository ---

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) FindPaymentCenters(ctx context.Context) ([]domain.PaymentCenter, error) {
	args := m.Called(ctx)
	var centers []domain.PaymentCenter
	if args.Get(0) != nil {
		centers = args.Get(0).([]domain.PaymentCenter)
	}
	return centers, args.Error(1)
}

func (m *MockReferenceRepository) FindPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	args := m.Called(ctx)
	var types []domain.PaymentType
	if args.Get(0) != nil {
		types = args.Get(0).([]domain.PaymentType)
	}
	return types, args.Error(1)
}

func (m *MockReferenceRepository) FindExpenseStatuses(ctx context.Context) ([]domain.ExpenseStatus, error) {
	args := m.Called(ctx)
	var statuses []domain.ExpenseStatus
	if args.Get(0) != nil {
		statuses = args.Get(0).([]domain.ExpenseStatus)
	}
	return statuses, args.Error(1)
}

func (m *MockReferenceRepository) FindPrograms(ctx context.Context) ([]domain.Program, error) {
	args := m.Called(ctx)
	var programs []domain.Program
	if args.Get(0) != nil {
		programs = args.Get(0).([]domain.Program)
	}
	return programs, args.Error(1)
}

func (m *MockReferenceRepository) SavePrograms(ctx context.Context, programs []domain.Program) error {
	args := m.Called(ctx, programs)
	return args.Error(0)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindEntries(ctx context.Context, entityType domain.Collection, limit int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityType, limit)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

// --- Mock SessionStore ---

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Persist(ctx context.Context, identity domain.User, session domain.Session) error {
	args := m.Called(ctx, identity, session)
	return args.Error(0)
}

func (m *MockSessionStore) Restore(ctx context.Context) (*domain.User, *domain.Session, bool, error) {
	args := m.Called(ctx)
	var identity *domain.User
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.User)
	}
	var session *domain.Session
	if args.Get(1) != nil {
		session = args.Get(1).(*domain.Session)
	}
	return identity, session, args.Bool(2), args.Error(3)
}

func (m *MockSessionStore) Touch(ctx context.Context, at time.Time) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
