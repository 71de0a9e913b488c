package cache

import (
	"sync/atomic"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// Store is the in-memory shadow of every server-side collection, shared by
// the service layer. Mutations write through to the repositories first and
// merge into the store afterwards, so the store never holds state the
// database rejected.
type Store struct {
	Users           *Collection[domain.User]
	Suppliers       *Collection[domain.Supplier]
	PaymentCenters  *Collection[domain.PaymentCenter]
	PaymentTypes    *Collection[domain.PaymentType]
	ExpenseStatuses *Collection[domain.ExpenseStatus]
	Programs        *Collection[domain.Program]
	Budgets         *Collection[domain.PaymentCenterBudget]
	Expenses        *Collection[domain.Expense]
	JournalEntries  *Collection[domain.JournalEntry]
	AuditLog        *Collection[domain.AuditLogEntry]

	loaded atomic.Bool
	dirty  atomic.Bool
}

// NewStore returns a store with every collection empty and not yet loaded.
func NewStore() *Store {
	return &Store{
		Users:           NewCollection[domain.User](),
		Suppliers:       NewCollection[domain.Supplier](),
		PaymentCenters:  NewCollection[domain.PaymentCenter](),
		PaymentTypes:    NewCollection[domain.PaymentType](),
		ExpenseStatuses: NewCollection[domain.ExpenseStatus](),
		Programs:        NewCollection[domain.Program](),
		Budgets:         NewCollection[domain.PaymentCenterBudget](),
		Expenses:        NewCollection[domain.Expense](),
		JournalEntries:  NewCollection[domain.JournalEntry](),
		AuditLog:        NewCollection[domain.AuditLogEntry](),
	}
}

// MarkLoaded records that the initial load has completed.
func (s *Store) MarkLoaded() { s.loaded.Store(true) }

// Loaded reports whether the initial load has completed.
func (s *Store) Loaded() bool { return s.loaded.Load() }

// MarkDirty flags that local state diverged from a failed remote write and a
// reconciliation pass is warranted.
func (s *Store) MarkDirty() { s.dirty.Store(true) }

// ClearDirty resets the divergence flag after a successful reload.
func (s *Store) ClearDirty() { s.dirty.Store(false) }

// Dirty reports whether local state may have diverged.
func (s *Store) Dirty() bool { return s.dirty.Load() }
