package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Collection names the table-like record groups mirrored by the entity store.
type Collection string

const (
	CollectionUsers           Collection = "users"
	CollectionSuppliers       Collection = "suppliers"
	CollectionPaymentCenters  Collection = "payment_centers"
	CollectionPaymentTypes    Collection = "payment_types"
	CollectionExpenseStatuses Collection = "expense_statuses"
	CollectionPrograms        Collection = "programs"
	CollectionBudgets         Collection = "payment_center_budgets"
	CollectionExpenses        Collection = "expenses"
	CollectionJournalEntries  Collection = "journal_entries"
	CollectionAuditLog        Collection = "audit_log"
)
