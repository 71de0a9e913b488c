package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the storage shape of a journal entry header.
type JournalEntry struct {
	JournalEntryID string          `db:"journal_entry_id"`
	EntryDate      time.Time       `db:"entry_date"`
	Reference      string          `db:"reference"`
	Description    string          `db:"description"`
	Status         string          `db:"status"`
	Total          decimal.Decimal `db:"total"`
	ApprovedBy     *string         `db:"approved_by"`
	ApprovedAt     *time.Time      `db:"approved_at"`
	AuditFields
}

// JournalLine is the storage shape of one line row. Lines for an entry are
// deleted and re-inserted on edit, never updated in place.
type JournalLine struct {
	LineID          string          `db:"line_id"`
	JournalEntryID  string          `db:"journal_entry_id"`
	LineNumber      int             `db:"line_number"`
	LineType        string          `db:"line_type"`
	ProgramID       string          `db:"program_id"`
	PaymentCenterID string          `db:"payment_center_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
}
