package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the workflow state of a journal entry.
type JournalStatus string

const (
	JournalDraft    JournalStatus = "DRAFT"
	JournalApproved JournalStatus = "APPROVED"
	JournalRejected JournalStatus = "REJECTED"
)

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// JournalLine is a single typed line within a journal entry, tagged with a
// program and a payment center. Lines are replaced wholesale on entry edit,
// never patched in place.
type JournalLine struct {
	LineID          string          `json:"lineID"`
	JournalEntryID  string          `json:"journalEntryID"`
	LineNumber      int             `json:"lineNumber"`
	LineType        LineType        `json:"lineType"`
	ProgramID       string          `json:"programID"`
	PaymentCenterID string          `json:"paymentCenterID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// JournalEntry aggregates one or more typed lines. Its Total is derived and
// recomputed on every save.
type JournalEntry struct {
	JournalEntryID string          `json:"journalEntryID"`
	EntryDate      time.Time       `json:"entryDate"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Status         JournalStatus   `json:"status"`
	Total          decimal.Decimal `json:"total"`
	ApprovedBy     string          `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	Lines          []JournalLine   `json:"lines"`
	AuditFields
}

// ComputeTotal derives the entry total: the sum of debit-typed line amounts.
// Credit lines do not contribute.
func ComputeTotal(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if line.LineType == Debit {
			total = total.Add(line.Amount)
		}
	}
	return total
}
