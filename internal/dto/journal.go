package dto

import (
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one typed line within a create or update request.
// Line numbers are assigned from slice order.
type JournalLineRequest struct {
	LineType        string          `json:"lineType" binding:"required,oneof=DEBIT CREDIT"`
	ProgramID       string          `json:"programID" binding:"required"`
	PaymentCenterID string          `json:"paymentCenterID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,nonneg"`
	Description     string          `json:"description"`
}

// CreateJournalEntryRequest carries a new journal entry and its lines.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time            `json:"entryDate" binding:"required"`
	Reference   string               `json:"reference"`
	Description string               `json:"description" binding:"required"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateJournalEntryRequest edits an entry. When Lines is present the full
// line set is replaced; there is no per-line patching.
type UpdateJournalEntryRequest struct {
	EntryDate   *time.Time            `json:"entryDate"`
	Reference   *string               `json:"reference"`
	Description *string               `json:"description"`
	Lines       *[]JournalLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// JournalLineResponse is the outward shape of a line.
type JournalLineResponse struct {
	LineID          string          `json:"lineID"`
	LineNumber      int             `json:"lineNumber"`
	LineType        string          `json:"lineType"`
	ProgramID       string          `json:"programID"`
	PaymentCenterID string          `json:"paymentCenterID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// JournalEntryResponse is the outward shape of an entry with its derived
// total and lines.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journalEntryID"`
	EntryDate      time.Time             `json:"entryDate"`
	Reference      string                `json:"reference"`
	Description    string                `json:"description"`
	Status         string                `json:"status"`
	Total          decimal.Decimal       `json:"total"`
	ApprovedBy     string                `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time            `json:"approvedAt,omitempty"`
	Lines          []JournalLineResponse `json:"lines"`
	CreatedBy      string                `json:"createdBy"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i, line := range entry.Lines {
		lines[i] = JournalLineResponse{
			LineID:          line.LineID,
			LineNumber:      line.LineNumber,
			LineType:        string(line.LineType),
			ProgramID:       line.ProgramID,
			PaymentCenterID: line.PaymentCenterID,
			Amount:          line.Amount,
			Description:     line.Description,
		}
	}
	return JournalEntryResponse{
		JournalEntryID: entry.JournalEntryID,
		EntryDate:      entry.EntryDate,
		Reference:      entry.Reference,
		Description:    entry.Description,
		Status:         string(entry.Status),
		Total:          entry.Total,
		ApprovedBy:     entry.ApprovedBy,
		ApprovedAt:     entry.ApprovedAt,
		Lines:          lines,
		CreatedBy:      entry.CreatedBy,
		CreatedAt:      entry.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}
