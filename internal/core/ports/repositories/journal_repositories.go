package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries and
// their lines. Multi-row operations (save, line replace, cascade delete) run
// inside a single database transaction.
type JournalRepository interface {
	// SaveJournalEntry inserts the entry header and all of its lines.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
	// FindLinesByEntryID returns the entry's lines ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	// FindAllLines returns every line row ordered by entry id then line
	// number, for the initial load's entry/line join.
	FindAllLines(ctx context.Context) ([]domain.JournalLine, error)
	// ReplaceJournalLines updates the entry header and swaps its full line
	// set (delete then insert) atomically.
	ReplaceJournalLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	UpdateJournalStatus(ctx context.Context, entryID string, status domain.JournalStatus, approverID string, approvedAt time.Time, updatedBy string) error
	// DeleteJournalEntry removes the entry and cascades to its lines.
	DeleteJournalEntry(ctx context.Context, entryID string) error
}
