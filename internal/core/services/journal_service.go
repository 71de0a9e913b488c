package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	auditRepo   portsrepo.AuditRepository
	store       *cache.Store
}

// NewJournalService creates the journal entry service.
func NewJournalService(journalRepo portsrepo.JournalRepository, auditRepo portsrepo.AuditRepository, store *cache.Store) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, auditRepo: auditRepo, store: store}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines to domain lines, assigning line numbers
// from slice order and fresh line ids.
func buildLines(entryID string, reqLines []dto.JournalLineRequest) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, rl := range reqLines {
		if rl.Amount.IsNegative() {
			return nil, fmt.Errorf("line %d amount must not be negative: %w", i+1, apperrors.ErrValidation)
		}
		lines[i] = domain.JournalLine{
			LineID:          uuid.NewString(),
			JournalEntryID:  entryID,
			LineNumber:      i + 1,
			LineType:        domain.LineType(rl.LineType),
			ProgramID:       rl.ProgramID,
			PaymentCenterID: rl.PaymentCenterID,
			Amount:          rl.Amount,
			Description:     rl.Description,
		}
	}
	return lines, nil
}

func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	entryID := uuid.NewString()
	lines, err := buildLines(entryID, req.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID: entryID,
		EntryDate:      req.EntryDate,
		Reference:      req.Reference,
		Description:    req.Description,
		Status:         domain.JournalDraft,
		Total:          domain.ComputeTotal(lines),
		Lines:          lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "failed to save journal entry", slog.String("reference", req.Reference))
		return nil, err
	}
	s.store.JournalEntries.Append(entry)

	actor := actorFromStore(s.store, creatorID)
	audit := BuildAuditEntry(domain.CollectionJournalEntries, entryID, domain.AuditCreate,
		encodeChanges(map[string]any{"description": entry.Description, "total": entry.Total.String(), "lines": len(lines)}),
		fmt.Sprintf("created journal entry %s", entry.Description), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return &entry, nil
}

func (s *journalService) GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if entry, ok := s.store.JournalEntries.Get(entryID); ok {
		return &entry, nil
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	s.store.JournalEntries.Upsert(*entry)
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	if s.store.Loaded() {
		return s.store.JournalEntries.Snapshot(), nil
	}
	entries, err := s.journalRepo.FindJournalEntries(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *journalService) UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterID string) (*domain.JournalEntry, error) {
	// Edits only apply to records already in the store; an unknown id fails
	// before any remote work.
	entry, ok := s.store.JournalEntries.Get(entryID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if entry.Status != domain.JournalDraft {
		return nil, fmt.Errorf("only draft entries can be edited: %w", apperrors.ErrConflict)
	}
	before := entry

	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Lines != nil {
		lines, err := buildLines(entryID, *req.Lines)
		if err != nil {
			return nil, err
		}
		entry.Lines = lines
	}
	entry.Total = domain.ComputeTotal(entry.Lines)
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterID

	if err := s.journalRepo.ReplaceJournalLines(ctx, entry, entry.Lines); err != nil {
		s.LogError(ctx, err, "failed to update journal entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	s.store.JournalEntries.Upsert(entry)

	actor := actorFromStore(s.store, updaterID)
	audit := BuildAuditEntry(domain.CollectionJournalEntries, entryID, domain.AuditUpdate,
		encodeBeforeAfter(before, entry),
		fmt.Sprintf("updated journal entry %s", entry.Description), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return &entry, nil
}

func (s *journalService) DeleteJournalEntry(ctx context.Context, entryID string, deleterID string) error {
	// A record absent from the store cannot be deleted remotely either;
	// skip the round trip.
	entry, ok := s.store.JournalEntries.Get(entryID)
	if !ok {
		return apperrors.ErrNotFound
	}

	if err := s.journalRepo.DeleteJournalEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "failed to delete journal entry", slog.String("journal_entry_id", entryID))
		return err
	}
	s.store.JournalEntries.Remove(entryID)

	actor := actorFromStore(s.store, deleterID)
	audit := BuildAuditEntry(domain.CollectionJournalEntries, entryID, domain.AuditDelete,
		encodeSnapshot(entry),
		fmt.Sprintf("deleted journal entry %s", entry.Description), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return nil
}

func (s *journalService) ApproveJournalEntry(ctx context.Context, entryID string, approverID string) (*domain.JournalEntry, error) {
	return s.transition(ctx, entryID, approverID, domain.JournalApproved, domain.AuditApprove)
}

func (s *journalService) RejectJournalEntry(ctx context.Context, entryID string, approverID string) (*domain.JournalEntry, error) {
	return s.transition(ctx, entryID, approverID, domain.JournalRejected, domain.AuditReject)
}

// transition moves a draft entry to its terminal status, stamping the
// approver. Non-draft entries are rejected as conflicts.
func (s *journalService) transition(ctx context.Context, entryID, approverID string, status domain.JournalStatus, action domain.AuditAction) (*domain.JournalEntry, error) {
	entry, err := s.GetJournalEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.JournalDraft {
		return nil, fmt.Errorf("journal entry is not in draft status: %w", apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.journalRepo.UpdateJournalStatus(ctx, entryID, status, approverID, now, approverID); err != nil {
		s.LogError(ctx, err, "failed to update journal status",
			slog.String("journal_entry_id", entryID), slog.String("status", string(status)))
		return nil, err
	}

	entry.Status = status
	entry.ApprovedBy = approverID
	entry.ApprovedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = approverID
	s.store.JournalEntries.Upsert(*entry)

	actor := actorFromStore(s.store, approverID)
	audit := BuildAuditEntry(domain.CollectionJournalEntries, entryID, action,
		encodeChanges(map[string]any{"status": string(status)}),
		fmt.Sprintf("journal entry %s %s", entry.Description, string(status)), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return entry, nil
}
