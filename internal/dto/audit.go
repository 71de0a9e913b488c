package dto

import (
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// ListAuditParams filters the audit log read.
type ListAuditParams struct {
	EntityType string `form:"entityType"`
	Limit      int    `form:"limit,default=100"`
}

// AuditEntryResponse is the outward shape of one audit entry.
type AuditEntryResponse struct {
	EntryID     string    `json:"entryID"`
	EntityType  string    `json:"entityType"`
	EntityID    string    `json:"entityID"`
	Action      string    `json:"action"`
	ActorID     string    `json:"actorID"`
	ActorName   string    `json:"actorName"`
	Timestamp   time.Time `json:"timestamp"`
	Changes     string    `json:"changes"`
	Description string    `json:"description"`
}

// ToAuditEntryResponses converts a slice of domain audit entries.
func ToAuditEntryResponses(entries []domain.AuditLogEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			EntryID:     e.EntryID,
			EntityType:  string(e.EntityType),
			EntityID:    e.EntityID,
			Action:      string(e.Action),
			ActorID:     e.ActorID,
			ActorName:   e.ActorName,
			Timestamp:   e.Timestamp,
			Changes:     e.Changes,
			Description: e.Description,
		}
	}
	return out
}
