package services

import (
	"encoding/json"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// BuildAuditEntry assembles one immutable audit record. A nil actor is
// recorded as the system actor, which happens during seeding and other
// unattended mutations.
func BuildAuditEntry(entityType domain.Collection, entityID string, action domain.AuditAction, changes, description string, actor *domain.User, now time.Time) domain.AuditLogEntry {
	actorID := domain.SystemActor
	actorName := domain.SystemActor
	if actor != nil {
		actorID = actor.UserID
		actorName = actor.Name
	}
	return domain.AuditLogEntry{
		EntryID:     domain.AuditEntryID(now),
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		ActorID:     actorID,
		ActorName:   actorName,
		Timestamp:   now,
		Changes:     changes,
		Description: description,
	}
}

// encodeChanges serializes the changed-field payload for an audit entry.
// Marshal failures degrade to an empty payload rather than blocking the
// mutation being recorded.
func encodeChanges(changes map[string]any) string {
	if len(changes) == 0 {
		return ""
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return ""
	}
	return string(raw)
}

// encodeSnapshot serializes a full record, so a deletion audit entry keeps
// the removed row readable after the row itself is gone.
func encodeSnapshot(record any) string {
	raw, err := json.Marshal(record)
	if err != nil {
		return ""
	}
	return string(raw)
}

// encodeBeforeAfter serializes both sides of an update.
func encodeBeforeAfter(before, after any) string {
	raw, err := json.Marshal(map[string]any{"before": before, "after": after})
	if err != nil {
		return ""
	}
	return string(raw)
}
