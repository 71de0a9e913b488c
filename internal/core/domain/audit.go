package domain

import (
	"fmt"
	"time"
)

// AuditAction tags the kind of mutation an audit entry records.
type AuditAction string

const (
	AuditCreate  AuditAction = "CREATE"
	AuditUpdate  AuditAction = "UPDATE"
	AuditDelete  AuditAction = "DELETE"
	AuditApprove AuditAction = "APPROVE"
	AuditReject  AuditAction = "REJECT"
)

// SystemActor is recorded when a mutation happens with no authenticated
// identity (seeding, migrations).
const SystemActor = "system"

// AuditLogEntry is an immutable record of a single mutating action.
// Entries are append-only: never mutated, never deleted.
type AuditLogEntry struct {
	EntryID     string      `json:"entryID"` // audit-<unixnano>
	EntityType  Collection  `json:"entityType"`
	EntityID    string      `json:"entityID"`
	Action      AuditAction `json:"action"`
	ActorID     string      `json:"actorID"`
	ActorName   string      `json:"actorName"`
	Timestamp   time.Time   `json:"timestamp"`
	Changes     string      `json:"changes"` // serialized change payload
	Description string      `json:"description"`
}

// AuditEntryID derives the append-only entry id from a high-resolution
// timestamp.
func AuditEntryID(ts time.Time) string {
	return fmt.Sprintf("audit-%d", ts.UnixNano())
}
