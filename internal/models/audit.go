package models

import "time"

// AuditLogEntry is the storage shape of an append-only audit row.
type AuditLogEntry struct {
	EntryID     string    `db:"entry_id"`
	EntityType  string    `db:"entity_type"`
	EntityID    string    `db:"entity_id"`
	Action      string    `db:"action"`
	ActorID     string    `db:"actor_id"`
	ActorName   string    `db:"actor_name"`
	Timestamp   time.Time `db:"timestamp"`
	Changes     string    `db:"changes"`
	Description string    `db:"description"`
}
