package models

import "time"

// User is the storage shape of a user row. Permissions are kept in the
// delimited-string wire format; decoding to the domain set happens in the
// repository mapping layer only.
type User struct {
	UserID         string     `db:"user_id"`
	Username       string     `db:"username"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	Role           string     `db:"role"`
	PermissionsCSV string     `db:"permissions"`
	Status         string     `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// AuditFields holds the standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
