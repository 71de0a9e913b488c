package domain

import (
	"sort"
	"strings"
	"time"
)

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
	RoleViewer  UserRole = "viewer"
)

// UserStatus tracks the approval lifecycle of a user account.
// Deactivation (INACTIVE) is the terminal state in the normal flow; accounts
// are never hard-deleted.
type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusRejected UserStatus = "rejected"
)

// Permission is a single capability tag (e.g. "expenses.write").
type Permission string

// Capability tags checked by the HTTP layer. Administrative users bypass
// these entirely.
const (
	PermUsersManage     Permission = "users.manage"
	PermSuppliersWrite  Permission = "suppliers.write"
	PermExpensesWrite   Permission = "expenses.write"
	PermJournalsWrite   Permission = "journals.write"
	PermJournalsApprove Permission = "journals.approve"
	PermBudgetsWrite    Permission = "budgets.write"
	PermAuditView       Permission = "audit.view"
)

// PermissionSet is the in-memory representation of a user's capability tags.
// The delimited-string wire encoding exists only at the storage boundary.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from individual tags, ignoring empties.
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

// Has reports whether the tag is present.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Encode renders the set as the comma-delimited wire format, sorted for
// deterministic storage.
func (s PermissionSet) Encode() string {
	if len(s) == 0 {
		return ""
	}
	tags := make([]string, 0, len(s))
	for p := range s {
		tags = append(tags, string(p))
	}
	sort.Strings(tags)
	return strings.Join(tags, ",")
}

// DecodePermissionSet parses the comma-delimited wire format.
func DecodePermissionSet(encoded string) PermissionSet {
	set := PermissionSet{}
	for _, tag := range strings.Split(encoded, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			set[Permission(tag)] = struct{}{}
		}
	}
	return set
}

// User is the merged identity of an account: auth fields plus the
// application profile (role, permissions, approval status).
type User struct {
	UserID       string        `json:"userID"`
	Username     string        `json:"username"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Role         UserRole      `json:"role"`
	Permissions  PermissionSet `json:"permissions"`
	Status       UserStatus    `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsAdmin reports whether the user is administrative, either by role or by a
// designated administrative email address.
func (u *User) IsAdmin(adminEmail string) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	return adminEmail != "" && strings.EqualFold(u.Email, adminEmail)
}

// HasPermission reports whether the user holds the capability tag.
// Administrative users are granted every permission unconditionally,
// bypassing the explicit set.
func (u *User) HasPermission(p Permission, adminEmail string) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin(adminEmail) {
		return true
	}
	return u.Permissions.Has(p)
}
