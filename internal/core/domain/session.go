package domain

import "time"

// Session ties an identity to a live authentication token with expiry.
// The durable copy survives process restarts; the session service reconciles
// it against the authoritative user row on an interval.
type Session struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session token has passed its hard expiry.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || now.After(s.ExpiresAt)
}

// AuthEventKind classifies auth-state-change notifications.
type AuthEventKind string

const (
	AuthSignedIn     AuthEventKind = "SIGNED_IN"
	AuthTokenRefresh AuthEventKind = "TOKEN_REFRESHED"
	AuthSignedOut    AuthEventKind = "SIGNED_OUT"
)

// AuthEvent is a push-style auth-state-change notification consumed by the
// session reducer alongside the periodic reconciliation tick.
type AuthEvent struct {
	Kind    AuthEventKind
	Session *Session
}
