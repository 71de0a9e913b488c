package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// SessionStore is the durable local storage for the current session.
// It owns the currentUser, sessionTimestamp and isAuthenticated keys; the
// presence or absence of those keys is load-bearing for reload survival.
type SessionStore interface {
	// Persist writes the merged identity, the session and the
	// authenticated flag.
	Persist(ctx context.Context, identity domain.User, session domain.Session) error
	// Restore reads a previously persisted identity/session pair. The
	// boolean reports whether an authenticated prior session was found.
	Restore(ctx context.Context) (*domain.User, *domain.Session, bool, error)
	// Touch refreshes the session timestamp after a successful
	// reconciliation.
	Touch(ctx context.Context, at time.Time) error
	// Clear removes every session key.
	Clear(ctx context.Context) error
}
