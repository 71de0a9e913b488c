package services

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
)

// SessionSvcFacade owns the current authenticated identity and its durable
// mirror. Login, logout, the reconciliation tick and auth-state-change
// notifications all funnel through a single reducer, so interleaved writers
// cannot corrupt the identity.
type SessionSvcFacade interface {
	// RestoreFromDurableStorage reads a previously persisted identity so
	// callers can render an authenticated state before any remote
	// confirmation. Returns whether a prior session was found.
	RestoreFromDurableStorage(ctx context.Context) bool
	// Initialize fetches the authoritative session and re-derives the
	// merged identity. A transient failure does not clear an
	// already-restored identity.
	Initialize(ctx context.Context) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Refresh issues a fresh token for the current identity. The refreshed
	// session reaches the reducer as a token-refresh event.
	Refresh(ctx context.Context) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	Current() *domain.User
	IsAuthenticated() bool
	HasPermission(p domain.Permission) bool
	IsAdmin() bool

	// Notify feeds an auth-state-change event into the reducer.
	Notify(event domain.AuthEvent)
	// Run starts the reducer loop and the periodic reconciliation ticker;
	// it returns when ctx is cancelled.
	Run(ctx context.Context)
}
