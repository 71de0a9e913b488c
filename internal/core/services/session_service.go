package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/platform/config"
	"github.com/fintrackhq/finance_tracker_app/internal/utils"
	"github.com/google/uuid"
)

// breakGlassUserID identifies the synthetic identity issued by the last-resort
// administrative login fallback.
const breakGlassUserID = "break-glass-admin"

type sessionService struct {
	BaseService
	userRepo     portsrepo.UserRepository
	auditRepo    portsrepo.AuditRepository
	sessionStore portsrepo.SessionStore
	store        *cache.Store
	cfg          *config.Config

	// All state transitions funnel through apply, so the login path, the
	// reconciliation tick and pushed auth events cannot interleave badly.
	mu            sync.RWMutex
	current       *domain.User
	session       *domain.Session
	authenticated bool

	events chan domain.AuthEvent
}

// NewSessionService creates the session lifecycle service.
func NewSessionService(userRepo portsrepo.UserRepository, auditRepo portsrepo.AuditRepository, sessionStore portsrepo.SessionStore, store *cache.Store, cfg *config.Config) portssvc.SessionSvcFacade {
	return &sessionService{
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		sessionStore: sessionStore,
		store:        store,
		cfg:          cfg,
		events:       make(chan domain.AuthEvent, 16),
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// apply is the session reducer. It is the only place session state changes.
func (s *sessionService) apply(event domain.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch event.Kind {
	case domain.AuthSignedIn, domain.AuthTokenRefresh:
		s.session = event.Session
		s.authenticated = event.Session != nil
	case domain.AuthSignedOut:
		s.current = nil
		s.session = nil
		s.authenticated = false
	}
}

func (s *sessionService) setIdentity(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = user
}

func (s *sessionService) RestoreFromDurableStorage(ctx context.Context) bool {
	identity, session, found, err := s.sessionStore.Restore(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to restore session from durable storage")
		return false
	}
	if !found {
		return false
	}
	if session.Expired(time.Now()) {
		s.LogInfo(ctx, "persisted session expired, clearing", slog.String("user_id", session.UserID))
		if err := s.sessionStore.Clear(ctx); err != nil {
			s.LogError(ctx, err, "failed to clear expired session")
		}
		return false
	}

	s.setIdentity(identity)
	s.apply(domain.AuthEvent{Kind: domain.AuthSignedIn, Session: session})
	s.LogInfo(ctx, "session restored from durable storage", slog.String("user_id", identity.UserID))
	return true
}

// Initialize reconciles the restored identity against the authoritative user
// row. A transient fetch failure keeps the restored identity authenticated;
// only a definitive answer (row gone, account disabled, session expired)
// signs the user out.
func (s *sessionService) Initialize(ctx context.Context) error {
	s.mu.RLock()
	current, session, authed := s.current, s.session, s.authenticated
	s.mu.RUnlock()

	if !authed || current == nil {
		return nil
	}
	if session.Expired(time.Now()) {
		return s.Logout(ctx)
	}
	if current.UserID == breakGlassUserID {
		// The synthetic identity has no backing row to reconcile against.
		return nil
	}

	user, err := s.userRepo.FindUserByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "persisted identity no longer exists, signing out", slog.String("user_id", current.UserID))
			return s.Logout(ctx)
		}
		s.LogWarn(ctx, "session reconciliation failed, keeping restored identity",
			slog.String("user_id", current.UserID), slog.String("error", err.Error()))
		return nil
	}
	if user.Status != domain.StatusActive || user.DeletedAt != nil {
		s.LogWarn(ctx, "account no longer active, signing out",
			slog.String("user_id", user.UserID), slog.String("status", string(user.Status)))
		return s.Logout(ctx)
	}

	s.setIdentity(user)
	if err := s.sessionStore.Persist(ctx, *user, *session); err != nil {
		s.LogError(ctx, err, "failed to refresh persisted identity")
	}
	if err := s.sessionStore.Touch(ctx, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to touch session timestamp")
	}
	return nil
}

func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)

	user, err := s.lookupIdentity(ctx, identifier)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		if bg := s.breakGlassLogin(ctx, identifier, req.Password); bg != nil {
			return s.establish(ctx, bg)
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "login lookup failed")
		}
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	switch {
	case user.DeletedAt != nil:
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	case user.Status == domain.StatusPending:
		return nil, fmt.Errorf("account pending administrator approval: %w", apperrors.ErrForbidden)
	case user.Status != domain.StatusActive:
		return nil, fmt.Errorf("account is not active: %w", apperrors.ErrForbidden)
	}

	return s.establish(ctx, user)
}

// lookupIdentity resolves a login identifier. The administrative shortcut
// normalizes to the canonical admin email; otherwise an identifier containing
// an @ is treated as an email and anything else as a username.
func (s *sessionService) lookupIdentity(ctx context.Context, identifier string) (*domain.User, error) {
	switch {
	case strings.EqualFold(identifier, s.cfg.AdminShortcut):
		return s.userRepo.FindUserByEmail(ctx, s.cfg.AdminEmail)
	case strings.Contains(identifier, "@"):
		return s.userRepo.FindUserByEmail(ctx, identifier)
	default:
		return s.userRepo.FindUserByUsername(ctx, identifier)
	}
}

// breakGlassLogin is the last-resort administrative fallback. It only fires
// when explicitly enabled, only for the admin shortcut identifier, and only
// with the configured fallback password.
func (s *sessionService) breakGlassLogin(ctx context.Context, identifier, password string) *domain.User {
	if !s.cfg.BreakGlassEnabled || s.cfg.BreakGlassPassword == "" {
		return nil
	}
	if !strings.EqualFold(identifier, s.cfg.AdminShortcut) || password != s.cfg.BreakGlassPassword {
		return nil
	}
	s.LogWarn(ctx, "break-glass administrative login used")
	now := time.Now()
	user := &domain.User{
		UserID:      breakGlassUserID,
		Username:    s.cfg.AdminShortcut,
		Name:        "Administrator",
		Email:       s.cfg.AdminEmail,
		Role:        domain.RoleAdmin,
		Permissions: domain.PermissionSet{},
		Status:      domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.SystemActor,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.SystemActor,
		},
	}
	// The synthetic identity exists only in memory; mirroring it into the
	// store lets per-request authorization resolve it without a user row.
	s.store.Users.Upsert(*user)
	return user
}

// establish issues a token, persists the session durably and updates the
// in-memory state.
func (s *sessionService) establish(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate token: %w", apperrors.ErrInternal)
	}

	now := time.Now()
	session := &domain.Session{
		UserID:    user.UserID,
		Email:     user.Email,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.JWTExpiryDuration),
	}

	if err := s.sessionStore.Persist(ctx, *user, *session); err != nil {
		// Login still succeeds; only reload survival is lost.
		s.LogError(ctx, err, "failed to persist session", slog.String("user_id", user.UserID))
	}

	s.setIdentity(user)
	s.apply(domain.AuthEvent{Kind: domain.AuthSignedIn, Session: session})
	s.LogInfo(ctx, "user signed in", slog.String("user_id", user.UserID))

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

// Refresh re-issues a token for the current identity before the old one runs
// out. The refreshed session is routed through Notify so it lands in session
// state the same way a pushed token-refresh notification would.
func (s *sessionService) Refresh(ctx context.Context) (*dto.LoginResponse, error) {
	s.mu.RLock()
	current, session, authed := s.current, s.session, s.authenticated
	s.mu.RUnlock()

	if !authed || current == nil || session.Expired(time.Now()) {
		return nil, fmt.Errorf("no active session to refresh: %w", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(current.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate refreshed token", slog.String("user_id", current.UserID))
		return nil, fmt.Errorf("failed to generate token: %w", apperrors.ErrInternal)
	}

	now := time.Now()
	refreshed := &domain.Session{
		UserID:    current.UserID,
		Email:     current.Email,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.JWTExpiryDuration),
	}

	if err := s.sessionStore.Persist(ctx, *current, *refreshed); err != nil {
		// The in-memory session still rolls over; only reload survival lags.
		s.LogError(ctx, err, "failed to persist refreshed session", slog.String("user_id", current.UserID))
	}

	s.Notify(domain.AuthEvent{Kind: domain.AuthTokenRefresh, Session: refreshed})
	s.LogInfo(ctx, "session token refreshed", slog.String("user_id", current.UserID))

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: refreshed.ExpiresAt,
		User:      dto.ToUserResponse(current),
	}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessionStore.Clear(ctx); err != nil {
		s.LogError(ctx, err, "failed to clear durable session")
	}
	s.apply(domain.AuthEvent{Kind: domain.AuthSignedOut})
	return nil
}

// Register creates a self-service account. The account stays pending until an
// administrator approves it, and the caller is NOT signed in.
func (s *sessionService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already in use: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username already in use: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Permissions:  domain.PermissionSet{},
		Status:       domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.SystemActor,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.SystemActor,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save registered user", slog.String("username", req.Username))
		return nil, err
	}
	s.store.Users.Append(user)

	audit := BuildAuditEntry(domain.CollectionUsers, user.UserID, domain.AuditCreate,
		encodeChanges(map[string]any{"username": user.Username, "status": string(user.Status)}),
		fmt.Sprintf("user %s registered, pending approval", user.Username), nil, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return &user, nil
}

func (s *sessionService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}

	user.PasswordHash = hash
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update password", slog.String("user_id", userID))
		return err
	}
	s.store.Users.Upsert(*user)
	s.LogInfo(ctx, "password changed", slog.String("user_id", userID))
	return nil
}

func (s *sessionService) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated && !s.session.Expired(time.Now())
}

func (s *sessionService) HasPermission(p domain.Permission) bool {
	return s.Current().HasPermission(p, s.cfg.AdminEmail)
}

func (s *sessionService) IsAdmin() bool {
	return s.Current().IsAdmin(s.cfg.AdminEmail)
}

// Notify enqueues an auth event for the reducer loop. When the loop is not
// draining, the event is applied inline; apply itself serializes state.
func (s *sessionService) Notify(event domain.AuthEvent) {
	select {
	case s.events <- event:
	default:
		s.apply(event)
	}
}

// Run consumes pushed auth events and fires the periodic reconciliation tick
// until ctx is cancelled.
func (s *sessionService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SessionCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.events:
			s.apply(event)
		case <-ticker.C:
			if err := s.Initialize(ctx); err != nil {
				s.LogError(ctx, err, "session reconciliation tick failed")
			}
		}
	}
}
