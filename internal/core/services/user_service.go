package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo  portsrepo.UserRepository
	auditRepo portsrepo.AuditRepository
	store     *cache.Store
}

// NewUserService creates the user administration service.
func NewUserService(userRepo portsrepo.UserRepository, auditRepo portsrepo.AuditRepository, store *cache.Store) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, auditRepo: auditRepo, store: store}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser is the administrative path: the account starts active, unlike
// self-registration which stays pending until approved.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorID string) (*domain.User, error) {
	if err := s.checkUnique(ctx, req.Email, req.Username); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}

	perms := make([]domain.Permission, len(req.Permissions))
	for i, p := range req.Permissions {
		perms[i] = domain.Permission(p)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		Permissions:  domain.NewPermissionSet(perms...),
		Status:       domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save user", slog.String("username", req.Username))
		return nil, err
	}
	s.store.Users.Append(user)

	actor := actorFromStore(s.store, creatorID)
	audit := BuildAuditEntry(domain.CollectionUsers, user.UserID, domain.AuditCreate,
		encodeChanges(map[string]any{"username": user.Username, "role": string(user.Role)}),
		fmt.Sprintf("created user %s", user.Username), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if user, ok := s.store.Users.Get(userID); ok {
		return &user, nil
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.store.Users.Upsert(*user)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if s.store.Loaded() {
		return s.store.Users.Snapshot(), nil
	}
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Users.Replace(users)
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	before := *user

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	if req.Permissions != nil {
		perms := make([]domain.Permission, len(*req.Permissions))
		for i, p := range *req.Permissions {
			perms[i] = domain.Permission(p)
		}
		user.Permissions = domain.NewPermissionSet(perms...)
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	s.store.Users.Upsert(*user)

	actor := actorFromStore(s.store, updaterID)
	audit := BuildAuditEntry(domain.CollectionUsers, userID, domain.AuditUpdate,
		encodeBeforeAfter(before, *user),
		fmt.Sprintf("updated user %s", user.Username), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return user, nil
}

func (s *userService) ApproveUser(ctx context.Context, userID string, approverID string) (*domain.User, error) {
	return s.resolvePending(ctx, userID, approverID, domain.StatusActive, domain.AuditApprove)
}

func (s *userService) RejectUser(ctx context.Context, userID string, approverID string) (*domain.User, error) {
	return s.resolvePending(ctx, userID, approverID, domain.StatusRejected, domain.AuditReject)
}

// resolvePending moves a pending account to active or rejected.
func (s *userService) resolvePending(ctx context.Context, userID, approverID string, status domain.UserStatus, action domain.AuditAction) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.StatusPending {
		return nil, fmt.Errorf("user is not pending approval: %w", apperrors.ErrConflict)
	}

	user.Status = status
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = approverID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user status", slog.String("user_id", userID))
		return nil, err
	}
	s.store.Users.Upsert(*user)

	actor := actorFromStore(s.store, approverID)
	audit := BuildAuditEntry(domain.CollectionUsers, userID, action,
		encodeChanges(map[string]any{"status": string(status)}),
		fmt.Sprintf("user %s %s", user.Username, string(status)), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return user, nil
}

// DeactivateUser soft-disables an account. Accounts are never hard-deleted;
// the row keeps its history and the deleted_at stamp blocks further login.
func (s *userService) DeactivateUser(ctx context.Context, userID string, updaterID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == domain.StatusInactive {
		return nil, fmt.Errorf("user already inactive: %w", apperrors.ErrConflict)
	}

	now := time.Now()
	user.Status = domain.StatusInactive
	user.LastUpdatedAt = now
	user.LastUpdatedBy = updaterID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to deactivate user", slog.String("user_id", userID))
		return nil, err
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, now, updaterID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to stamp user deletion", slog.String("user_id", userID))
		return nil, err
	}
	user.DeletedAt = &now
	s.store.Users.Upsert(*user)

	actor := actorFromStore(s.store, updaterID)
	audit := BuildAuditEntry(domain.CollectionUsers, userID, domain.AuditUpdate,
		encodeChanges(map[string]any{"status": string(domain.StatusInactive)}),
		fmt.Sprintf("deactivated user %s", user.Username), actor, time.Now())
	s.recordAudit(ctx, s.auditRepo, s.store, audit)

	return user, nil
}

// checkUnique rejects the email or username when an account already holds it.
func (s *userService) checkUnique(ctx context.Context, email, username string) error {
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return fmt.Errorf("email already in use: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return fmt.Errorf("username already in use: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}
