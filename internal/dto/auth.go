package dto

import (
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// LoginRequest carries the credentials for sign-in. The identifier may be a
// username, an email, or the administrative shortcut.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the merged identity.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RegisterRequest creates a new account. Registration success does not imply
// login capability: the account stays pending until an administrator
// approves it.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ChangePasswordRequest updates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// RegisterResponse reports the created account's approval status.
type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// ToRegisterResponse builds the response for a freshly registered account.
func ToRegisterResponse(user *domain.User) RegisterResponse {
	return RegisterResponse{
		User:    ToUserResponse(user),
		Message: "registration received; account pending administrator approval",
	}
}
