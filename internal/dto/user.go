package dto

import (
	"sort"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// CreateUserRequest is an admin-created account; it starts active, unlike
// self-registration.
type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,min=3"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Role        string   `json:"role" binding:"required,oneof=admin manager user viewer"`
	Permissions []string `json:"permissions"`
}

// UpdateUserRequest uses pointers to distinguish omitted fields from
// zero values.
type UpdateUserRequest struct {
	Name        *string   `json:"name"`
	Role        *string   `json:"role" binding:"omitempty,oneof=admin manager user viewer"`
	Permissions *[]string `json:"permissions"`
}

// UserResponse is the outward shape of a user; the password hash never
// leaves the service layer.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	perms := make([]string, 0, len(user.Permissions))
	for p := range user.Permissions {
		perms = append(perms, string(p))
	}
	sort.Strings(perms)
	return UserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Permissions: perms,
		Status:      string(user.Status),
		CreatedAt:   user.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: responses}
}
