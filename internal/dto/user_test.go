package dto_test

import (
	"testing"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestToUserResponse_PermissionsSortedAndHashOmitted(t *testing.T) {
	user := &domain.User{
		UserID:       "user-1",
		Username:     "jsmith",
		Email:        "jsmith@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         domain.RoleManager,
		Permissions:  domain.NewPermissionSet(domain.PermJournalsWrite, domain.PermAuditView),
		Status:       domain.StatusActive,
	}

	resp := dto.ToUserResponse(user)

	assert.Equal(t, []string{"audit.view", "journals.write"}, resp.Permissions)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, "active", resp.Status)
}
