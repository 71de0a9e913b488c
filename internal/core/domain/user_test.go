package domain_test

import (
	"testing"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPermissionSet_EncodeSortsTags(t *testing.T) {
	set := domain.NewPermissionSet(domain.PermJournalsWrite, domain.PermAuditView, domain.PermExpensesWrite)
	assert.Equal(t, "audit.view,expenses.write,journals.write", set.Encode())
	assert.Empty(t, domain.PermissionSet{}.Encode())
}

func TestDecodePermissionSet(t *testing.T) {
	set := domain.DecodePermissionSet("expenses.write, journals.write ,,audit.view")
	assert.Len(t, set, 3)
	assert.True(t, set.Has(domain.PermJournalsWrite))
	assert.False(t, set.Has(domain.PermBudgetsWrite))

	assert.Empty(t, domain.DecodePermissionSet(""))
}

func TestUser_IsAdmin(t *testing.T) {
	adminEmail := "admin@fintrack.local"

	byRole := &domain.User{Role: domain.RoleAdmin, Email: "someone@example.com"}
	assert.True(t, byRole.IsAdmin(adminEmail))

	byEmail := &domain.User{Role: domain.RoleUser, Email: "Admin@Fintrack.Local"}
	assert.True(t, byEmail.IsAdmin(adminEmail))

	regular := &domain.User{Role: domain.RoleUser, Email: "user@example.com"}
	assert.False(t, regular.IsAdmin(adminEmail))

	var nilUser *domain.User
	assert.False(t, nilUser.IsAdmin(adminEmail))
}

func TestUser_HasPermission_AdminBypassesEmptySet(t *testing.T) {
	adminEmail := "admin@fintrack.local"

	admin := &domain.User{Role: domain.RoleAdmin, Permissions: domain.PermissionSet{}}
	assert.True(t, admin.HasPermission(domain.PermBudgetsWrite, adminEmail))

	adminByEmail := &domain.User{Role: domain.RoleUser, Email: adminEmail, Permissions: domain.PermissionSet{}}
	assert.True(t, adminByEmail.HasPermission(domain.PermBudgetsWrite, adminEmail))

	regular := &domain.User{
		Role:        domain.RoleUser,
		Email:       "user@example.com",
		Permissions: domain.NewPermissionSet(domain.PermExpensesWrite),
	}
	assert.True(t, regular.HasPermission(domain.PermExpensesWrite, adminEmail))
	assert.False(t, regular.HasPermission(domain.PermBudgetsWrite, adminEmail))

	var nilUser *domain.User
	assert.False(t, nilUser.HasPermission(domain.PermExpensesWrite, adminEmail))
}
