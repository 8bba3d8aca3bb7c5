package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/shared/authorization"
)

func newValidUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("Alice", "alice@example.com", authorization.RoleTenantUser, "hash")
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func TestNewUser_ValidInput(t *testing.T) {
	u, err := NewUser("Alice", "Alice@Example.COM", authorization.RoleTenantAdmin, "hash")

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", u.ID().String())
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, "alice@example.com", u.Email(), "email must be normalized to lowercase")
	assert.Equal(t, authorization.RoleTenantAdmin, u.Role())
	assert.False(t, u.IsPlatformAdmin())
}

func TestNewUser_EmptyName(t *testing.T) {
	u, err := NewUser("", "a@b.com", authorization.RoleTenantUser, "hash")

	assert.Error(t, err)
	assert.Nil(t, u)
	assert.Contains(t, err.Error(), "user name is required")
}

func TestNewUser_InvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"missing at", "alice.example.com"},
		{"missing domain", "alice@"},
		{"missing tld", "alice@example"},
		{"empty", ""},
		{"spaces", "alice @example.com"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewUser("Alice", tc.email, authorization.RoleTenantUser, "hash")
			assert.Error(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestNewUser_InvalidRole(t *testing.T) {
	u, err := NewUser("Alice", "a@b.com", authorization.Role("superuser"), "hash")

	assert.Error(t, err)
	assert.Nil(t, u)
}

func TestNewUser_EmptyPasswordHash(t *testing.T) {
	u, err := NewUser("Alice", "a@b.com", authorization.RoleTenantUser, "")

	assert.Error(t, err)
	assert.Nil(t, u)
}

func TestUser_ChangeRole(t *testing.T) {
	u := newValidUser(t)

	err := u.ChangeRole(authorization.RolePlatformAdmin)
	require.NoError(t, err)
	assert.True(t, u.IsPlatformAdmin())

	err = u.ChangeRole(authorization.Role("nope"))
	assert.Error(t, err)
	assert.Equal(t, authorization.RolePlatformAdmin, u.Role(), "role unchanged after failed change")
}

func TestUser_UpdateEmail(t *testing.T) {
	u := newValidUser(t)

	err := u.UpdateEmail("New@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email())

	err = u.UpdateEmail("broken")
	assert.Error(t, err)
	assert.Equal(t, "new@example.com", u.Email())
}
