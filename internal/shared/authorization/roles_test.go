package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"platform_admin", RolePlatformAdmin, true},
		{"tenant_admin", RoleTenantAdmin, true},
		{"tenant_user", RoleTenantUser, true},
		{"admin", "", false},
		{"", "", false},
		{"PLATFORM_ADMIN", "", false},
	}

	for _, tt := range tests {
		role, ok := ParseRole(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, role, "input %q", tt.input)
	}
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, RolePlatformAdmin.IsPlatformAdmin())
	assert.False(t, RoleTenantAdmin.IsPlatformAdmin())
	assert.True(t, RoleTenantAdmin.IsTenantAdmin())
	assert.False(t, Role("superuser").IsValid())
}
