package rls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	const validID = "4f7f2a0e-8c1d-4f4e-9a43-1c9a9a1a2b3c"

	t.Run("authenticated principal", func(t *testing.T) {
		rc := NewContext(validID, "tenant_admin")
		assert.Equal(t, validID, rc.UserID)
		assert.Equal(t, "tenant_admin", rc.Role)
		assert.False(t, rc.IsAnonymous())
	})

	t.Run("anonymous principal normalizes to empty", func(t *testing.T) {
		rc := NewContext("", "")
		assert.True(t, rc.IsAnonymous())
	})

	t.Run("malformed user id normalizes to empty", func(t *testing.T) {
		rc := NewContext("not-a-uuid", "tenant_user")
		assert.True(t, rc.IsAnonymous())
	})

	t.Run("role without user id normalizes to empty", func(t *testing.T) {
		rc := NewContext("", "platform_admin")
		assert.True(t, rc.IsAnonymous())
	})

	t.Run("unknown role is carried as-is", func(t *testing.T) {
		// Policies treat unrecognized roles as no-privilege; construction
		// must not reject them.
		rc := NewContext(validID, "superuser")
		assert.Equal(t, "superuser", rc.Role)
		assert.False(t, rc.IsAnonymous())
	})
}

func TestSystemContext(t *testing.T) {
	rc := SystemContext()
	assert.Empty(t, rc.UserID)
	assert.Equal(t, "platform_admin", rc.Role)
	assert.False(t, rc.IsAnonymous())
}

func TestContextEqual(t *testing.T) {
	a := NewContext("4f7f2a0e-8c1d-4f4e-9a43-1c9a9a1a2b3c", "tenant_user")
	b := NewContext("4f7f2a0e-8c1d-4f4e-9a43-1c9a9a1a2b3c", "tenant_user")
	assert.True(t, a.Equal(b))
	assert.True(t, Empty().Equal(Context{}))
	assert.False(t, a.Equal(Empty()))
}
