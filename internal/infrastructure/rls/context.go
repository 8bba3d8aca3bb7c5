// Package rls binds per-request caller identity onto the database session so
// PostgreSQL row security policies filter every statement by it. The bound
// context is connection state, never process state: a request owns exactly
// one pinned connection for its duration, and the settings are reset before
// that connection can serve anyone else.
package rls

import (
	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/authorization"
)

// Session variable names consulted by the row security policies.
const (
	SettingUserID   = "app.current_user_id"
	SettingUserRole = "app.current_user_role"
)

// Context is the caller identity bound to a database session. Both fields
// are optional; empty means absent. An absent context matches no policy
// predicate, so it sees and writes nothing.
type Context struct {
	UserID string
	Role   string
}

// NewContext builds a Context from raw principal values. Construction is
// total: a missing principal, a user id that is not a UUID, or any other
// irregularity normalizes to the empty context rather than failing. An
// unknown role string is carried as-is; the policies grant it nothing.
func NewContext(userID, role string) Context {
	if userID == "" {
		return Context{}
	}
	if _, err := uuid.Parse(userID); err != nil {
		return Context{}
	}
	return Context{UserID: userID, Role: role}
}

// Empty returns the anonymous context.
func Empty() Context {
	return Context{}
}

// SystemContext returns the administrative context used by bootstrap paths
// (registration, credential lookup) and operator tooling, where the caller
// has no database-visible identity yet. It must never be bound on behalf of
// an ordinary request.
func SystemContext() Context {
	return Context{Role: authorization.RolePlatformAdmin.String()}
}

// IsAnonymous reports whether both fields are absent.
func (c Context) IsAnonymous() bool {
	return c.UserID == "" && c.Role == ""
}

// Equal compares two contexts, treating the empty-string reset value as
// absent on both sides.
func (c Context) Equal(other Context) bool {
	return c.UserID == other.UserID && c.Role == other.Role
}
