package authorization

// Role is the platform-wide user role. It is stored on the user row and
// carried into the database session so row security policies can evaluate it.
type Role string

const (
	RolePlatformAdmin Role = "platform_admin"
	RoleTenantAdmin   Role = "tenant_admin"
	RoleTenantUser    Role = "tenant_user"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsPlatformAdmin() bool {
	return r == RolePlatformAdmin
}

func (r Role) IsTenantAdmin() bool {
	return r == RoleTenantAdmin
}

func (r Role) IsValid() bool {
	return r == RolePlatformAdmin || r == RoleTenantAdmin || r == RoleTenantUser
}

// ParseRole returns the role for s. Unknown values parse to an invalid zero
// role, never to a fallback role: an unrecognized role must carry no
// privilege anywhere downstream.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	if role.IsValid() {
		return role, true
	}
	return "", false
}
