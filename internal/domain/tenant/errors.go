package tenant

import "errors"

var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrTenantNameExists   = errors.New("tenant name already exists")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrMembershipExists   = errors.New("user already belongs to tenant")
)
