package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"github.com/arbor-inc/arbor/internal/shared/authorization"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// The HTTP surface check is a fast pre-filter only. The database row filters
// remain the enforcement boundary: a request that slips past here still sees
// nothing it is not entitled to.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies mirror the per-table write rules: platform admins manage the
// catalog and tenants, tenant admins manage memberships and subscriptions,
// tenant users read and record usage.
var policies = [][]string{
	{string(authorization.RolePlatformAdmin), "users", "write"},
	{string(authorization.RolePlatformAdmin), "tenants", "write"},
	{string(authorization.RolePlatformAdmin), "memberships", "write"},
	{string(authorization.RolePlatformAdmin), "plans", "write"},
	{string(authorization.RolePlatformAdmin), "limit_policies", "write"},
	{string(authorization.RolePlatformAdmin), "attachments", "write"},
	{string(authorization.RolePlatformAdmin), "subscriptions", "write"},
	{string(authorization.RolePlatformAdmin), "usages", "write"},

	{string(authorization.RoleTenantAdmin), "memberships", "write"},
	{string(authorization.RoleTenantAdmin), "subscriptions", "write"},
	{string(authorization.RoleTenantAdmin), "usages", "write"},

	{string(authorization.RoleTenantUser), "usages", "write"},
}

// read access is uniform: every authenticated role may issue reads, the row
// filters decide what comes back.
var readResources = []string{
	"users", "tenants", "memberships", "plans",
	"limit_policies", "attachments", "subscriptions", "usages",
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to add policy: %w", err)
		}
	}
	for _, role := range []authorization.Role{
		authorization.RolePlatformAdmin,
		authorization.RoleTenantAdmin,
		authorization.RoleTenantUser,
	} {
		for _, resource := range readResources {
			if _, err := enforcer.AddPolicy(string(role), resource, "read"); err != nil {
				return nil, fmt.Errorf("failed to add read policy: %w", err)
			}
		}
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Enforce checks whether the role may perform the action on the resource.
// Unknown roles match no policies and are denied.
func (e *Enforcer) Enforce(role authorization.Role, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(string(role), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed",
			"error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}
