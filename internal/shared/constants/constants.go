package constants

// Environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys shared between middleware and handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Table names
const (
	TableTenants             = "tenants"
	TableUsers               = "users"
	TableUserTenants         = "user_tenants"
	TablePlans               = "plans"
	TableLimitPolicies       = "limit_policies"
	TablePlansLimitPolicies  = "plans_limit_policies"
	TableSubscriptions       = "subscriptions"
	TableUsages              = "usages"
)
