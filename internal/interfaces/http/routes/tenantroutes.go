package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/interfaces/http/handlers"
	"github.com/arbor-inc/arbor/internal/interfaces/http/middleware"
)

// TenantRouteConfig holds dependencies for tenant routes.
type TenantRouteConfig struct {
	TenantHandler *handlers.TenantHandler
	Auth          *middleware.AuthMiddleware
	Scope         *middleware.ScopeMiddleware
	Permission    *middleware.PermissionMiddleware
}

// SetupTenantRoutes configures tenant and membership routes. Every route
// binds the caller's scope; the row filters decide which tenants and
// memberships are visible or writable.
func SetupTenantRoutes(engine *gin.Engine, cfg *TenantRouteConfig) {
	tenants := engine.Group("/tenants")
	tenants.Use(cfg.Auth.RequireAuth())
	tenants.Use(cfg.Scope.BindContext())
	{
		tenants.GET("", cfg.TenantHandler.ListTenants)
		tenants.GET("/:id/members", cfg.TenantHandler.ListMembers)

		members := tenants.Group("")
		members.Use(cfg.Permission.RequirePermission("memberships", "write"))
		{
			members.POST("/:id/members", cfg.TenantHandler.AddMember)
			members.DELETE("/:id/members/:membershipID", cfg.TenantHandler.RemoveMember)
		}
	}
}
