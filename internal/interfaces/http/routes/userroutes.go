package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/interfaces/http/handlers"
	"github.com/arbor-inc/arbor/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler *handlers.UserHandler
	Auth        *middleware.AuthMiddleware
	Scope       *middleware.ScopeMiddleware
	Permission  *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.Auth.RequireAuth())
	users.Use(cfg.Scope.BindContext())
	{
		users.GET("", cfg.UserHandler.ListUsers)

		usersAdmin := users.Group("")
		usersAdmin.Use(cfg.Permission.RequirePermission("users", "write"))
		{
			usersAdmin.PUT("/:id/role", cfg.UserHandler.ChangeUserRole)
		}
	}
}
