package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/interfaces/http/handlers"
	"github.com/arbor-inc/arbor/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimit   *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures registration, login and token routes. None of
// them carry an authenticated identity, so no database scope is bound here;
// the bootstrap paths run in the administrative scope internally.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if cfg.RateLimit != nil {
		auth.Use(cfg.RateLimit.Limit())
	}
	{
		auth.POST("/register", cfg.AuthHandler.RegisterUser)
		auth.POST("/register/tenant", cfg.AuthHandler.RegisterTenant)
		auth.POST("/register/admin", cfg.AuthHandler.RegisterPlatformAdmin)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}
}
