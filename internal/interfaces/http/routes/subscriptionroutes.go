package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/interfaces/http/handlers"
	"github.com/arbor-inc/arbor/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	Auth                *middleware.AuthMiddleware
	Scope               *middleware.ScopeMiddleware
	Permission          *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures subscription and usage routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subs := engine.Group("/subscriptions")
	subs.Use(cfg.Auth.RequireAuth())
	subs.Use(cfg.Scope.BindContext())
	{
		subs.GET("", cfg.SubscriptionHandler.ListSubscriptions)
		subs.GET("/:id", cfg.SubscriptionHandler.GetSubscription)
		subs.GET("/:id/usages", cfg.SubscriptionHandler.ListUsage)

		subsWrite := subs.Group("")
		subsWrite.Use(cfg.Permission.RequirePermission("subscriptions", "write"))
		{
			subsWrite.POST("", cfg.SubscriptionHandler.CreateSubscription)
			subsWrite.POST("/:id/cancel", cfg.SubscriptionHandler.CancelSubscription)
		}

		usages := subs.Group("")
		usages.Use(cfg.Permission.RequirePermission("usages", "write"))
		{
			usages.POST("/:id/usages", cfg.SubscriptionHandler.RecordUsage)
		}
	}
}
