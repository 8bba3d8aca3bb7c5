package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/interfaces/http/handlers"
	"github.com/arbor-inc/arbor/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan and limit policy routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
	Auth        *middleware.AuthMiddleware
	Scope       *middleware.ScopeMiddleware
	Permission  *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures the plan catalog routes. Writes are gated on
// the platform admin role at the surface; the catalog write policies in the
// database enforce the same rule for real.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	plans.Use(cfg.Auth.RequireAuth())
	plans.Use(cfg.Scope.BindContext())
	{
		plans.GET("", cfg.PlanHandler.ListPlans)

		plansAdmin := plans.Group("")
		plansAdmin.Use(cfg.Permission.RequirePermission("plans", "write"))
		{
			plansAdmin.POST("", cfg.PlanHandler.CreatePlan)
			plansAdmin.PUT("/:id", cfg.PlanHandler.UpdatePlan)
			plansAdmin.DELETE("/:id", cfg.PlanHandler.DeletePlan)
		}

		attachments := plans.Group("")
		attachments.Use(cfg.Permission.RequirePermission("attachments", "write"))
		{
			attachments.POST("/:id/policies", cfg.PlanHandler.AttachPolicy)
			attachments.DELETE("/:id/policies/:attachmentID", cfg.PlanHandler.DetachPolicy)
		}
	}

	policies := engine.Group("/limit-policies")
	policies.Use(cfg.Auth.RequireAuth())
	policies.Use(cfg.Scope.BindContext())
	{
		policies.GET("", cfg.PlanHandler.ListLimitPolicies)

		policiesAdmin := policies.Group("")
		policiesAdmin.Use(cfg.Permission.RequirePermission("limit_policies", "write"))
		{
			policiesAdmin.POST("", cfg.PlanHandler.CreateLimitPolicy)
			policiesAdmin.PUT("/:id", cfg.PlanHandler.UpdateLimitPolicy)
			policiesAdmin.DELETE("/:id", cfg.PlanHandler.DeleteLimitPolicy)
		}
	}
}
