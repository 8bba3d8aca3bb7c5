package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/arbor-inc/arbor/internal/application/auth/usecases"
	planusecases "github.com/arbor-inc/arbor/internal/application/plan/usecases"
	subscriptionusecases "github.com/arbor-inc/arbor/internal/application/subscription/usecases"
	tenantusecases "github.com/arbor-inc/arbor/internal/application/tenant/usecases"
	userusecases "github.com/arbor-inc/arbor/internal/application/user/usecases"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/infrastructure/config"
	"github.com/arbor-inc/arbor/internal/infrastructure/permission"
	"github.com/arbor-inc/arbor/internal/infrastructure/ratelimit"
	"github.com/arbor-inc/arbor/internal/infrastructure/repository"
	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/interfaces/http/handlers"
	"github.com/arbor-inc/arbor/internal/interfaces/http/middleware"
	"github.com/arbor-inc/arbor/internal/interfaces/http/routes"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	"github.com/arbor-inc/arbor/internal/shared/constants"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// Router wires the HTTP surface together.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP stack: repositories over the scoped
// database handle, usecases, handlers, and the middleware chain that binds
// every authenticated request's identity onto its database session.
func NewRouter(gdb *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	switch cfg.Server.Mode {
	case constants.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case constants.EnvTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	registerValidators()

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.SecurityHeaders())
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	gateway := rls.NewGateway(gdb, log)

	userRepo := repository.NewUserRepository(gdb, log)
	tenantRepo := repository.NewTenantRepository(gdb, log)
	membershipRepo := repository.NewMembershipRepository(gdb, log)
	planRepo := repository.NewPlanRepository(gdb, log)
	limitPolicyRepo := repository.NewLimitPolicyRepository(gdb, log)
	attachmentRepo := repository.NewAttachmentRepository(gdb, log)
	subscriptionRepo := repository.NewSubscriptionRepository(gdb, log)
	usageRepo := repository.NewUsageRepository(gdb, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	var denylist auth.TokenDenylist
	if redisClient != nil {
		denylist = auth.NewRedisTokenDenylist(redisClient)
	} else {
		log.Warnw("redis not configured, refresh token revocation is process-local")
		denylist = auth.NewMemoryTokenDenylist()
	}

	enforcer, err := permission.NewEnforcer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to build permission enforcer: %w", err)
	}

	authMW := middleware.NewAuthMiddleware(jwtService, log)
	scopeMW := middleware.NewScopeMiddleware(gateway, log)
	permissionMW := middleware.NewPermissionMiddleware(enforcer, log)

	var rateLimitMW *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.NewRateLimitMiddleware(limiter, ratelimit.Config{
			RequestsPerMinute: cfg.RateLimit.AuthPerMinute,
		}, log)
	}

	authHandler := handlers.NewAuthHandler(
		authusecases.NewRegisterTenantUseCase(gateway, userRepo, tenantRepo, membershipRepo, hasher, jwtService, log),
		authusecases.NewRegisterUserUseCase(gateway, userRepo, hasher, jwtService, log),
		authusecases.NewRegisterPlatformAdminUseCase(gateway, userRepo, hasher, jwtService, cfg.Auth.BootstrapToken, log),
		authusecases.NewLoginUseCase(gateway, userRepo, hasher, jwtService, log),
		authusecases.NewRefreshTokenUseCase(jwtService, denylist, log),
		authusecases.NewLogoutUseCase(jwtService, denylist, log),
	)

	tenantHandler := handlers.NewTenantHandler(
		tenantusecases.NewListTenantsUseCase(tenantRepo, log),
		tenantusecases.NewListMembersUseCase(membershipRepo, log),
		tenantusecases.NewAddMemberUseCase(membershipRepo, log),
		tenantusecases.NewRemoveMemberUseCase(membershipRepo, log),
	)

	planHandler := handlers.NewPlanHandler(
		planusecases.NewCreatePlanUseCase(planRepo, log),
		planusecases.NewUpdatePlanUseCase(planRepo, log),
		planusecases.NewDeletePlanUseCase(planRepo, log),
		planusecases.NewListPlansUseCase(planRepo, log),
		planusecases.NewCreateLimitPolicyUseCase(limitPolicyRepo, log),
		planusecases.NewUpdateLimitPolicyUseCase(limitPolicyRepo, log),
		planusecases.NewDeleteLimitPolicyUseCase(limitPolicyRepo, log),
		planusecases.NewListLimitPoliciesUseCase(limitPolicyRepo, log),
		planusecases.NewAttachPolicyUseCase(planRepo, limitPolicyRepo, attachmentRepo, log),
		planusecases.NewDetachPolicyUseCase(attachmentRepo, log),
	)

	userHandler := handlers.NewUserHandler(
		userusecases.NewListUsersUseCase(userRepo, log),
		userusecases.NewChangeUserRoleUseCase(userRepo, log),
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		subscriptionusecases.NewCreateSubscriptionUseCase(subscriptionRepo, planRepo, log),
		subscriptionusecases.NewCancelSubscriptionUseCase(subscriptionRepo, log),
		subscriptionusecases.NewListSubscriptionsUseCase(subscriptionRepo, log),
		subscriptionusecases.NewGetSubscriptionUseCase(subscriptionRepo, log),
		subscriptionusecases.NewRecordUsageUseCase(subscriptionRepo, usageRepo, log),
		subscriptionusecases.NewListUsageUseCase(usageRepo, log),
	)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimit:   rateLimitMW,
	})
	routes.SetupTenantRoutes(engine, &routes.TenantRouteConfig{
		TenantHandler: tenantHandler,
		Auth:          authMW,
		Scope:         scopeMW,
		Permission:    permissionMW,
	})
	routes.SetupPlanRoutes(engine, &routes.PlanRouteConfig{
		PlanHandler: planHandler,
		Auth:        authMW,
		Scope:       scopeMW,
		Permission:  permissionMW,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler: userHandler,
		Auth:        authMW,
		Scope:       scopeMW,
		Permission:  permissionMW,
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: subscriptionHandler,
		Auth:                authMW,
		Scope:               scopeMW,
		Permission:          permissionMW,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}, nil
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on addr.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// registerValidators adds the custom binding validators used by request
// structs.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, ok := authorization.ParseRole(fl.Field().String())
			return ok
		})
	}
}
