package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/application/auth/usecases"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type AuthHandler struct {
	registerTenantUC        *usecases.RegisterTenantUseCase
	registerUserUC          *usecases.RegisterUserUseCase
	registerPlatformAdminUC *usecases.RegisterPlatformAdminUseCase
	loginUC                 *usecases.LoginUseCase
	refreshTokenUC          *usecases.RefreshTokenUseCase
	logoutUC                *usecases.LogoutUseCase
	logger                  logger.Interface
}

func NewAuthHandler(
	registerTenantUC *usecases.RegisterTenantUseCase,
	registerUserUC *usecases.RegisterUserUseCase,
	registerPlatformAdminUC *usecases.RegisterPlatformAdminUseCase,
	loginUC *usecases.LoginUseCase,
	refreshTokenUC *usecases.RefreshTokenUseCase,
	logoutUC *usecases.LogoutUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerTenantUC:        registerTenantUC,
		registerUserUC:          registerUserUC,
		registerPlatformAdminUC: registerPlatformAdminUC,
		loginUC:                 loginUC,
		refreshTokenUC:          refreshTokenUC,
		logoutUC:                logoutUC,
		logger:                  logger.NewLogger(),
	}
}

type RegisterTenantRequest struct {
	TenantName string `json:"tenant_name" binding:"required,min=1,max=255"`
	AdminName  string `json:"admin_name" binding:"required,min=1,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
}

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type RegisterPlatformAdminRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=128"`
	BootstrapToken string `json:"bootstrap_token" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) RegisterTenant(c *gin.Context) {
	var req RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for tenant registration", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerTenantUC.Execute(c.Request.Context(), usecases.RegisterTenantCommand{
		TenantName: req.TenantName,
		AdminName:  req.AdminName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tenant registered successfully")
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for user registration", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

func (h *AuthHandler) RegisterPlatformAdmin(c *gin.Context) {
	var req RegisterPlatformAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for platform admin registration", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerPlatformAdminUC.Execute(c.Request.Context(), usecases.RegisterPlatformAdminCommand{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		BootstrapToken: req.BootstrapToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Platform admin registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", result)
}

// Logout revokes the refresh token so the pair can no longer mint access
// tokens. The access token itself stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
