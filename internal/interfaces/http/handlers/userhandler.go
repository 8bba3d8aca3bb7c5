package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/application/user/usecases"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC      *usecases.ListUsersUseCase
	changeUserRoleUC *usecases.ChangeUserRoleUseCase
	logger           logger.Interface
}

func NewUserHandler(
	listUsersUC *usecases.ListUsersUseCase,
	changeUserRoleUC *usecases.ChangeUserRoleUseCase,
) *UserHandler {
	return &UserHandler{
		listUsersUC:      listUsersUC,
		changeUserRoleUC: changeUserRoleUC,
		logger:           logger.NewLogger(),
	}
}

type ChangeUserRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	query := usecases.ListUsersQuery{Page: page, PageSize: pageSize}
	if role := c.Query("role"); role != "" {
		query.Role = &role
	}

	users, total, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, page, pageSize)
}

func (h *UserHandler) ChangeUserRole(c *gin.Context) {
	var req ChangeUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeUserRoleUC.Execute(c.Request.Context(), usecases.ChangeUserRoleCommand{
		UserID:   c.Param("id"),
		Role:     req.Role,
		CallerID: callerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", result)
}
