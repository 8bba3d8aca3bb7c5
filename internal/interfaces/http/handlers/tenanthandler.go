package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/application/tenant/usecases"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type TenantHandler struct {
	listTenantsUC  *usecases.ListTenantsUseCase
	listMembersUC  *usecases.ListMembersUseCase
	addMemberUC    *usecases.AddMemberUseCase
	removeMemberUC *usecases.RemoveMemberUseCase
	logger         logger.Interface
}

func NewTenantHandler(
	listTenantsUC *usecases.ListTenantsUseCase,
	listMembersUC *usecases.ListMembersUseCase,
	addMemberUC *usecases.AddMemberUseCase,
	removeMemberUC *usecases.RemoveMemberUseCase,
) *TenantHandler {
	return &TenantHandler{
		listTenantsUC:  listTenantsUC,
		listMembersUC:  listMembersUC,
		addMemberUC:    addMemberUC,
		removeMemberUC: removeMemberUC,
		logger:         logger.NewLogger(),
	}
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// ListTenants returns whatever the row filters let the caller see: members
// get their own tenants, platform admins get all of them.
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tenants, total, err := h.listTenantsUC.Execute(c.Request.Context(), usecases.ListTenantsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, tenants, total, page, pageSize)
}

func (h *TenantHandler) ListMembers(c *gin.Context) {
	members, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersCommand{
		TenantID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", members)
}

func (h *TenantHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add member", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		UserID:   req.UserID,
		TenantID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member added successfully")
}

func (h *TenantHandler) RemoveMember(c *gin.Context) {
	if err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		MembershipID: c.Param("membershipID"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
