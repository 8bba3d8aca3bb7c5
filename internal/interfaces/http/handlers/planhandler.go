package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/application/plan/usecases"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC        createPlanUseCase
	updatePlanUC        updatePlanUseCase
	deletePlanUC        deletePlanUseCase
	listPlansUC         listPlansUseCase
	createLimitPolicyUC createLimitPolicyUseCase
	updateLimitPolicyUC updateLimitPolicyUseCase
	deleteLimitPolicyUC deleteLimitPolicyUseCase
	listLimitPoliciesUC listLimitPoliciesUseCase
	attachPolicyUC      attachPolicyUseCase
	detachPolicyUC      detachPolicyUseCase
	logger              logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	deletePlanUC deletePlanUseCase,
	listPlansUC listPlansUseCase,
	createLimitPolicyUC createLimitPolicyUseCase,
	updateLimitPolicyUC updateLimitPolicyUseCase,
	deleteLimitPolicyUC deleteLimitPolicyUseCase,
	listLimitPoliciesUC listLimitPoliciesUseCase,
	attachPolicyUC attachPolicyUseCase,
	detachPolicyUC detachPolicyUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:        createPlanUC,
		updatePlanUC:        updatePlanUC,
		deletePlanUC:        deletePlanUC,
		listPlansUC:         listPlansUC,
		createLimitPolicyUC: createLimitPolicyUC,
		updateLimitPolicyUC: updateLimitPolicyUC,
		deleteLimitPolicyUC: deleteLimitPolicyUC,
		listLimitPoliciesUC: listLimitPoliciesUC,
		attachPolicyUC:      attachPolicyUC,
		detachPolicyUC:      detachPolicyUC,
		logger:              logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=255"`
	PriceCents      uint64 `json:"price_cents" binding:"required"`
	BillingDuration int    `json:"billing_duration" binding:"required,min=1,max=365"`
	TenantID        string `json:"tenant_id" binding:"required,uuid"`
}

type UpdatePlanRequest struct {
	Name            *string `json:"name"`
	PriceCents      *uint64 `json:"price_cents"`
	BillingDuration *int    `json:"billing_duration"`
}

type CreateLimitPolicyRequest struct {
	Metric   string `json:"metric" binding:"required,min=1,max=255"`
	Limit    int    `json:"limit" binding:"required,min=1"`
	TenantID string `json:"tenant_id" binding:"required,uuid"`
}

type UpdateLimitPolicyRequest struct {
	Limit int `json:"limit" binding:"required,min=1"`
}

type AttachPolicyRequest struct {
	LimitPolicyID string `json:"limit_policy_id" binding:"required,uuid"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:            req.Name,
		PriceCents:      req.PriceCents,
		BillingDuration: req.BillingDuration,
		TenantID:        req.TenantID,
		CreatedBy:       callerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", c.Param("id"), "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:          c.Param("id"),
		Name:            req.Name,
		PriceCents:      req.PriceCents,
		BillingDuration: req.BillingDuration,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.deletePlanUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{
		PlanID: c.Param("id"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansCommand{
		TenantID: c.Query("tenant_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) CreateLimitPolicy(c *gin.Context) {
	var req CreateLimitPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create limit policy", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createLimitPolicyUC.Execute(c.Request.Context(), usecases.CreateLimitPolicyCommand{
		Metric:    req.Metric,
		Limit:     req.Limit,
		TenantID:  req.TenantID,
		CreatedBy: callerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Limit policy created successfully")
}

func (h *PlanHandler) UpdateLimitPolicy(c *gin.Context) {
	var req UpdateLimitPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateLimitPolicyUC.Execute(c.Request.Context(), usecases.UpdateLimitPolicyCommand{
		LimitPolicyID: c.Param("id"),
		Limit:         req.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Limit policy updated successfully", result)
}

func (h *PlanHandler) DeleteLimitPolicy(c *gin.Context) {
	if err := h.deleteLimitPolicyUC.Execute(c.Request.Context(), usecases.DeleteLimitPolicyCommand{
		LimitPolicyID: c.Param("id"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PlanHandler) ListLimitPolicies(c *gin.Context) {
	result, err := h.listLimitPoliciesUC.Execute(c.Request.Context(), usecases.ListLimitPoliciesCommand{
		TenantID: c.Query("tenant_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) AttachPolicy(c *gin.Context) {
	var req AttachPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.attachPolicyUC.Execute(c.Request.Context(), usecases.AttachPolicyCommand{
		PlanID:        c.Param("id"),
		LimitPolicyID: req.LimitPolicyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Limit policy attached successfully")
}

func (h *PlanHandler) DetachPolicy(c *gin.Context) {
	if err := h.detachPolicyUC.Execute(c.Request.Context(), usecases.DetachPolicyCommand{
		AttachmentID: c.Param("attachmentID"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
