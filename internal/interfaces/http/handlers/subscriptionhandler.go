package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/application/subscription/usecases"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC *usecases.CreateSubscriptionUseCase
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase
	listSubscriptionsUC  *usecases.ListSubscriptionsUseCase
	getSubscriptionUC    *usecases.GetSubscriptionUseCase
	recordUsageUC        *usecases.RecordUsageUseCase
	listUsageUC          *usecases.ListUsageUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC *usecases.CreateSubscriptionUseCase,
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase,
	listSubscriptionsUC *usecases.ListSubscriptionsUseCase,
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	recordUsageUC *usecases.RecordUsageUseCase,
	listUsageUC *usecases.ListUsageUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC: createSubscriptionUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		listSubscriptionsUC:  listSubscriptionsUC,
		getSubscriptionUC:    getSubscriptionUC,
		recordUsageUC:        recordUsageUC,
		listUsageUC:          listUsageUC,
		logger:               logger.NewLogger(),
	}
}

type CreateSubscriptionRequest struct {
	PlanID   string `json:"plan_id" binding:"required,uuid"`
	TenantID string `json:"tenant_id" binding:"required,uuid"`
}

type RecordUsageRequest struct {
	Metric     string     `json:"metric" binding:"required,min=1,max=255"`
	Value      int        `json:"value" binding:"min=0"`
	RecordedAt *time.Time `json:"recorded_at"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		PlanID:       req.PlanID,
		TenantID:     req.TenantID,
		SubscribedBy: callerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	result, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled", result)
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	result, err := h.listSubscriptionsUC.Execute(c.Request.Context(), usecases.ListSubscriptionsCommand{
		TenantID: c.Query("tenant_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	result, err := h.getSubscriptionUC.Execute(c.Request.Context(), usecases.GetSubscriptionCommand{
		SubscriptionID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) RecordUsage(c *gin.Context) {
	var req RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record usage", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.RecordUsageCommand{
		SubscriptionID: c.Param("id"),
		Metric:         req.Metric,
		Value:          req.Value,
	}
	if req.RecordedAt != nil {
		cmd.RecordedAt = *req.RecordedAt
	}

	result, err := h.recordUsageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Usage recorded successfully")
}

func (h *SubscriptionHandler) ListUsage(c *gin.Context) {
	result, err := h.listUsageUC.Execute(c.Request.Context(), usecases.ListUsageCommand{
		SubscriptionID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
