package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/subscription/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	PlanID       string
	TenantID     string
	SubscribedBy string
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	planID, err := uuid.Parse(cmd.PlanID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan id")
	}
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}
	subscribedBy, err := uuid.Parse(cmd.SubscribedBy)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid subscriber id")
	}

	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		if err == plan.ErrPlanNotFound {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to load plan", "plan_id", planID, "error", err)
		return nil, apperrors.NewInternalError("failed to create subscription")
	}
	// Plans are catalog-readable across tenants; subscribing to one is not.
	if p.TenantID() != tenantID {
		return nil, apperrors.NewValidationError("plan belongs to a different tenant")
	}

	existing, err := uc.subscriptionRepo.GetByPlanAndTenant(ctx, planID, tenantID)
	if err != nil && err != subscription.ErrSubscriptionNotFound {
		uc.logger.Errorw("failed to check existing subscription", "plan_id", planID, "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to create subscription")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("tenant already subscribed to plan")
	}

	sub, err := subscription.NewSubscription(planID, tenantID, subscribedBy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "plan_id", planID, "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewForbiddenError("not allowed to create subscriptions")
	}

	uc.logger.Infow("subscription created", "subscription_id", sub.ID(), "plan_id", planID, "tenant_id", tenantID)

	result := dto.ToSubscriptionDTO(sub)
	return &result, nil
}
