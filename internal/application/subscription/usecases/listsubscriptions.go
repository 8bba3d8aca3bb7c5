package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/subscription/dto"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListSubscriptionsCommand struct {
	TenantID string
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) ([]dto.SubscriptionDTO, error) {
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}

	subs, err := uc.subscriptionRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to list subscriptions")
	}

	return dto.ToSubscriptionDTOs(subs), nil
}
