package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/subscription/dto"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type GetSubscriptionCommand struct {
	SubscriptionID string
}

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, cmd GetSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	id, err := uuid.Parse(cmd.SubscriptionID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid subscription id")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if err == subscription.ErrSubscriptionNotFound {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		uc.logger.Errorw("failed to load subscription", "subscription_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get subscription")
	}

	result := dto.ToSubscriptionDTO(sub)
	return &result, nil
}
