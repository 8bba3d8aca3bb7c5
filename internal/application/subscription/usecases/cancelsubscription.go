package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/subscription/dto"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID string
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*dto.SubscriptionDTO, error) {
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
		return nil, apperrors.NewInternalError("failed to cancel subscription")
	}

	if err := sub.Cancel(); err != nil {
		if errors.Is(err, subscription.ErrSubscriptionCancelled) {
			return nil, apperrors.NewConflictError("subscription already cancelled")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		if err == subscription.ErrSubscriptionNotFound {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		uc.logger.Errorw("failed to update subscription", "subscription_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to cancel subscription")
	}

	uc.logger.Infow("subscription cancelled", "subscription_id", id)

	result := dto.ToSubscriptionDTO(sub)
	return &result, nil
}
