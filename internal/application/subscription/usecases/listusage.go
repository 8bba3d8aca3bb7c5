package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/subscription/dto"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListUsageCommand struct {
	SubscriptionID string
}

type ListUsageUseCase struct {
	usageRepo subscription.UsageRepository
	logger    logger.Interface
}

func NewListUsageUseCase(usageRepo subscription.UsageRepository, logger logger.Interface) *ListUsageUseCase {
	return &ListUsageUseCase{
		usageRepo: usageRepo,
		logger:    logger,
	}
}

func (uc *ListUsageUseCase) Execute(ctx context.Context, cmd ListUsageCommand) ([]dto.UsageDTO, error) {
	subscriptionID, err := uuid.Parse(cmd.SubscriptionID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid subscription id")
	}

	usages, err := uc.usageRepo.ListBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to list usage", "subscription_id", subscriptionID, "error", err)
		return nil, apperrors.NewInternalError("failed to list usage")
	}

	return dto.ToUsageDTOs(usages), nil
}
