package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/subscription/dto"
	"github.com/arbor-inc/arbor/internal/domain/subscription"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type RecordUsageCommand struct {
	SubscriptionID string
	Metric         string
	Value          int
	RecordedAt     time.Time
}

type RecordUsageUseCase struct {
	subscriptionRepo subscription.Repository
	usageRepo        subscription.UsageRepository
	logger           logger.Interface
}

func NewRecordUsageUseCase(
	subscriptionRepo subscription.Repository,
	usageRepo subscription.UsageRepository,
	logger logger.Interface,
) *RecordUsageUseCase {
	return &RecordUsageUseCase{
		subscriptionRepo: subscriptionRepo,
		usageRepo:        usageRepo,
		logger:           logger,
	}
}

func (uc *RecordUsageUseCase) Execute(ctx context.Context, cmd RecordUsageCommand) (*dto.UsageDTO, error) {
	subscriptionID, err := uuid.Parse(cmd.SubscriptionID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid subscription id")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		if err == subscription.ErrSubscriptionNotFound {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		uc.logger.Errorw("failed to load subscription", "subscription_id", subscriptionID, "error", err)
		return nil, apperrors.NewInternalError("failed to record usage")
	}

	if !sub.IsActive() {
		return nil, apperrors.NewConflictError("subscription is not active")
	}

	// Usage inherits its tenant from the subscription, never from the caller.
	usage, err := subscription.NewUsage(sub, cmd.Metric, cmd.Value, cmd.RecordedAt)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.usageRepo.Create(ctx, usage); err != nil {
		uc.logger.Errorw("failed to record usage", "subscription_id", subscriptionID, "metric", cmd.Metric, "error", err)
		return nil, apperrors.NewForbiddenError("not allowed to record usage")
	}

	uc.logger.Infow("usage recorded", "usage_id", usage.ID(), "subscription_id", subscriptionID, "metric", usage.Metric(), "value", usage.Value())

	result := dto.ToUsageDTO(usage)
	return &result, nil
}
