package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type DeleteLimitPolicyCommand struct {
	LimitPolicyID string
}

type DeleteLimitPolicyUseCase struct {
	limitPolicyRepo plan.LimitPolicyRepository
	logger          logger.Interface
}

func NewDeleteLimitPolicyUseCase(limitPolicyRepo plan.LimitPolicyRepository, logger logger.Interface) *DeleteLimitPolicyUseCase {
	return &DeleteLimitPolicyUseCase{
		limitPolicyRepo: limitPolicyRepo,
		logger:          logger,
	}
}

func (uc *DeleteLimitPolicyUseCase) Execute(ctx context.Context, cmd DeleteLimitPolicyCommand) error {
	id, err := uuid.Parse(cmd.LimitPolicyID)
	if err != nil {
		return apperrors.NewValidationError("invalid limit policy id")
	}

	if err := uc.limitPolicyRepo.Delete(ctx, id); err != nil {
		if err == plan.ErrLimitPolicyNotFound {
			return apperrors.NewNotFoundError("limit policy not found")
		}
		uc.logger.Errorw("failed to delete limit policy", "policy_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete limit policy")
	}

	uc.logger.Infow("limit policy deleted", "policy_id", id)
	return nil
}
