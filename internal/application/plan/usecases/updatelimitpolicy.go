package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type UpdateLimitPolicyCommand struct {
	LimitPolicyID string
	Limit         int
}

type UpdateLimitPolicyUseCase struct {
	limitPolicyRepo plan.LimitPolicyRepository
	logger          logger.Interface
}

func NewUpdateLimitPolicyUseCase(limitPolicyRepo plan.LimitPolicyRepository, logger logger.Interface) *UpdateLimitPolicyUseCase {
	return &UpdateLimitPolicyUseCase{
		limitPolicyRepo: limitPolicyRepo,
		logger:          logger,
	}
}

func (uc *UpdateLimitPolicyUseCase) Execute(ctx context.Context, cmd UpdateLimitPolicyCommand) (*dto.LimitPolicyDTO, error) {
	id, err := uuid.Parse(cmd.LimitPolicyID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid limit policy id")
	}

	policy, err := uc.limitPolicyRepo.GetByID(ctx, id)
	if err != nil {
		if err == plan.ErrLimitPolicyNotFound {
			return nil, apperrors.NewNotFoundError("limit policy not found")
		}
		uc.logger.Errorw("failed to load limit policy", "policy_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update limit policy")
	}

	if err := policy.UpdateLimit(cmd.Limit); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.limitPolicyRepo.Update(ctx, policy); err != nil {
		if err == plan.ErrLimitPolicyNotFound {
			return nil, apperrors.NewNotFoundError("limit policy not found")
		}
		uc.logger.Errorw("failed to update limit policy", "policy_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update limit policy")
	}

	uc.logger.Infow("limit policy updated", "policy_id", id, "limit", policy.Limit())

	result := dto.ToLimitPolicyDTO(policy)
	return &result, nil
}
