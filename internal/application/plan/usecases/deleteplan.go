package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type DeletePlanCommand struct {
	PlanID string
}

type DeletePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	id, err := uuid.Parse(cmd.PlanID)
	if err != nil {
		return apperrors.NewValidationError("invalid plan id")
	}

	if err := uc.planRepo.Delete(ctx, id); err != nil {
		if err == plan.ErrPlanNotFound {
			return apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to delete plan", "plan_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete plan")
	}

	uc.logger.Infow("plan deleted", "plan_id", id)
	return nil
}
