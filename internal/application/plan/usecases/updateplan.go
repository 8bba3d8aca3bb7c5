package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID          string
	Name            *string
	PriceCents      *uint64
	BillingDuration *int
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	id, err := uuid.Parse(cmd.PlanID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan id")
	}

	existing, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		if err == plan.ErrPlanNotFound {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to load plan", "plan_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update plan")
	}

	if cmd.Name != nil {
		if err := existing.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.PriceCents != nil {
		existing.UpdatePrice(*cmd.PriceCents)
	}
	if cmd.BillingDuration != nil {
		if err := existing.UpdateBillingDuration(*cmd.BillingDuration); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.planRepo.Update(ctx, existing); err != nil {
		if err == plan.ErrPlanNotFound {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to update plan", "plan_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update plan")
	}

	result := dto.ToPlanDTO(existing)
	return &result, nil
}
