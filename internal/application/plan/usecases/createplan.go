package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name            string
	PriceCents      uint64
	BillingDuration int
	TenantID        string
	CreatedBy       string
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}
	createdBy, err := uuid.Parse(cmd.CreatedBy)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid creator id")
	}

	exists, err := uc.planRepo.ExistsByNameAndTenant(ctx, cmd.Name, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to check plan name", "error", err)
		return nil, apperrors.NewInternalError("failed to create plan")
	}
	if exists {
		return nil, apperrors.NewConflictError("plan name already exists for tenant")
	}

	newPlan, err := plan.NewPlan(cmd.Name, cmd.PriceCents, cmd.BillingDuration, tenantID, createdBy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, newPlan); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err)
		return nil, apperrors.NewForbiddenError("not allowed to create plans")
	}

	uc.logger.Infow("plan created", "plan_id", newPlan.ID(), "tenant_id", tenantID)

	result := dto.ToPlanDTO(newPlan)
	return &result, nil
}
