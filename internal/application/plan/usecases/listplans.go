package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListPlansCommand struct {
	TenantID string
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, cmd ListPlansCommand) ([]dto.PlanDTO, error) {
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}

	plans, err := uc.planRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to list plans")
	}

	return dto.ToPlanDTOs(plans), nil
}
