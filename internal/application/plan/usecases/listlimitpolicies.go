package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListLimitPoliciesCommand struct {
	TenantID string
}

type ListLimitPoliciesUseCase struct {
	limitPolicyRepo plan.LimitPolicyRepository
	logger          logger.Interface
}

func NewListLimitPoliciesUseCase(limitPolicyRepo plan.LimitPolicyRepository, logger logger.Interface) *ListLimitPoliciesUseCase {
	return &ListLimitPoliciesUseCase{
		limitPolicyRepo: limitPolicyRepo,
		logger:          logger,
	}
}

func (uc *ListLimitPoliciesUseCase) Execute(ctx context.Context, cmd ListLimitPoliciesCommand) ([]dto.LimitPolicyDTO, error) {
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}

	policies, err := uc.limitPolicyRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list limit policies", "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to list limit policies")
	}

	return dto.ToLimitPolicyDTOs(policies), nil
}
