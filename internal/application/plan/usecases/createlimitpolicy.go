package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type CreateLimitPolicyCommand struct {
	Metric    string
	Limit     int
	TenantID  string
	CreatedBy string
}

type CreateLimitPolicyUseCase struct {
	limitPolicyRepo plan.LimitPolicyRepository
	logger          logger.Interface
}

func NewCreateLimitPolicyUseCase(limitPolicyRepo plan.LimitPolicyRepository, logger logger.Interface) *CreateLimitPolicyUseCase {
	return &CreateLimitPolicyUseCase{
		limitPolicyRepo: limitPolicyRepo,
		logger:          logger,
	}
}

func (uc *CreateLimitPolicyUseCase) Execute(ctx context.Context, cmd CreateLimitPolicyCommand) (*dto.LimitPolicyDTO, error) {
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}
	createdBy, err := uuid.Parse(cmd.CreatedBy)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid creator id")
	}

	exists, err := uc.limitPolicyRepo.ExistsByMetricAndTenant(ctx, cmd.Metric, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to check limit policy existence", "metric", cmd.Metric, "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to create limit policy")
	}
	if exists {
		return nil, apperrors.NewConflictError("limit policy for this metric already exists")
	}

	policy, err := plan.NewLimitPolicy(cmd.Metric, cmd.Limit, tenantID, createdBy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.limitPolicyRepo.Create(ctx, policy); err != nil {
		uc.logger.Errorw("failed to create limit policy", "metric", cmd.Metric, "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewForbiddenError("not allowed to create limit policies")
	}

	uc.logger.Infow("limit policy created", "policy_id", policy.ID(), "metric", policy.Metric(), "tenant_id", tenantID)

	result := dto.ToLimitPolicyDTO(policy)
	return &result, nil
}
