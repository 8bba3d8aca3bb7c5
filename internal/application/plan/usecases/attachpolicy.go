package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/plan/dto"
	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type AttachPolicyCommand struct {
	PlanID        string
	LimitPolicyID string
}

type AttachPolicyUseCase struct {
	planRepo        plan.Repository
	limitPolicyRepo plan.LimitPolicyRepository
	attachmentRepo  plan.AttachmentRepository
	logger          logger.Interface
}

func NewAttachPolicyUseCase(
	planRepo plan.Repository,
	limitPolicyRepo plan.LimitPolicyRepository,
	attachmentRepo plan.AttachmentRepository,
	logger logger.Interface,
) *AttachPolicyUseCase {
	return &AttachPolicyUseCase{
		planRepo:        planRepo,
		limitPolicyRepo: limitPolicyRepo,
		attachmentRepo:  attachmentRepo,
		logger:          logger,
	}
}

func (uc *AttachPolicyUseCase) Execute(ctx context.Context, cmd AttachPolicyCommand) (*dto.AttachmentDTO, error) {
	planID, err := uuid.Parse(cmd.PlanID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan id")
	}
	policyID, err := uuid.Parse(cmd.LimitPolicyID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid limit policy id")
	}

	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		if err == plan.ErrPlanNotFound {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to load plan", "plan_id", planID, "error", err)
		return nil, apperrors.NewInternalError("failed to attach limit policy")
	}

	policy, err := uc.limitPolicyRepo.GetByID(ctx, policyID)
	if err != nil {
		if err == plan.ErrLimitPolicyNotFound {
			return nil, apperrors.NewNotFoundError("limit policy not found")
		}
		uc.logger.Errorw("failed to load limit policy", "policy_id", policyID, "error", err)
		return nil, apperrors.NewInternalError("failed to attach limit policy")
	}

	exists, err := uc.attachmentRepo.Exists(ctx, planID, policyID)
	if err != nil {
		uc.logger.Errorw("failed to check attachment existence", "plan_id", planID, "policy_id", policyID, "error", err)
		return nil, apperrors.NewInternalError("failed to attach limit policy")
	}
	if exists {
		return nil, apperrors.NewConflictError("limit policy already attached to plan")
	}

	// Rejects cross-tenant pairs before anything reaches storage.
	attachment, err := plan.NewAttachment(p, policy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Create(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to create attachment", "plan_id", planID, "policy_id", policyID, "error", err)
		return nil, apperrors.NewForbiddenError("not allowed to attach limit policies")
	}

	uc.logger.Infow("limit policy attached", "attachment_id", attachment.ID(), "plan_id", planID, "policy_id", policyID)

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
