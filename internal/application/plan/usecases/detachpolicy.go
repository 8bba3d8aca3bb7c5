package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/domain/plan"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type DetachPolicyCommand struct {
	AttachmentID string
}

type DetachPolicyUseCase struct {
	attachmentRepo plan.AttachmentRepository
	logger         logger.Interface
}

func NewDetachPolicyUseCase(attachmentRepo plan.AttachmentRepository, logger logger.Interface) *DetachPolicyUseCase {
	return &DetachPolicyUseCase{
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *DetachPolicyUseCase) Execute(ctx context.Context, cmd DetachPolicyCommand) error {
	id, err := uuid.Parse(cmd.AttachmentID)
	if err != nil {
		return apperrors.NewValidationError("invalid attachment id")
	}

	if err := uc.attachmentRepo.Delete(ctx, id); err != nil {
		if err == plan.ErrAttachmentNotFound {
			return apperrors.NewNotFoundError("attachment not found")
		}
		uc.logger.Errorw("failed to delete attachment", "attachment_id", id, "error", err)
		return apperrors.NewInternalError("failed to detach limit policy")
	}

	uc.logger.Infow("limit policy detached", "attachment_id", id)
	return nil
}
