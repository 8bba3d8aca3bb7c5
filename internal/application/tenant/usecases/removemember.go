package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/domain/tenant"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type RemoveMemberCommand struct {
	MembershipID string
}

type RemoveMemberUseCase struct {
	membershipRepo tenant.MembershipRepository
	logger         logger.Interface
}

func NewRemoveMemberUseCase(membershipRepo tenant.MembershipRepository, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) error {
	id, err := uuid.Parse(cmd.MembershipID)
	if err != nil {
		return apperrors.NewValidationError("invalid membership id")
	}

	if err := uc.membershipRepo.Delete(ctx, id); err != nil {
		if err == tenant.ErrMembershipNotFound {
			// Rows outside the caller's reach look identical to missing rows.
			return apperrors.NewNotFoundError("membership not found")
		}
		uc.logger.Errorw("failed to delete membership", "error", err)
		return apperrors.NewInternalError("failed to remove member")
	}

	return nil
}
