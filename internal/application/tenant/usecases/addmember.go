package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/tenant/dto"
	"github.com/arbor-inc/arbor/internal/domain/tenant"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type AddMemberCommand struct {
	UserID   string
	TenantID string
}

// AddMemberUseCase grants a user membership in a tenant. It runs under the
// caller's own scope: the membership insert policy only admits platform
// admins and tenant admins writing into their own tenants, so an
// out-of-scope grant fails at the database regardless of what reaches here.
type AddMemberUseCase struct {
	membershipRepo tenant.MembershipRepository
	logger         logger.Interface
}

func NewAddMemberUseCase(membershipRepo tenant.MembershipRepository, logger logger.Interface) *AddMemberUseCase {
	return &AddMemberUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) (*dto.MembershipDTO, error) {
	userID, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid user id")
	}
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}

	exists, err := uc.membershipRepo.Exists(ctx, userID, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to check membership", "error", err)
		return nil, apperrors.NewInternalError("failed to add member")
	}
	if exists {
		return nil, apperrors.NewConflictError("user already belongs to tenant")
	}

	membership, err := tenant.NewMembership(userID, tenantID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.membershipRepo.Create(ctx, membership); err != nil {
		uc.logger.Errorw("failed to create membership", "error", err)
		return nil, apperrors.NewForbiddenError("not allowed to add members to this tenant")
	}

	result := dto.ToMembershipDTO(membership)
	return &result, nil
}
