package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/tenant/dto"
	"github.com/arbor-inc/arbor/internal/domain/tenant"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListMembersCommand struct {
	TenantID string
}

type ListMembersUseCase struct {
	membershipRepo tenant.MembershipRepository
	logger         logger.Interface
}

func NewListMembersUseCase(membershipRepo tenant.MembershipRepository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, cmd ListMembersCommand) ([]dto.MembershipDTO, error) {
	tenantID, err := uuid.Parse(cmd.TenantID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tenant id")
	}

	memberships, err := uc.membershipRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list members", "tenant_id", tenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to list members")
	}

	return dto.ToMembershipDTOs(memberships), nil
}
