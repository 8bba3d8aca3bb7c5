package usecases

import (
	"context"

	"github.com/arbor-inc/arbor/internal/application/tenant/dto"
	"github.com/arbor-inc/arbor/internal/domain/tenant"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListTenantsQuery struct {
	Page     int
	PageSize int
}

// ListTenantsUseCase returns the tenants the caller can see. No filtering
// happens here: members get their own tenants, platform admins get all of
// them, straight from the row filters.
type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, q ListTenantsQuery) ([]dto.TenantDTO, int64, error) {
	tenants, total, err := uc.tenantRepo.List(ctx, q.Page, q.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list tenants")
	}
	return dto.ToTenantDTOs(tenants), total, nil
}
