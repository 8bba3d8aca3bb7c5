package usecases

import (
	"context"

	"github.com/arbor-inc/arbor/internal/application/user/dto"
	"github.com/arbor-inc/arbor/internal/domain/user"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ListUsersQuery struct {
	Role     *string
	Page     int
	PageSize int
}

// ListUsersUseCase returns the users the caller can see. A platform admin
// sees everyone; a tenant member sees themselves and users sharing a tenant.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) ([]dto.UserDTO, int64, error) {
	users, total, err := uc.userRepo.List(ctx, user.Filter{
		Role:     q.Role,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list users")
	}
	return dto.ToUserDTOs(users), total, nil
}
