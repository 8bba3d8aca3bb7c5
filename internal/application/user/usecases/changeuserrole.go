package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/application/user/dto"
	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type ChangeUserRoleCommand struct {
	UserID   string
	Role     string
	CallerID string
}

// ChangeUserRoleUseCase assigns a new role to a user. Routing restricts it
// to platform admins, and a caller can never change their own role.
type ChangeUserRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeUserRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, cmd ChangeUserRoleCommand) (*dto.UserDTO, error) {
	id, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid user id")
	}

	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, apperrors.NewValidationError("unknown role")
	}

	if cmd.CallerID == cmd.UserID {
		return nil, apperrors.NewForbiddenError("cannot change own role")
	}

	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load user", "user_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to change role")
	}

	if err := u.ChangeRole(role); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if err == user.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to update user role", "user_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to change role")
	}

	uc.logger.Infow("user role changed", "user_id", id, "role", role)

	result := dto.ToUserDTO(u)
	return &result, nil
}
