package usecases

import (
	"context"
	"fmt"

	"github.com/arbor-inc/arbor/internal/application/auth/dto"
	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserUseCase handles self sign-up. New accounts always start as
// plain tenant users with no memberships; a tenant admin grants membership
// afterwards, and only a platform admin can elevate the role.
type RegisterUserUseCase struct {
	gateway    *rls.Gateway
	userRepo   user.Repository
	hasher     *auth.BcryptPasswordHasher
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewRegisterUserUseCase(
	gateway *rls.Gateway,
	userRepo user.Repository,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		gateway:    gateway,
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.AuthResultDTO, error) {
	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process registration")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, authorization.RoleTenantUser, passwordHash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.gateway.RunAsSystem(ctx, func(txCtx context.Context) error {
		exists, err := uc.userRepo.ExistsByEmail(txCtx, newUser.Email())
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("email already registered")
		}
		return uc.userRepo.Create(txCtx, newUser)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("user registration failed", "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}

	pair, err := uc.jwtService.Generate(newUser.ID().String(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(newUser),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
