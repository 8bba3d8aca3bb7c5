package usecases

import (
	"context"

	"github.com/arbor-inc/arbor/internal/application/auth/dto"
	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

// LoginUseCase authenticates credentials. The lookup runs in the
// administrative scope because an anonymous context cannot see any user row,
// including the one trying to log in.
type LoginUseCase struct {
	gateway    *rls.Gateway
	userRepo   user.Repository
	hasher     *auth.BcryptPasswordHasher
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	gateway *rls.Gateway,
	userRepo user.Repository,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		gateway:    gateway,
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	var found *user.User
	err := uc.gateway.RunAsSystem(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByEmail(txCtx, cmd.Email)
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		// Same response for unknown email and wrong password.
		if err == user.ErrUserNotFound {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("login lookup failed", "error", err)
		return nil, apperrors.NewInternalError("login failed")
	}

	if err := uc.hasher.Verify(cmd.Password, found.PasswordHash()); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.jwtService.Generate(found.ID().String(), found.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", found.ID())

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(found),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
