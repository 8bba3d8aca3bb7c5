package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/arbor-inc/arbor/internal/application/auth/dto"
	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type RegisterPlatformAdminCommand struct {
	Name           string
	Email          string
	Password       string
	BootstrapToken string
}

// RegisterPlatformAdminUseCase creates a platform administrator. The only
// gate is the bootstrap token from configuration; with an empty configured
// token the operation is disabled entirely.
type RegisterPlatformAdminUseCase struct {
	gateway        *rls.Gateway
	userRepo       user.Repository
	hasher         *auth.BcryptPasswordHasher
	jwtService     *auth.JWTService
	bootstrapToken string
	logger         logger.Interface
}

func NewRegisterPlatformAdminUseCase(
	gateway *rls.Gateway,
	userRepo user.Repository,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	bootstrapToken string,
	logger logger.Interface,
) *RegisterPlatformAdminUseCase {
	return &RegisterPlatformAdminUseCase{
		gateway:        gateway,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtService:     jwtService,
		bootstrapToken: bootstrapToken,
		logger:         logger,
	}
}

func (uc *RegisterPlatformAdminUseCase) Execute(ctx context.Context, cmd RegisterPlatformAdminCommand) (*dto.AuthResultDTO, error) {
	if uc.bootstrapToken == "" {
		return nil, apperrors.NewForbiddenError("platform admin registration is disabled")
	}
	if subtle.ConstantTimeCompare([]byte(cmd.BootstrapToken), []byte(uc.bootstrapToken)) != 1 {
		uc.logger.Warnw("platform admin registration rejected", "email", cmd.Email)
		return nil, apperrors.NewForbiddenError("invalid bootstrap token")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process registration")
	}

	adminUser, err := user.NewUser(cmd.Name, cmd.Email, authorization.RolePlatformAdmin, passwordHash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.gateway.RunAsSystem(ctx, func(txCtx context.Context) error {
		exists, err := uc.userRepo.ExistsByEmail(txCtx, adminUser.Email())
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("email already registered")
		}
		return uc.userRepo.Create(txCtx, adminUser)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("platform admin registration failed", "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}

	pair, err := uc.jwtService.Generate(adminUser.ID().String(), adminUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("platform admin registered", "user_id", adminUser.ID())

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(adminUser),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
