package usecases

import (
	"context"
	"fmt"

	"github.com/arbor-inc/arbor/internal/application/auth/dto"
	"github.com/arbor-inc/arbor/internal/domain/tenant"
	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type RegisterTenantCommand struct {
	TenantName string
	AdminName  string
	Email      string
	Password   string
}

// RegisterTenantUseCase provisions a tenant together with its first admin.
// Registration has no authenticated caller, so the writes run in the
// administrative scope; everything commits or rolls back as one unit.
type RegisterTenantUseCase struct {
	gateway        *rls.Gateway
	userRepo       user.Repository
	tenantRepo     tenant.Repository
	membershipRepo tenant.MembershipRepository
	hasher         *auth.BcryptPasswordHasher
	jwtService     *auth.JWTService
	logger         logger.Interface
}

func NewRegisterTenantUseCase(
	gateway *rls.Gateway,
	userRepo user.Repository,
	tenantRepo tenant.Repository,
	membershipRepo tenant.MembershipRepository,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	logger logger.Interface,
) *RegisterTenantUseCase {
	return &RegisterTenantUseCase{
		gateway:        gateway,
		userRepo:       userRepo,
		tenantRepo:     tenantRepo,
		membershipRepo: membershipRepo,
		hasher:         hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *RegisterTenantUseCase) Execute(ctx context.Context, cmd RegisterTenantCommand) (*dto.AuthResultDTO, error) {
	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process registration")
	}

	adminUser, err := user.NewUser(cmd.AdminName, cmd.Email, authorization.RoleTenantAdmin, passwordHash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	newTenant, err := tenant.NewTenant(cmd.TenantName)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var tenantID string
	err = uc.gateway.RunAsSystem(ctx, func(txCtx context.Context) error {
		exists, err := uc.userRepo.ExistsByEmail(txCtx, adminUser.Email())
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("email already registered")
		}

		if _, err := uc.tenantRepo.GetByName(txCtx, newTenant.Name()); err == nil {
			return apperrors.NewConflictError("tenant name already exists")
		} else if err != tenant.ErrTenantNotFound {
			return fmt.Errorf("failed to check tenant name: %w", err)
		}

		if err := uc.userRepo.Create(txCtx, adminUser); err != nil {
			return err
		}
		if err := uc.tenantRepo.Create(txCtx, newTenant); err != nil {
			return err
		}

		membership, err := tenant.NewMembership(adminUser.ID(), newTenant.ID())
		if err != nil {
			return err
		}
		if err := uc.membershipRepo.Create(txCtx, membership); err != nil {
			return err
		}

		tenantID = newTenant.ID().String()
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("tenant registration failed", "error", err)
		return nil, apperrors.NewInternalError("registration failed")
	}

	pair, err := uc.jwtService.Generate(adminUser.ID().String(), adminUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("tenant registered",
		"tenant_id", tenantID, "admin_id", adminUser.ID())

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(adminUser),
		TenantID:     tenantID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
