package usecases

import (
	"context"
	"time"

	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type LogoutCommand struct {
	RefreshToken string
}

// LogoutUseCase revokes the presented refresh token. Access tokens stay valid
// until they expire; what logout guarantees is that the pair can no longer
// mint new ones.
type LogoutUseCase struct {
	jwtService *auth.JWTService
	denylist   auth.TokenDenylist
	logger     logger.Interface
}

func NewLogoutUseCase(jwtService *auth.JWTService, denylist auth.TokenDenylist, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		jwtService: jwtService,
		denylist:   denylist,
		logger:     logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	claims, err := uc.jwtService.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Debugw("logout with invalid refresh token", "error", err)
		return apperrors.NewUnauthorizedError("invalid refresh token")
	}

	if err := uc.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		uc.logger.Errorw("failed to revoke refresh token", "error", err)
		return apperrors.NewInternalError("failed to log out")
	}

	uc.logger.Infow("refresh token revoked", "user_id", claims.UserID)
	return nil
}
