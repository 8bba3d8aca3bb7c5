package usecases

import (
	"context"
	"time"

	"github.com/arbor-inc/arbor/internal/application/auth/dto"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	jwtService *auth.JWTService
	denylist   auth.TokenDenylist
	logger     logger.Interface
}

func NewRefreshTokenUseCase(jwtService *auth.JWTService, denylist auth.TokenDenylist, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		jwtService: jwtService,
		denylist:   denylist,
		logger:     logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.TokenPairDTO, error) {
	claims, err := uc.jwtService.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Debugw("refresh token rejected", "error", err)
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	revoked, err := uc.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Fail closed: an unanswerable denylist must not reissue tokens.
		uc.logger.Errorw("failed to check token denylist", "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}
	if revoked {
		uc.logger.Debugw("refresh token rejected", "error", "token revoked")
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	pair, err := uc.jwtService.Generate(claims.UserID, claims.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}

	// Rotation: the consumed refresh token is single-use.
	if err := uc.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		uc.logger.Errorw("failed to revoke rotated refresh token", "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}

	return &dto.TokenPairDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
