package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

func newTokenFixture(t *testing.T) (*auth.JWTService, auth.TokenDenylist, *auth.TokenPair) {
	t.Helper()
	svc := auth.NewJWTService("test-secret", 15, 7)
	pair, err := svc.Generate("b3b9c7d1-58a6-4f33-9b9e-2f0a1d6c4e55", authorization.RoleTenantUser)
	require.NoError(t, err)
	return svc, auth.NewMemoryTokenDenylist(), pair
}

func TestLogout_RevokedTokenCannotRefresh(t *testing.T) {
	svc, denylist, pair := newTokenFixture(t)

	logoutUC := NewLogoutUseCase(svc, denylist, logger.NewLogger())
	require.NoError(t, logoutUC.Execute(context.Background(), LogoutCommand{RefreshToken: pair.RefreshToken}))

	refreshUC := NewRefreshTokenUseCase(svc, denylist, logger.NewLogger())
	_, err := refreshUC.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLogout_InvalidToken(t *testing.T) {
	svc, denylist, _ := newTokenFixture(t)

	logoutUC := NewLogoutUseCase(svc, denylist, logger.NewLogger())
	err := logoutUC.Execute(context.Background(), LogoutCommand{RefreshToken: "not.a.token"})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLogout_RejectsAccessToken(t *testing.T) {
	svc, denylist, pair := newTokenFixture(t)

	logoutUC := NewLogoutUseCase(svc, denylist, logger.NewLogger())
	err := logoutUC.Execute(context.Background(), LogoutCommand{RefreshToken: pair.AccessToken})
	require.Error(t, err)
}

func TestRefreshToken_SingleUse(t *testing.T) {
	svc, denylist, pair := newTokenFixture(t)

	refreshUC := NewRefreshTokenUseCase(svc, denylist, logger.NewLogger())

	result, err := refreshUC.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)

	// The consumed token was rotated out; replaying it fails.
	_, err = refreshUC.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)

	// The rotated-in token works.
	_, err = refreshUC.Execute(context.Background(), RefreshTokenCommand{RefreshToken: result.RefreshToken})
	require.NoError(t, err)
}
