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

func newLoginUseCase(t *testing.T, repo *mockUserRepo, commits bool) *LoginUseCase {
	t.Helper()

	gateway, mock := newSystemGateway(t)
	expectSystemScope(mock, commits)

	return NewLoginUseCase(
		gateway,
		repo,
		testHasher(),
		auth.NewJWTService("test-secret", 15, 7),
		logger.NewLogger(),
	)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	seeded := seedUser(t, repo, "alice@example.com", "s3cret-pass", authorization.RoleTenantUser)
	uc := newLoginUseCase(t, repo, true)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, seeded.ID().String(), result.User.ID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Greater(t, result.ExpiresIn, int64(0))
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newLoginUseCase(t, newMockUserRepo(), false)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "alice@example.com", "s3cret-pass", authorization.RoleTenantUser)
	uc := newLoginUseCase(t, repo, true)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	// Indistinguishable from the unknown-email failure.
	assert.Equal(t, "invalid email or password", appErr.Message)
}
