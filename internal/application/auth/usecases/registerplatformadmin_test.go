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

func newRegisterPlatformAdminUseCase(t *testing.T, repo *mockUserRepo, configuredToken string, scoped, commits bool) *RegisterPlatformAdminUseCase {
	t.Helper()

	gateway, mock := newSystemGateway(t)
	if scoped {
		expectSystemScope(mock, commits)
	}

	return NewRegisterPlatformAdminUseCase(
		gateway,
		repo,
		testHasher(),
		auth.NewJWTService("test-secret", 15, 7),
		configuredToken,
		logger.NewLogger(),
	)
}

func TestRegisterPlatformAdmin_Success(t *testing.T) {
	repo := newMockUserRepo()
	uc := newRegisterPlatformAdminUseCase(t, repo, "bootstrap-token", true, true)

	result, err := uc.Execute(context.Background(), RegisterPlatformAdminCommand{
		Name:           "Root",
		Email:          "root@example.com",
		Password:       "s3cret-pass",
		BootstrapToken: "bootstrap-token",
	})

	require.NoError(t, err)
	assert.Equal(t, authorization.RolePlatformAdmin.String(), result.User.Role)
	assert.NotEmpty(t, result.AccessToken)
	assert.Len(t, repo.users, 1)
}

func TestRegisterPlatformAdmin_Disabled(t *testing.T) {
	// An empty configured token disables the operation before any token
	// comparison happens.
	uc := newRegisterPlatformAdminUseCase(t, newMockUserRepo(), "", false, false)

	result, err := uc.Execute(context.Background(), RegisterPlatformAdminCommand{
		Name:           "Root",
		Email:          "root@example.com",
		Password:       "s3cret-pass",
		BootstrapToken: "",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestRegisterPlatformAdmin_WrongToken(t *testing.T) {
	repo := newMockUserRepo()
	uc := newRegisterPlatformAdminUseCase(t, repo, "bootstrap-token", false, false)

	result, err := uc.Execute(context.Background(), RegisterPlatformAdminCommand{
		Name:           "Root",
		Email:          "root@example.com",
		Password:       "s3cret-pass",
		BootstrapToken: "guessed-token",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	assert.Empty(t, repo.users)
}

func TestRegisterPlatformAdmin_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "root@example.com", "old-pass", authorization.RolePlatformAdmin)
	uc := newRegisterPlatformAdminUseCase(t, repo, "bootstrap-token", true, false)

	result, err := uc.Execute(context.Background(), RegisterPlatformAdminCommand{
		Name:           "Root",
		Email:          "root@example.com",
		Password:       "s3cret-pass",
		BootstrapToken: "bootstrap-token",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.Len(t, repo.users, 1)
}
