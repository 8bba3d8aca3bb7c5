package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	apperrors "github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type mockUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := m.users[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, filter user.Filter) ([]*user.User, int64, error) {
	var out []*user.User
	for _, u := range m.users {
		if filter.Role != nil && u.Role().String() != *filter.Role {
			continue
		}
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func seedUser(t *testing.T, repo *mockUserRepo, email string, role authorization.Role) *user.User {
	t.Helper()

	u, err := user.NewUser("Test User", email, role, "hash")
	require.NoError(t, err)
	repo.users[u.ID()] = u
	return u
}

func TestChangeUserRole_Success(t *testing.T) {
	repo := newMockUserRepo()
	caller := seedUser(t, repo, "admin@example.com", authorization.RolePlatformAdmin)
	target := seedUser(t, repo, "member@example.com", authorization.RoleTenantUser)
	uc := NewChangeUserRoleUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeUserRoleCommand{
		UserID:   target.ID().String(),
		Role:     "tenant_admin",
		CallerID: caller.ID().String(),
	})

	require.NoError(t, err)
	assert.Equal(t, "tenant_admin", result.Role)
	assert.Equal(t, authorization.RoleTenantAdmin, repo.users[target.ID()].Role())
}

func TestChangeUserRole_SelfChangeForbidden(t *testing.T) {
	repo := newMockUserRepo()
	caller := seedUser(t, repo, "admin@example.com", authorization.RolePlatformAdmin)
	uc := NewChangeUserRoleUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeUserRoleCommand{
		UserID:   caller.ID().String(),
		Role:     "tenant_user",
		CallerID: caller.ID().String(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	assert.Equal(t, authorization.RolePlatformAdmin, repo.users[caller.ID()].Role())
}

func TestChangeUserRole_InvalidInput(t *testing.T) {
	repo := newMockUserRepo()
	caller := seedUser(t, repo, "admin@example.com", authorization.RolePlatformAdmin)
	target := seedUser(t, repo, "member@example.com", authorization.RoleTenantUser)
	uc := NewChangeUserRoleUseCase(repo, logger.NewLogger())

	tests := []struct {
		name string
		cmd  ChangeUserRoleCommand
	}{
		{
			name: "malformed user id",
			cmd: ChangeUserRoleCommand{
				UserID:   "not-a-uuid",
				Role:     "tenant_admin",
				CallerID: caller.ID().String(),
			},
		},
		{
			name: "unknown role",
			cmd: ChangeUserRoleCommand{
				UserID:   target.ID().String(),
				Role:     "superuser",
				CallerID: caller.ID().String(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestChangeUserRole_NotFound(t *testing.T) {
	repo := newMockUserRepo()
	caller := seedUser(t, repo, "admin@example.com", authorization.RolePlatformAdmin)
	uc := NewChangeUserRoleUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeUserRoleCommand{
		UserID:   uuid.New().String(),
		Role:     "tenant_admin",
		CallerID: caller.ID().String(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestListUsers_RoleFilter(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "admin@example.com", authorization.RolePlatformAdmin)
	seedUser(t, repo, "m1@example.com", authorization.RoleTenantUser)
	seedUser(t, repo, "m2@example.com", authorization.RoleTenantUser)
	uc := NewListUsersUseCase(repo, logger.NewLogger())

	role := "tenant_user"
	users, total, err := uc.Execute(context.Background(), ListUsersQuery{
		Role:     &role,
		Page:     1,
		PageSize: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, "tenant_user", u.Role)
	}
}
