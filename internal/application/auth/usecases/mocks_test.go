package usecases

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"golang.org/x/crypto/bcrypt"

	"github.com/arbor-inc/arbor/internal/domain/user"
	"github.com/arbor-inc/arbor/internal/infrastructure/auth"
	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

type mockUserRepo struct {
	users     map[uuid.UUID]*user.User
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
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

// MinCost keeps the hashing out of the test runtime.
func testHasher() *auth.BcryptPasswordHasher {
	return auth.NewBcryptPasswordHasher(bcrypt.MinCost)
}

func seedUser(t *testing.T, repo *mockUserRepo, email, password string, role authorization.Role) *user.User {
	t.Helper()

	hash, err := testHasher().Hash(password)
	require.NoError(t, err)

	u, err := user.NewUser("Test User", email, role, hash)
	require.NoError(t, err)
	repo.users[u.ID()] = u
	return u
}

// newSystemGateway builds a gateway over sqlmock so the administrative scope
// the bootstrap usecases run in can be exercised without a database.
func newSystemGateway(t *testing.T) (*rls.Gateway, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormlogger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return rls.NewGateway(gdb, logger.NewLogger()), mock
}

var setConfigSQL = regexp.QuoteMeta("SELECT set_config($1, $2, true)")

// expectSystemScope queues the bind sequence RunAsSystem performs. The scope
// commits when the wrapped function succeeds and rolls back otherwise.
func expectSystemScope(mock sqlmock.Sqlmock, commits bool) {
	mock.ExpectBegin()
	mock.ExpectExec(setConfigSQL).
		WithArgs(rls.SettingUserID, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(setConfigSQL).
		WithArgs(rls.SettingUserRole, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(setConfigSQL).
		WithArgs(rls.SettingUserRole, authorization.RolePlatformAdmin.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if commits {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}
