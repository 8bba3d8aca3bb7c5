package rls

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arbor-inc/arbor/internal/shared/logger"
)

const testUserID = "b3b9c7d1-58a6-4f33-9b9e-2f0a1d6c4e55"

var setConfigSQL = regexp.QuoteMeta("SELECT set_config($1, $2, true)")

func newMockGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock) {
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

	return NewGateway(gdb, logger.NewLogger()), mock
}

func expectReset(mock sqlmock.Sqlmock) {
	mock.ExpectExec(setConfigSQL).
		WithArgs(SettingUserID, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(setConfigSQL).
		WithArgs(SettingUserRole, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func expectBind(mock sqlmock.Sqlmock, rc Context) {
	expectReset(mock)
	if rc.UserID != "" {
		mock.ExpectExec(setConfigSQL).
			WithArgs(SettingUserID, rc.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	if rc.Role != "" {
		mock.ExpectExec(setConfigSQL).
			WithArgs(SettingUserRole, rc.Role).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
}

func TestGatewayBeginBindsPrincipal(t *testing.T) {
	gw, mock := newMockGateway(t)
	rc := NewContext(testUserID, "tenant_user")

	mock.ExpectBegin()
	expectBind(mock, rc)
	mock.ExpectCommit()

	scope, err := gw.Begin(context.Background(), rc)
	require.NoError(t, err)
	require.NoError(t, scope.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayBeginAnonymousOnlyResets(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	expectReset(mock)
	mock.ExpectCommit()

	scope, err := gw.Begin(context.Background(), Empty())
	require.NoError(t, err)
	require.NoError(t, scope.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayBindResetsBeforeSetting(t *testing.T) {
	// The reset of both variables must precede the new values so a prior
	// occupant of a pooled connection can never leak through. Expectations
	// are ordered, so a set before the resets fails the test.
	gw, mock := newMockGateway(t)
	rc := NewContext(testUserID, "tenant_admin")

	mock.ExpectBegin()
	expectBind(mock, rc)
	mock.ExpectRollback()

	scope, err := gw.Begin(context.Background(), rc)
	require.NoError(t, err)
	require.NoError(t, scope.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayBeginFailClosedOnResetFailure(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(setConfigSQL).
		WithArgs(SettingUserID, "").
		WillReturnError(fmt.Errorf("connection gone"))
	mock.ExpectRollback()

	scope, err := gw.Begin(context.Background(), NewContext(testUserID, "tenant_user"))
	assert.Error(t, err)
	assert.Nil(t, scope)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayBindIdempotent(t *testing.T) {
	gw, mock := newMockGateway(t)
	rc := NewContext(testUserID, "tenant_user")

	mock.ExpectBegin()
	expectBind(mock, rc)
	expectBind(mock, rc)
	mock.ExpectCommit()

	scope, err := gw.Begin(context.Background(), rc)
	require.NoError(t, err)
	require.NoError(t, gw.Bind(scope.DB(), rc))
	require.NoError(t, scope.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayBindUnbindResetLaw(t *testing.T) {
	gw, mock := newMockGateway(t)
	rc := NewContext(testUserID, "tenant_admin")

	mock.ExpectBegin()
	expectBind(mock, rc)
	expectReset(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT current_setting($1, true)")).
		WithArgs(SettingUserID).
		WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(""))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT current_setting($1, true)")).
		WithArgs(SettingUserRole).
		WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(""))
	mock.ExpectCommit()

	scope, err := gw.Begin(context.Background(), rc)
	require.NoError(t, err)
	require.NoError(t, gw.Unbind(scope.DB()))

	current, err := gw.CurrentContext(scope.DB())
	require.NoError(t, err)
	assert.True(t, current.Equal(Empty()))

	require.NoError(t, scope.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayCurrentContextRoundTrip(t *testing.T) {
	gw, mock := newMockGateway(t)
	rc := NewContext(testUserID, "tenant_user")

	mock.ExpectBegin()
	expectBind(mock, rc)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT current_setting($1, true)")).
		WithArgs(SettingUserID).
		WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(rc.UserID))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT current_setting($1, true)")).
		WithArgs(SettingUserRole).
		WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(rc.Role))
	mock.ExpectCommit()

	scope, err := gw.Begin(context.Background(), rc)
	require.NoError(t, err)

	current, err := gw.CurrentContext(scope.DB())
	require.NoError(t, err)
	assert.True(t, current.Equal(rc))

	require.NoError(t, scope.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayRunAsSystem(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	expectBind(mock, SystemContext())
	mock.ExpectCommit()

	err := gw.RunAsSystem(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGatewayRunAsSystemRollsBackOnError(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	expectBind(mock, SystemContext())
	mock.ExpectRollback()

	err := gw.RunAsSystem(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("boom")
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
