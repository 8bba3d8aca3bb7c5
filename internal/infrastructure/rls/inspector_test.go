package rls

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/shared/logger"
)

var sessionSetConfigSQL = regexp.QuoteMeta("SELECT set_config($1, $2, false)")
var sessionResetSQL = regexp.QuoteMeta("SELECT set_config($1, '', false)")

func newMockInspector(t *testing.T) (*Inspector, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewInspector(sqlDB, logger.NewLogger()), mock
}

func expectSessionBind(mock sqlmock.Sqlmock, rc Context) {
	mock.ExpectExec(sessionResetSQL).
		WithArgs(SettingUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(sessionResetSQL).
		WithArgs(SettingUserRole).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if rc.UserID != "" {
		mock.ExpectExec(sessionSetConfigSQL).
			WithArgs(SettingUserID, rc.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	if rc.Role != "" {
		mock.ExpectExec(sessionSetConfigSQL).
			WithArgs(SettingUserRole, rc.Role).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
}

func TestInspectorEnabled(t *testing.T) {
	insp, mock := newMockInspector(t)

	mock.ExpectQuery("SELECT relrowsecurity").
		WithArgs("tenants").
		WillReturnRows(sqlmock.NewRows([]string{"relrowsecurity"}).AddRow(true))

	enabled, err := insp.Enabled(context.Background(), "tenants")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectorEnabledRejectsUnknownTable(t *testing.T) {
	insp, _ := newMockInspector(t)

	_, err := insp.Enabled(context.Background(), "pg_shadow; DROP TABLE users")
	assert.Error(t, err)
}

func TestInspectorListPolicies(t *testing.T) {
	insp, mock := newMockInspector(t)

	rows := sqlmock.NewRows([]string{"tablename", "policyname", "cmd", "qual", "with_check"}).
		AddRow("tenants", "tenants_select_policy", "SELECT", "(id = ANY (...))", "").
		AddRow("users", "users_insert_policy", "INSERT", "", "(role = 'platform_admin')")
	mock.ExpectQuery("SELECT tablename, policyname, cmd").WillReturnRows(rows)

	policies, err := insp.ListPolicies(context.Background())
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, "tenants", policies[0].Table)
	assert.Equal(t, "tenants_select_policy", policies[0].Name)
	assert.Equal(t, "INSERT", policies[1].Command)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectorCompareVisibility(t *testing.T) {
	insp, mock := newMockInspector(t)

	admin := Context{Role: "platform_admin"}
	member := NewContext(testUserID, "tenant_user")

	expectSessionBind(mock, admin)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM tenants ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1").AddRow("t2"))

	expectSessionBind(mock, member)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM tenants ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))

	// release resets before handing the connection back
	expectSessionBind(mock, Empty())

	report, err := insp.CompareVisibility(context.Background(), admin, member, "tenants")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, report.RowsA)
	assert.Equal(t, []string{"t1"}, report.RowsB)
	assert.True(t, report.Isolated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectorCompareVisibilityIdenticalSets(t *testing.T) {
	insp, mock := newMockInspector(t)

	a := NewContext(testUserID, "tenant_user")
	b := NewContext("7e2f1b9a-4c6d-4e8f-8a1b-0c2d3e4f5a6b", "tenant_user")

	expectSessionBind(mock, a)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM subscriptions ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s1"))
	expectSessionBind(mock, b)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM subscriptions ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s1"))
	expectSessionBind(mock, Empty())

	report, err := insp.CompareVisibility(context.Background(), a, b, "subscriptions")
	require.NoError(t, err)
	assert.False(t, report.Isolated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectorCompareVisibilityRejectsUnknownTable(t *testing.T) {
	insp, _ := newMockInspector(t)

	_, err := insp.CompareVisibility(context.Background(), Empty(), Empty(), "pg_policies")
	assert.Error(t, err)
}

func TestInspectorCurrentContext(t *testing.T) {
	insp, mock := newMockInspector(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT current_setting($1, true)")).
		WithArgs(SettingUserID).
		WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(""))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT current_setting($1, true)")).
		WithArgs(SettingUserRole).
		WillReturnRows(sqlmock.NewRows([]string{"current_setting"}).AddRow(""))

	rc, err := insp.CurrentContext(context.Background())
	require.NoError(t, err)
	assert.True(t, rc.IsAnonymous())
	assert.NoError(t, mock.ExpectationsWereMet())
}
