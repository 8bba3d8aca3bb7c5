package rls

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/arbor-inc/arbor/internal/shared/errors"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// Inspector is the operational surface for verifying the row security setup
// and diagnosing isolation failures. It works on dedicated connections
// checked out from the pool and is wired only into operator tooling, never
// into request handling. Binds made here are session-scoped, so every path
// that sets context must clear it before the connection is returned.
type Inspector struct {
	db     *sql.DB
	logger logger.Interface
}

func NewInspector(sqlDB *sql.DB, log logger.Interface) *Inspector {
	return &Inspector{db: sqlDB, logger: log}
}

// Policy describes one active row security policy.
type Policy struct {
	Table     string
	Name      string
	Command   string
	Using     string
	WithCheck string
}

// VisibilityReport is the outcome of a CompareVisibility run.
type VisibilityReport struct {
	Table    string
	RowsA    []string
	RowsB    []string
	Isolated bool
}

// Enabled reports whether row security is enabled on table.
func (i *Inspector) Enabled(ctx context.Context, table string) (bool, error) {
	if !isProtectedTable(table) {
		return false, errors.NewBadRequestError(fmt.Sprintf("unknown protected table: %s", table))
	}

	var enabled sql.NullBool
	err := i.db.QueryRowContext(ctx, `
		SELECT relrowsecurity
		FROM pg_class
		WHERE relname = $1 AND relnamespace = (
			SELECT oid FROM pg_namespace WHERE nspname = 'public'
		)`, table).Scan(&enabled)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternalError("failed to check row security status", err.Error())
	}
	return enabled.Valid && enabled.Bool, nil
}

// Status returns the per-table enabled map for all protected tables.
func (i *Inspector) Status(ctx context.Context) (map[string]bool, error) {
	status := make(map[string]bool, len(ProtectedTables))
	for _, table := range ProtectedTables {
		enabled, err := i.Enabled(ctx, table)
		if err != nil {
			return nil, err
		}
		status[table] = enabled
	}
	return status, nil
}

// SetEnabled toggles row security on table. Only the table owner may run
// the ALTER, so this works exclusively through an owner connection; it exists
// for operator tooling and must never be reachable from request paths.
func (i *Inspector) SetEnabled(ctx context.Context, table string, enabled bool) error {
	if !isProtectedTable(table) {
		return errors.NewBadRequestError(fmt.Sprintf("unknown protected table: %s", table))
	}

	verb := "DISABLE"
	if enabled {
		verb = "ENABLE"
	}
	// table is validated against ProtectedTables above; identifiers cannot
	// be bound as parameters.
	if _, err := i.db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s %s ROW LEVEL SECURITY", table, verb)); err != nil {
		return errors.NewInternalError("failed to alter row security", err.Error())
	}

	i.logger.Warnw("row security toggled", "table", table, "enabled", enabled)
	return nil
}

// ListPolicies returns the active policies ordered by table then name.
func (i *Inspector) ListPolicies(ctx context.Context) ([]Policy, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT tablename, policyname, cmd,
		       COALESCE(qual, ''), COALESCE(with_check, '')
		FROM pg_policies
		WHERE schemaname = 'public'
		ORDER BY tablename, policyname`)
	if err != nil {
		return nil, errors.NewInternalError("failed to list row security policies", err.Error())
	}
	defer rows.Close()

	var policies []Policy
	for rows.Next() {
		var p Policy
		if err := rows.Scan(&p.Table, &p.Name, &p.Command, &p.Using, &p.WithCheck); err != nil {
			return nil, errors.NewInternalError("failed to scan policy row", err.Error())
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternalError("failed to iterate policy rows", err.Error())
	}
	return policies, nil
}

// CurrentContext reads the context bound on a fresh pooled connection. On an
// idle pool this is the empty context; anything else indicates a leak.
func (i *Inspector) CurrentContext(ctx context.Context) (Context, error) {
	conn, err := i.db.Conn(ctx)
	if err != nil {
		return Context{}, errors.NewInternalError("failed to acquire connection", err.Error())
	}
	defer conn.Close()

	return readContext(ctx, conn)
}

// ForceBind binds a session-scoped context for test and administrative
// harnesses. The caller owns the cleanup: Clear must run on the same
// logical path before the work is considered done.
func (i *Inspector) ForceBind(ctx context.Context, conn *sql.Conn, userID, role string) error {
	if err := bindSession(ctx, conn, Context{UserID: userID, Role: role}); err != nil {
		return errors.NewInternalError("failed to force-bind context", err.Error())
	}
	return nil
}

// Clear resets the session-scoped context on conn.
func (i *Inspector) Clear(ctx context.Context, conn *sql.Conn) error {
	if err := bindSession(ctx, conn, Empty()); err != nil {
		return errors.NewInternalError("failed to clear context", err.Error())
	}
	return nil
}

// Conn checks a dedicated connection out of the pool for ForceBind/Clear
// sequences.
func (i *Inspector) Conn(ctx context.Context) (*sql.Conn, error) {
	return i.db.Conn(ctx)
}

// CompareVisibility runs the same read under two contexts sequentially on
// the same connection and diffs the visible row-id sets. Used to verify
// isolation empirically from operator tooling.
func (i *Inspector) CompareVisibility(ctx context.Context, a, b Context, table string) (*VisibilityReport, error) {
	if !isProtectedTable(table) {
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown protected table: %s", table))
	}

	conn, err := i.db.Conn(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to acquire connection", err.Error())
	}
	defer i.release(ctx, conn)

	rowsA, err := i.visibleRows(ctx, conn, a, table)
	if err != nil {
		return nil, err
	}
	rowsB, err := i.visibleRows(ctx, conn, b, table)
	if err != nil {
		return nil, err
	}

	return &VisibilityReport{
		Table:    table,
		RowsA:    rowsA,
		RowsB:    rowsB,
		Isolated: !sameIDSet(rowsA, rowsB),
	}, nil
}

func (i *Inspector) visibleRows(ctx context.Context, conn *sql.Conn, rc Context, table string) ([]string, error) {
	if err := bindSession(ctx, conn, rc); err != nil {
		return nil, errors.NewInternalError("failed to bind comparison context", err.Error())
	}

	// table is validated against ProtectedTables above; identifiers cannot
	// be bound as parameters.
	rows, err := conn.QueryContext(ctx, fmt.Sprintf("SELECT id FROM %s ORDER BY id", table))
	if err != nil {
		return nil, errors.NewInternalError("failed to query visible rows", err.Error())
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.NewInternalError("failed to scan row id", err.Error())
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternalError("failed to iterate visible rows", err.Error())
	}
	return ids, nil
}

// release clears the session context and returns the connection to the pool.
// If the reset cannot be confirmed the connection is poisoned so the pool
// discards it instead of handing stale context to the next request.
func (i *Inspector) release(ctx context.Context, conn *sql.Conn) {
	if err := bindSession(ctx, conn, Empty()); err != nil {
		i.logger.Errorw("failed to reset session context, discarding connection", "error", err)
		_ = conn.Raw(func(driverConn interface{}) error {
			return driver.ErrBadConn
		})
	}
	_ = conn.Close()
}

// bindSession mirrors Gateway.Bind for raw connections, with is_local=false:
// diagnostic binds outlive statements but never the connection checkout,
// because release always resets before checkin.
func bindSession(ctx context.Context, conn *sql.Conn, rc Context) error {
	if _, err := conn.ExecContext(ctx, "SELECT set_config($1, '', false)", SettingUserID); err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, "SELECT set_config($1, '', false)", SettingUserRole); err != nil {
		return err
	}
	if rc.UserID != "" {
		if _, err := conn.ExecContext(ctx, "SELECT set_config($1, $2, false)", SettingUserID, rc.UserID); err != nil {
			return err
		}
	}
	if rc.Role != "" {
		if _, err := conn.ExecContext(ctx, "SELECT set_config($1, $2, false)", SettingUserRole, rc.Role); err != nil {
			return err
		}
	}
	return nil
}

func readContext(ctx context.Context, conn *sql.Conn) (Context, error) {
	var userID, role sql.NullString
	if err := conn.QueryRowContext(ctx, "SELECT current_setting($1, true)", SettingUserID).Scan(&userID); err != nil {
		return Context{}, errors.NewInternalError("failed to read current user id", err.Error())
	}
	if err := conn.QueryRowContext(ctx, "SELECT current_setting($1, true)", SettingUserRole).Scan(&role); err != nil {
		return Context{}, errors.NewInternalError("failed to read current user role", err.Error())
	}
	return Context{UserID: userID.String, Role: role.String}, nil
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
