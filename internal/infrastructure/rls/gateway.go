package rls

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/arbor-inc/arbor/internal/shared/db"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

// Gateway propagates a caller's Context onto the database session a request
// uses. Each Begin opens a transaction, which pins one pooled connection to
// the request for its whole duration; the context variables are written
// transaction-locally, so they cannot survive into the next occupant of that
// connection even if cleanup is skipped.
type Gateway struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGateway(gdb *gorm.DB, log logger.Interface) *Gateway {
	return &Gateway{db: gdb, logger: log}
}

// Scope is a request-bound database handle. All queries issued through DB()
// run on the same pinned connection with the caller's context applied.
type Scope struct {
	tx   *gorm.DB
	done bool
}

// DB returns the scoped handle for query execution.
func (s *Scope) DB() *gorm.DB {
	return s.tx
}

func (s *Scope) Commit() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Commit().Error
}

func (s *Scope) Rollback() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback().Error
}

// Begin pins a connection and binds rc onto it. The reset step is mandatory
// and fail-closed: if the context cannot be confirmed clean, the scope is
// torn down and an error returned rather than serving the request against a
// possibly stale session. No retry is attempted against the same connection.
func (g *Gateway) Begin(ctx context.Context, rc Context) (*Scope, error) {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to acquire request connection: %w", tx.Error)
	}

	if err := g.Bind(tx, rc); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			g.logger.Errorw("failed to discard connection after bind failure", "error", rbErr)
		}
		return nil, err
	}

	return &Scope{tx: tx}, nil
}

// Bind resets both context variables to empty and then, if rc carries an
// identity, sets them from it. Reset always runs first so a prior occupant
// of the connection can never leak through. Idempotent.
func (g *Gateway) Bind(tx *gorm.DB, rc Context) error {
	if err := setConfig(tx, SettingUserID, ""); err != nil {
		g.logger.Errorw("failed to reset session user id", "error", err)
		return fmt.Errorf("failed to reset row security context: %w", err)
	}
	if err := setConfig(tx, SettingUserRole, ""); err != nil {
		g.logger.Errorw("failed to reset session user role", "error", err)
		return fmt.Errorf("failed to reset row security context: %w", err)
	}

	if rc.IsAnonymous() {
		return nil
	}

	if rc.UserID != "" {
		if err := setConfig(tx, SettingUserID, rc.UserID); err != nil {
			g.logger.Errorw("failed to set session user id", "error", err, "user_id", rc.UserID)
			return fmt.Errorf("failed to bind row security context: %w", err)
		}
	}
	if rc.Role != "" {
		if err := setConfig(tx, SettingUserRole, rc.Role); err != nil {
			g.logger.Errorw("failed to set session user role", "error", err, "role", rc.Role)
			return fmt.Errorf("failed to bind row security context: %w", err)
		}
	}

	g.logger.Debugw("row security context bound", "user_id", rc.UserID, "role", rc.Role)
	return nil
}

// Unbind resets both context variables to empty on tx.
func (g *Gateway) Unbind(tx *gorm.DB) error {
	return g.Bind(tx, Empty())
}

// CurrentContext reads back the context bound on the handle the caller is
// using. The empty-string reset value reads back as absent.
func (g *Gateway) CurrentContext(tx *gorm.DB) (Context, error) {
	userID, err := currentSetting(tx, SettingUserID)
	if err != nil {
		return Context{}, fmt.Errorf("failed to read current user id: %w", err)
	}
	role, err := currentSetting(tx, SettingUserRole)
	if err != nil {
		return Context{}, fmt.Errorf("failed to read current user role: %w", err)
	}
	return Context{UserID: userID, Role: role}, nil
}

// RunAsSystem executes fn in a scope bound to the administrative context.
// Reserved for bootstrap paths where the caller has no database-visible
// identity yet (registration, credential lookup) and for operator tooling.
// The scope travels in the context the same way the request middleware
// stores its scope, so repositories are oblivious to which one they run in.
func (g *Gateway) RunAsSystem(ctx context.Context, fn func(ctx context.Context) error) error {
	scope, err := g.Begin(ctx, SystemContext())
	if err != nil {
		return err
	}

	if err := fn(db.WithTx(ctx, scope.DB())); err != nil {
		if rbErr := scope.Rollback(); rbErr != nil {
			g.logger.Errorw("failed to roll back system scope", "error", rbErr)
		}
		return err
	}

	return scope.Commit()
}

// setConfig writes one session variable. is_local is always true here: the
// value is confined to the current transaction and dies with it, which is
// what makes pooled-connection reuse safe by construction.
func setConfig(tx *gorm.DB, name, value string) error {
	return tx.Exec("SELECT set_config(?, ?, true)", name, value).Error
}

func currentSetting(tx *gorm.DB, name string) (string, error) {
	var value *string
	// missing_ok=true: an unset variable reads as NULL instead of erroring.
	if err := tx.Raw("SELECT current_setting(?, true)", name).Scan(&value).Error; err != nil {
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}
