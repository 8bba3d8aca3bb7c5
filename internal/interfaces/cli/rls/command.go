package rls

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arbor-inc/arbor/internal/infrastructure/config"
	"github.com/arbor-inc/arbor/internal/infrastructure/database"
	rlsinfra "github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/shared/logger"
)

var (
	env    string
	table  string
	userA  string
	roleA  string
	userB  string
	roleB  string
	asUser string
	asRole string
)

// NewCommand builds the row security toolbox. It is deliberately CLI-only:
// exposing policy internals or force-bind over HTTP would hand any
// authenticated caller an isolation probe.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rls",
		Short: "Row security inspection tools",
		Long: `Inspect and verify the row security setup: per-table enablement,
active policies, the context bound on pooled connections, and empirical
isolation checks between two authorization contexts.

The inspection commands connect as the application role so the policies
under inspection actually apply. Only enable and disable connect as the
schema owner, which the ALTERs require.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newStatusCommand(),
		newPoliciesCommand(),
		newContextCommand(),
		newTestIsolationCommand(),
		newEnableCommand(),
		newDisableCommand(),
	)

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-table row security enablement",
		RunE:  runStatus,
	}
}

func newPoliciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List active row security policies",
		RunE:  runPolicies,
	}
}

func newContextCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show the context bound on a pooled connection",
		Long: `Read back the session variables on a freshly checked-out connection.
On a healthy pool both are empty; anything else means a connection was
returned without its context being reset.

With --as-user/--as-role the command force-binds that context on a dedicated
connection, reads it back, and clears it, exercising the full bind round
trip.`,
		RunE: runContext,
	}

	cmd.Flags().StringVar(&asUser, "as-user", "", "Force-bind this user id before reading")
	cmd.Flags().StringVar(&asRole, "as-role", "", "Force-bind this role before reading")

	return cmd
}

func newTestIsolationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-isolation",
		Short: "Compare row visibility between two contexts",
		Long: `Run the same read under two authorization contexts on the same
connection and diff the visible row sets. Two users from different tenants
must see disjoint rows; identical sets mean the policies are not biting.`,
		RunE: runTestIsolation,
	}

	cmd.Flags().StringVar(&table, "table", "", "Protected table to probe (required)")
	cmd.Flags().StringVar(&userA, "user-a", "", "First user id (required)")
	cmd.Flags().StringVar(&roleA, "role-a", "tenant_user", "First user role")
	cmd.Flags().StringVar(&userB, "user-b", "", "Second user id (required)")
	cmd.Flags().StringVar(&roleB, "role-b", "tenant_user", "Second user role")
	cmd.MarkFlagRequired("table")
	cmd.MarkFlagRequired("user-a")
	cmd.MarkFlagRequired("user-b")

	return cmd
}

func newEnableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Enable row security on all protected tables",
		Long:  `Enable row security on every protected table. Connects as the schema owner.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, true)
		},
	}
}

func newDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable row security on all protected tables",
		Long: `Disable row security on every protected table, removing tenant isolation
entirely. Connects as the schema owner. For incident recovery only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, false)
		},
	}
}

// newInspector builds the inspector on the application role so the policies
// under inspection actually apply. With asOwner the schema owner credentials
// are used instead, which the enable/disable ALTERs require.
func newInspector(asOwner bool) (*rlsinfra.Inspector, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbCfg := &cfg.Database
	if asOwner {
		dbCfg = cfg.Database.Owner()
	}
	if err := database.Init(dbCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return rlsinfra.NewInspector(sqlDB, logger.NewLogger()), nil
}

func runToggle(cmd *cobra.Command, enabled bool) error {
	inspector, err := newInspector(true)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, table := range rlsinfra.ProtectedTables {
		if err := inspector.SetEnabled(cmd.Context(), table, enabled); err != nil {
			return err
		}
	}

	if enabled {
		fmt.Println("row security enabled on all protected tables")
	} else {
		fmt.Println("WARNING: row security disabled on all protected tables")
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	inspector, err := newInspector(false)
	if err != nil {
		return err
	}
	defer database.Close()

	status, err := inspector.Status(cmd.Context())
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(status))
	for t := range status {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	fmt.Printf("\nRow Security Status:\n")
	allEnabled := true
	for _, t := range tables {
		state := "enabled"
		if !status[t] {
			state = "DISABLED"
			allEnabled = false
		}
		fmt.Printf("  %-20s %s\n", t, state)
	}

	if !allEnabled {
		return fmt.Errorf("row security is disabled on at least one protected table")
	}
	return nil
}

func runPolicies(cmd *cobra.Command, args []string) error {
	inspector, err := newInspector(false)
	if err != nil {
		return err
	}
	defer database.Close()

	policies, err := inspector.ListPolicies(cmd.Context())
	if err != nil {
		return err
	}

	if len(policies) == 0 {
		fmt.Println("no row security policies found")
		return nil
	}

	fmt.Printf("\nActive Policies (%d):\n", len(policies))
	for _, p := range policies {
		fmt.Printf("\n  %s.%s [%s]\n", p.Table, p.Name, p.Command)
		if p.Using != "" {
			fmt.Printf("    USING      %s\n", p.Using)
		}
		if p.WithCheck != "" {
			fmt.Printf("    WITH CHECK %s\n", p.WithCheck)
		}
	}
	return nil
}

func runContext(cmd *cobra.Command, args []string) error {
	inspector, err := newInspector(false)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := cmd.Context()

	if asUser != "" || asRole != "" {
		conn, err := inspector.Conn(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := inspector.ForceBind(ctx, conn, asUser, asRole); err != nil {
			return err
		}
		defer func() {
			if err := inspector.Clear(ctx, conn); err != nil {
				fmt.Printf("WARNING: failed to clear forced context: %v\n", err)
			}
		}()

		fmt.Printf("\nForced Context (session-scoped, cleared on exit):\n")
		fmt.Printf("  app.current_user_id:   %q\n", asUser)
		fmt.Printf("  app.current_user_role: %q\n", asRole)
		return nil
	}

	rc, err := inspector.CurrentContext(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nBound Context (fresh pooled connection):\n")
	fmt.Printf("  app.current_user_id:   %q\n", rc.UserID)
	fmt.Printf("  app.current_user_role: %q\n", rc.Role)

	if rc.UserID != "" || rc.Role != "" {
		return fmt.Errorf("pooled connection carries stale context: a bind was not cleaned up")
	}
	fmt.Println("  pool is clean")
	return nil
}

func runTestIsolation(cmd *cobra.Command, args []string) error {
	inspector, err := newInspector(false)
	if err != nil {
		return err
	}
	defer database.Close()

	a := rlsinfra.Context{UserID: userA, Role: roleA}
	b := rlsinfra.Context{UserID: userB, Role: roleB}

	report, err := inspector.CompareVisibility(cmd.Context(), a, b, table)
	if err != nil {
		return err
	}

	fmt.Printf("\nIsolation Report: %s\n", report.Table)
	fmt.Printf("  context A (%s as %s): %d visible rows\n", userA, roleA, len(report.RowsA))
	fmt.Printf("  context B (%s as %s): %d visible rows\n", userB, roleB, len(report.RowsB))

	if report.Isolated {
		fmt.Println("  PASS: the two contexts see different row sets")
		return nil
	}

	fmt.Println("  FAIL: both contexts see the same rows")
	return fmt.Errorf("isolation check failed on table %s", table)
}
