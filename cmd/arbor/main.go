package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbor-inc/arbor/internal/interfaces/cli/migrate"
	"github.com/arbor-inc/arbor/internal/interfaces/cli/rls"
	"github.com/arbor-inc/arbor/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Arbor - multi-tenant subscription platform",
		Long: `Arbor is a multi-tenant subscription management platform whose
tenant isolation is enforced by PostgreSQL row security policies.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		rls.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
