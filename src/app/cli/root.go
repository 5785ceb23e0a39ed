// Package cli defines the command-line entry points: serve (the default)
// and migrate. All settings come from APP_* environment variables.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running it with no subcommand serves the API.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "employeedir",
		Short: "Employee directory API",
		Long: `Employee directory API.

Without a subcommand the HTTP server is started. Configuration is read
from APP_* environment variables (APP_API_KEY, APP_DB_DRIVER, ...).`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
