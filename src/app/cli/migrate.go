package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"employeedir/src/infra/config"
	"employeedir/src/infra/db"
	"employeedir/src/infra/logger"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Manage the database schema and seed data.

Available subcommands:
  up     - Apply all pending migrations
  down   - Roll back the most recent migration
  status - List migrations and whether they are applied`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(cmd *cobra.Command, m *db.Migrator) error {
			return m.Up(cmd.Context())
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(cmd *cobra.Command, m *db.Migrator) error {
			return m.Down(cmd.Context())
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE:  withMigrator(printStatus),
	})

	return cmd
}

// withMigrator opens the configured store for the duration of fn.
func withMigrator(fn func(cmd *cobra.Command, m *db.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadStorage()
		if err != nil {
			return err
		}
		log := logger.New(cfg.Log)

		st, err := openStore(cmd.Context(), cfg.Database, log)
		if err != nil {
			return err
		}
		defer st.Close()

		m, err := st.migrator(log)
		if err != nil {
			return err
		}
		return fn(cmd, m)
	}
}

func printStatus(cmd *cobra.Command, m *db.Migrator) error {
	states, err := m.Status(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tMIGRATION\tSTATE\tAPPLIED AT")
	for _, s := range states {
		state, appliedAt := "pending", "-"
		if s.Applied {
			state = "applied"
			appliedAt = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Version, s.Path, state, appliedAt)
	}
	return w.Flush()
}
