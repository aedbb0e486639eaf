package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jokecatalog/src/infra/db"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(cmd.Context(), func(m *db.Migrator) error {
					return m.Up(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(cmd.Context(), func(m *db.Migrator) error {
					return m.Down(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(cmd.Context(), func(m *db.Migrator) error {
					states, err := m.Status(cmd.Context())
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					for _, s := range states {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Fprintf(out, "%05d  %-8s %s\n", s.Version, state, s.File)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func (a *app) withMigrator(ctx context.Context, fn func(*db.Migrator) error) error {
	pg, err := db.New(ctx, a.cfg.Database, a.log)
	if err != nil {
		return err
	}
	defer pg.Close()

	m, err := db.NewMigrator(pg, a.log)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

func (a *app) migrateUp(ctx context.Context, pg *db.Postgres) error {
	m, err := db.NewMigrator(pg, a.log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}
