// Package cli builds the jokecatalog command line.
//
//	jokecatalog                 serve the HTTP API (same as "serve")
//	jokecatalog serve           serve the HTTP API
//	jokecatalog migrate up      apply pending migrations
//	jokecatalog migrate down    roll back the latest migration
//	jokecatalog migrate status  list migrations
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"jokecatalog/src/infra/config"
	"jokecatalog/src/infra/logger"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "jokecatalog",
		Short:         "Joke catalog API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand(a), newMigrateCommand(a))
	return root
}
