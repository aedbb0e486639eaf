package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jokecatalog/src/app/server"
	"jokecatalog/src/core/ports"
	"jokecatalog/src/infra/audit"
	"jokecatalog/src/infra/config"
	"jokecatalog/src/infra/db"
	"jokecatalog/src/infra/ident"
	"jokecatalog/src/infra/repo"
	"jokecatalog/src/infra/repo/memory"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	a.log.Info("starting application",
		"port", a.cfg.Server.Port,
		"log_level", a.cfg.Log.Level,
		"store", a.cfg.Store.Driver,
	)

	deps := server.Dependencies{
		Stamper: audit.NewStamper(audit.RealTimeProvider{}, a.cfg.Audit.DefaultActor),
		IDs:     ident.RandomGenerator{},
	}

	switch a.cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.New()
		deps.UnitOfWork = store
		deps.Health = map[string]ports.Repository{"store": store}

	case config.StoreDriverPostgres:
		pg, err := db.New(ctx, a.cfg.Database, a.log)
		if err != nil {
			return err
		}
		defer pg.Close()

		if a.cfg.Database.AutoMigrate {
			if err := a.migrateUp(ctx, pg); err != nil {
				return err
			}
		}
		deps.UnitOfWork = repo.NewPostgresUnitOfWork(pg.Pool, a.log)
		deps.Health = map[string]ports.Repository{"database": pg}

	default:
		return fmt.Errorf("unsupported store driver %q", a.cfg.Store.Driver)
	}

	// Run blocks until shutdown signal is received
	return server.New(a.cfg, a.log, deps).Run()
}
