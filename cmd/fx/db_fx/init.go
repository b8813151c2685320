package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/infra"
	"itinera/internal/repositories"
	"itinera/internal/services"
)

var Module = fx.Provide(
	providePoisRepo)

// providePoisRepo returns a nil repository when POIs come from the demo
// dataset; nothing downstream touches the database in that mode.
func providePoisRepo(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (repositories.POIRepository, error) {
	if cfg.PoiSource != config.PoiSourcePostgres {
		return nil, nil
	}
	db, err := infra.InitPostgresql(cfg.PostgresURL, log)
	if err != nil {
		return nil, err
	}
	repo := repositories.NewPOIRepository(db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.SeedDemoCatalog {
				return nil
			}
			_, err := services.SeedCatalog(ctx, repo, services.DemoPois(), log)
			return err
		},
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})

	return repo, nil
}
