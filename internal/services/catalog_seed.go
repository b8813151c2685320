package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"itinera/internal/models/db_models"
	"itinera/internal/models/trip_models"
	"itinera/internal/repositories"
)

// SeedCatalog fills an empty catalog with pois and reports how many rows
// were written. A non-empty catalog is left untouched.
func SeedCatalog(ctx context.Context, repo repositories.POIRepository, pois []trip_models.Poi, log *zap.Logger) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	if n > 0 {
		log.Info("POI catalog already populated", zap.Int64("rows", n))
		return 0, nil
	}

	rows := make([]db_models.POI, 0, len(pois))
	for _, p := range pois {
		rows = append(rows, db_models.POIFromTrip(p))
	}
	if err := repo.CreateBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	log.Info("POI catalog seeded", zap.Int("rows", len(rows)))
	return len(rows), nil
}
