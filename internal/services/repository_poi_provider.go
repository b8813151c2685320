package services

import (
	"context"
	"fmt"

	"itinera/internal/models/trip_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

// RepositoryPoiProvider reads POIs from the Postgres catalog.
type RepositoryPoiProvider struct {
	poiRepository repositories.POIRepository
}

func NewRepositoryPoiProvider(poiRepository repositories.POIRepository) *RepositoryPoiProvider {
	return &RepositoryPoiProvider{poiRepository: poiRepository}
}

func (r *RepositoryPoiProvider) FetchPoisByCountry(ctx context.Context, country string) ([]trip_models.Poi, error) {
	rows, err := r.poiRepository.ListByCountry(ctx, NormalizeCountry(country))
	if err != nil {
		return nil, fmt.Errorf("%w: list pois for %q: %w", utils.ErrProviderFailure, country, err)
	}

	pois := make([]trip_models.Poi, 0, len(rows))
	for _, row := range rows {
		pois = append(pois, row.ToTripPoi())
	}
	return pois, nil
}
