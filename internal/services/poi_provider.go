package services

import (
	"context"

	"itinera/internal/models/trip_models"
)

// PoiProvider returns the candidate POIs for a country. Unknown countries
// yield an empty list and a nil error.
type PoiProvider interface {
	FetchPoisByCountry(ctx context.Context, country string) ([]trip_models.Poi, error)
}

// NormalizeCountry returns the canonical lookup key for a country name.
func NormalizeCountry(name string) string {
	return trip_models.CountryKey(name)
}
