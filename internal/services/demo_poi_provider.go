package services

import (
	"context"
	"strings"
	"time"

	"itinera/internal/models/trip_models"
)

var demoPois = []trip_models.Poi{
	{
		ID:          "co-bog-1",
		Name:        "La Candelaria (Historic Quarter)",
		City:        "Bogotá",
		Country:     "Colombia",
		Location:    trip_models.LatLng{Lat: 4.5981, Lng: -74.0758},
		Tags:        []trip_models.Interest{trip_models.InterestCulture, trip_models.InterestHistory, trip_models.InterestFood},
		Popularity:  88,
		DurationMin: 150,
	},
	{
		ID:          "co-bog-2",
		Name:        "Monserrate Viewpoint",
		City:        "Bogotá",
		Country:     "Colombia",
		Location:    trip_models.LatLng{Lat: 4.6057, Lng: -74.0550},
		Tags:        []trip_models.Interest{trip_models.InterestNature, trip_models.InterestCulture},
		Popularity:  92,
		DurationMin: 140,
	},
	{
		ID:          "co-med-1",
		Name:        "Comuna 13 (Street Art & History)",
		City:        "Medellín",
		Country:     "Colombia",
		Location:    trip_models.LatLng{Lat: 6.2442, Lng: -75.5812},
		Tags:        []trip_models.Interest{trip_models.InterestCulture, trip_models.InterestHistory, trip_models.InterestNightlife},
		Popularity:  89,
		DurationMin: 150,
	},
	{
		ID:          "co-car-1",
		Name:        "Walled City Walk",
		City:        "Cartagena",
		Country:     "Colombia",
		Location:    trip_models.LatLng{Lat: 10.4236, Lng: -75.5253},
		Tags:        []trip_models.Interest{trip_models.InterestCulture, trip_models.InterestHistory},
		Popularity:  91,
		DurationMin: 160,
	},
	{
		ID:          "co-sam-1",
		Name:        "Beach / Nature Day (Santa Marta area)",
		City:        "Santa Marta",
		Country:     "Colombia",
		Location:    trip_models.LatLng{Lat: 11.2408, Lng: -74.1990},
		Tags:        []trip_models.Interest{trip_models.InterestNature, trip_models.InterestRelax, trip_models.InterestAdventure},
		Popularity:  83,
		DurationMin: 360,
	},
	{
		ID:          "br-rio-1",
		Name:        "Christ the Redeemer View",
		City:        "Rio de Janeiro",
		Country:     "Brazil",
		Location:    trip_models.LatLng{Lat: -22.9519, Lng: -43.2105},
		Tags:        []trip_models.Interest{trip_models.InterestCulture, trip_models.InterestHistory},
		Popularity:  95,
		DurationMin: 180,
	},
	{
		ID:          "br-rio-2",
		Name:        "Sugarloaf Mountain",
		City:        "Rio de Janeiro",
		Country:     "Brazil",
		Location:    trip_models.LatLng{Lat: -22.9486, Lng: -43.1566},
		Tags:        []trip_models.Interest{trip_models.InterestNature, trip_models.InterestAdventure},
		Popularity:  92,
		DurationMin: 160,
	},
	{
		ID:          "br-sp-1",
		Name:        "Avenida Paulista Walk",
		City:        "São Paulo",
		Country:     "Brazil",
		Location:    trip_models.LatLng{Lat: -23.5614, Lng: -46.6565},
		Tags:        []trip_models.Interest{trip_models.InterestCulture, trip_models.InterestFood},
		Popularity:  80,
		DurationMin: 140,
	},
	{
		ID:          "br-foz-1",
		Name:        "Iguazu Falls (Brazil side)",
		City:        "Foz do Iguaçu",
		Country:     "Brazil",
		Location:    trip_models.LatLng{Lat: -25.6953, Lng: -54.4367},
		Tags:        []trip_models.Interest{trip_models.InterestNature, trip_models.InterestAdventure},
		Popularity:  94,
		DurationMin: 300,
	},
	{
		ID:          "br-sal-1",
		Name:        "Pelourinho (Historic Center)",
		City:        "Salvador",
		Country:     "Brazil",
		Location:    trip_models.LatLng{Lat: -12.9718, Lng: -38.5108},
		Tags:        []trip_models.Interest{trip_models.InterestCulture, trip_models.InterestHistory},
		Popularity:  86,
		DurationMin: 160,
	},
}

// DemoPois returns a copy of the built-in demo dataset.
func DemoPois() []trip_models.Poi {
	out := make([]trip_models.Poi, len(demoPois))
	for i, p := range demoPois {
		p.Tags = append([]trip_models.Interest(nil), p.Tags...)
		out[i] = p
	}
	return out
}

// DemoPoiProvider serves the demo dataset after a fixed delay that stands in
// for network latency.
type DemoPoiProvider struct {
	delay time.Duration
}

func NewDemoPoiProvider(delay time.Duration) *DemoPoiProvider {
	return &DemoPoiProvider{delay: delay}
}

func (d *DemoPoiProvider) FetchPoisByCountry(ctx context.Context, country string) ([]trip_models.Poi, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	normalized := NormalizeCountry(country)
	pois := []trip_models.Poi{}
	for _, p := range DemoPois() {
		if strings.ToLower(p.Country) == normalized {
			pois = append(pois, p)
		}
	}
	return pois, nil
}
