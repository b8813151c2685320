package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"itinera/internal/models/trip_models"
)

const (
	EarthRadiusKm = 6371.0

	// MinTransferMinutes is the floor for any estimated transfer.
	MinTransferMinutes = 15

	groundSpeedKmh = 60.0
	airSpeedKmh    = 450.0
	airThresholdKm = 300.0
)

// DistanceKm returns the great-circle (haversine) distance between two points.
func DistanceKm(a, b trip_models.LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// EstimateDurationMin converts a distance into travel minutes: road speed
// below 300 km, flight speed from 300 km on, never less than 15 minutes.
func EstimateDurationMin(distanceKm float64) int {
	speed := groundSpeedKmh
	if distanceKm >= airThresholdKm {
		speed = airSpeedKmh
	}
	minutes := int(math.Round(distanceKm / speed * 60))
	return max(MinTransferMinutes, minutes)
}

// HaversineEstimator exposes DistanceKm and EstimateDurationMin as a value
// that can be handed to the itinerary generator.
type HaversineEstimator struct{}

func (HaversineEstimator) DistanceKm(a, b trip_models.LatLng) float64 {
	return DistanceKm(a, b)
}

func (HaversineEstimator) EstimateDurationMin(distanceKm float64) int {
	return EstimateDurationMin(distanceKm)
}
