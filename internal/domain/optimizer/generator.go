// Package optimizer turns scored POIs into a multi-stop itinerary.
package optimizer

import (
	"math"
	"sort"
	"strings"

	"itinera/internal/domain/scoring"
	"itinera/internal/geo"
	"itinera/internal/models/trip_models"
)

// fallbackCityLimit caps the cities picked straight from raw POIs when no
// ranked city group exists.
const fallbackCityLimit = 2

// RouteEstimator measures the leg between two stops.
type RouteEstimator interface {
	DistanceKm(a, b trip_models.LatLng) float64
	EstimateDurationMin(distanceKm float64) int
}

// Generator runs the single-pass itinerary pipeline. It holds no per-call
// state and is safe for concurrent use.
type Generator struct {
	estimator RouteEstimator
}

// NewGenerator returns a generator using estimator for transfers; nil selects
// the haversine estimator.
func NewGenerator(estimator RouteEstimator) *Generator {
	if estimator == nil {
		estimator = geo.HaversineEstimator{}
	}
	return &Generator{estimator: estimator}
}

// GenerateItinerary builds an itinerary with the default haversine estimator.
func GenerateItinerary(req trip_models.TripRequest, pois []trip_models.Poi) trip_models.Itinerary {
	return NewGenerator(nil).Generate(req, pois)
}

// Generate runs tuning, scoring, city selection, day distribution, POI
// assignment, transfers and the day plan, in that order.
func (g *Generator) Generate(req trip_models.TripRequest, pois []trip_models.Poi) trip_models.Itinerary {
	days := max(1, req.Days)
	tuning := DeriveTuning(req.Preferences, days)

	scored := scorePois(pois, req.Preferences)

	cities := pickTopCities(scored, tuning.MaxStops)
	if len(cities) == 0 {
		cities = firstDistinctCities(pois, fallbackCityLimit)
	}

	stops := distributeDaysIntoStops(cities, days, tuning.MinNightsPerStop)
	stops = assignPois(stops, scored, tuning.MaxPoisPerDay)

	return trip_models.Itinerary{
		Country:   req.Country,
		Days:      days,
		Stops:     stops,
		Transfers: g.buildTransfers(stops),
		Plan:      buildDayPlan(stops, tuning.MaxPoisPerDay),
	}
}

type cityRef struct {
	key     string
	city    string
	country string
}

type cityAggregate struct {
	ref        cityRef
	totalScore int
	count      int
}

func cityKey(country, city string) string {
	return strings.ToLower(country + "::" + city)
}

func cityRefOf(p trip_models.Poi) cityRef {
	return cityRef{key: cityKey(p.Country, p.City), city: p.City, country: p.Country}
}

// scorePois scores every POI and orders them best first. Equal scores keep
// provider order.
func scorePois(pois []trip_models.Poi, prefs trip_models.Preferences) []trip_models.ScoredPoi {
	scored := make([]trip_models.ScoredPoi, 0, len(pois))
	for _, p := range pois {
		scored = append(scored, trip_models.ScoredPoi{Poi: p, Score: scoring.ScorePoi(p, prefs)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// pickTopCities ranks cities by total score, then by POI count, and keeps at
// most maxStops of them (at least one).
func pickTopCities(scored []trip_models.ScoredPoi, maxStops int) []cityRef {
	index := make(map[string]int)
	var aggregates []cityAggregate

	for _, s := range scored {
		ref := cityRefOf(s.Poi)
		i, ok := index[ref.key]
		if !ok {
			i = len(aggregates)
			index[ref.key] = i
			aggregates = append(aggregates, cityAggregate{ref: ref})
		}
		aggregates[i].totalScore += s.Score
		aggregates[i].count++
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].totalScore != aggregates[j].totalScore {
			return aggregates[i].totalScore > aggregates[j].totalScore
		}
		return aggregates[i].count > aggregates[j].count
	})

	limit := min(len(aggregates), max(1, maxStops))
	cities := make([]cityRef, 0, limit)
	for _, a := range aggregates[:limit] {
		cities = append(cities, a.ref)
	}
	return cities
}

func firstDistinctCities(pois []trip_models.Poi, limit int) []cityRef {
	seen := make(map[string]struct{})
	var cities []cityRef
	for _, p := range pois {
		if len(cities) == limit {
			break
		}
		ref := cityRefOf(p)
		if _, ok := seen[ref.key]; ok {
			continue
		}
		seen[ref.key] = struct{}{}
		cities = append(cities, ref)
	}
	return cities
}

// distributeDaysIntoStops drops the lowest ranked cities until every stop can
// get minNights, then hands out the surplus one night at a time from the
// first stop. The nights always add up to days.
func distributeDaysIntoStops(cities []cityRef, days, minNights int) []trip_models.Stop {
	if len(cities) == 0 {
		return []trip_models.Stop{}
	}
	minNights = max(1, minNights)

	count := len(cities)
	for count > 1 && count*minNights > days {
		count--
	}

	floor := minNights
	if count*floor > days {
		// a single stop shorter than the minimum stay
		floor = days / count
	}

	stops := make([]trip_models.Stop, 0, count)
	for _, c := range cities[:count] {
		stops = append(stops, trip_models.Stop{
			City:    c.city,
			Country: c.country,
			Nights:  floor,
			Pois:    []trip_models.Poi{},
		})
	}

	remaining := days - count*floor
	for i := 0; remaining > 0; i = (i + 1) % count {
		stops[i].Nights++
		remaining--
	}
	return stops
}

// assignPois gives each stop, in order, its best unclaimed city POIs up to
// nights*maxPerDay. Earlier stops claim first; the claimed set lives only for
// this call.
func assignPois(stops []trip_models.Stop, scored []trip_models.ScoredPoi, maxPerDay int) []trip_models.Stop {
	claimed := make(map[string]struct{})
	out := make([]trip_models.Stop, 0, len(stops))

	for _, stop := range stops {
		cityPois := poisInCity(scored, cityKey(stop.Country, stop.City))
		if len(cityPois) > 0 {
			stop.Location = cityPois[0].Location
		}

		var picked []trip_models.Poi
		picked, claimed = claimPois(cityPois, stop.Nights*maxPerDay, claimed)
		stop.Pois = picked
		out = append(out, stop)
	}
	return out
}

func poisInCity(scored []trip_models.ScoredPoi, key string) []trip_models.Poi {
	var pois []trip_models.Poi
	for _, s := range scored {
		if cityKey(s.Poi.Country, s.Poi.City) == key {
			pois = append(pois, s.Poi)
		}
	}
	return pois
}

func claimPois(candidates []trip_models.Poi, capacity int, claimed map[string]struct{}) ([]trip_models.Poi, map[string]struct{}) {
	picked := make([]trip_models.Poi, 0, min(len(candidates), max(0, capacity)))
	for _, p := range candidates {
		if len(picked) >= capacity {
			break
		}
		if _, taken := claimed[p.ID]; taken {
			continue
		}
		claimed[p.ID] = struct{}{}
		picked = append(picked, p)
	}
	return picked, claimed
}

func (g *Generator) buildTransfers(stops []trip_models.Stop) []trip_models.Transfer {
	transfers := make([]trip_models.Transfer, 0, max(0, len(stops)-1))
	for i := 0; i+1 < len(stops); i++ {
		from, to := stops[i], stops[i+1]
		km := g.estimator.DistanceKm(from.Location, to.Location)
		transfers = append(transfers, trip_models.Transfer{
			FromCity:    from.City,
			ToCity:      to.City,
			DistanceKm:  int(math.Round(km)),
			DurationMin: g.estimator.EstimateDurationMin(km),
		})
	}
	return transfers
}

// buildDayPlan slices each stop's POIs into maxPerDay chunks, one per night,
// numbering days from 1 across the whole trip.
func buildDayPlan(stops []trip_models.Stop, maxPerDay int) []trip_models.ItineraryDay {
	var plan []trip_models.ItineraryDay
	day := 1
	for _, stop := range stops {
		for d := 0; d < stop.Nights; d++ {
			start := min(d*maxPerDay, len(stop.Pois))
			end := min(start+maxPerDay, len(stop.Pois))
			plan = append(plan, trip_models.ItineraryDay{
				Day:      day,
				BaseCity: stop.City,
				Pois:     append([]trip_models.Poi{}, stop.Pois[start:end]...),
			})
			day++
		}
	}
	if plan == nil {
		plan = []trip_models.ItineraryDay{}
	}
	return plan
}
