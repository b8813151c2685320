package optimizer

import "itinera/internal/models/trip_models"

type paceProfile struct {
	maxPoisPerDay    int
	minNightsPerStop int
	maxStops         int
}

var paceProfiles = map[trip_models.Pace]paceProfile{
	trip_models.PaceRelaxed:  {maxPoisPerDay: 2, minNightsPerStop: 3, maxStops: 4},
	trip_models.PaceBalanced: {maxPoisPerDay: 3, minNightsPerStop: 2, maxStops: 5},
	trip_models.PaceFast:     {maxPoisPerDay: 4, minNightsPerStop: 1, maxStops: 6},
}

// DeriveTuning maps traveler intent to planning parameters. Unknown paces use
// the balanced profile.
func DeriveTuning(prefs trip_models.Preferences, days int) trip_models.TripTuning {
	profile, ok := paceProfiles[prefs.Pace]
	if !ok {
		profile = paceProfiles[trip_models.PaceBalanced]
	}

	// never more stops than days
	maxStops := min(profile.maxStops, max(1, days))

	// shorter trips get fewer stops; trips over two weeks keep the pace ceiling
	switch {
	case days <= 5:
		maxStops = min(maxStops, 2)
	case days <= 10:
		maxStops = min(maxStops, 3)
	case days <= 14:
		maxStops = min(maxStops, 4)
	}

	return trip_models.TripTuning{
		MaxPoisPerDay:    profile.maxPoisPerDay,
		MinNightsPerStop: profile.minNightsPerStop,
		MaxStops:         maxStops,
	}
}
