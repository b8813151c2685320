// Package scoring ranks points of interest against traveler preferences.
package scoring

import (
	"math"

	"itinera/internal/models/trip_models"
)

const (
	popularityWeight = 0.6
	interestBonus    = 30

	// Activities longer than this are penalised for relaxed travelers and
	// shorter ones rewarded for fast travelers.
	paceDurationPivotMin = 150
	relaxedPenaltyPerMin = 0.08
	fastBonusPerMin      = 0.06
)

// ScorePoi returns how well a POI matches the preferences; higher is better.
// The result is rounded half away from zero and may be negative.
func ScorePoi(poi trip_models.Poi, prefs trip_models.Preferences) int {
	score := float64(poi.Popularity) * popularityWeight
	score += float64(countMatches(poi.Tags, prefs.Interests) * interestBonus)

	switch prefs.Pace {
	case trip_models.PaceRelaxed:
		score -= float64(max(0, poi.DurationMin-paceDurationPivotMin)) * relaxedPenaltyPerMin
	case trip_models.PaceFast:
		score += float64(max(0, paceDurationPivotMin-poi.DurationMin)) * fastBonusPerMin
	}

	return int(math.Round(score))
}

// countMatches counts distinct POI tags present in the interest set.
func countMatches(tags, interests []trip_models.Interest) int {
	if len(tags) == 0 || len(interests) == 0 {
		return 0
	}
	wanted := make(map[trip_models.Interest]struct{}, len(interests))
	for _, i := range interests {
		wanted[i] = struct{}{}
	}

	matches := 0
	seen := make(map[trip_models.Interest]struct{}, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if _, ok := wanted[tag]; ok {
			matches++
		}
	}
	return matches
}
