package trip_models

type Interest string

const (
	InterestNature    Interest = "nature"
	InterestCulture   Interest = "culture"
	InterestFood      Interest = "food"
	InterestHistory   Interest = "history"
	InterestNightlife Interest = "nightlife"
	InterestAdventure Interest = "adventure"
	InterestRelax     Interest = "relax"
)

// AllInterests is the fixed interest vocabulary in display order.
var AllInterests = []Interest{
	InterestNature,
	InterestCulture,
	InterestFood,
	InterestHistory,
	InterestNightlife,
	InterestAdventure,
	InterestRelax,
}

func (i Interest) Valid() bool {
	for _, known := range AllInterests {
		if i == known {
			return true
		}
	}
	return false
}

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceBalanced Pace = "balanced"
	PaceFast     Pace = "fast"
)

var AllPaces = []Pace{PaceRelaxed, PaceBalanced, PaceFast}

func (p Pace) Valid() bool {
	return p == PaceRelaxed || p == PaceBalanced || p == PaceFast
}

type Preferences struct {
	Interests []Interest `json:"interests"`
	Pace      Pace       `json:"pace"`
	// MaxPoisPerDay mirrors the tuning value the itinerary was built with.
	MaxPoisPerDay int `json:"max_pois_per_day"`
}

// DefaultPreferences returns the preferences used when a request omits them.
func DefaultPreferences() Preferences {
	return Preferences{
		Interests:     []Interest{InterestNature, InterestCulture},
		Pace:          PaceBalanced,
		MaxPoisPerDay: 3,
	}
}
