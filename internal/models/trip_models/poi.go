package trip_models

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Poi is a point of interest as supplied by a provider. Popularity is 0..100.
type Poi struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Location    LatLng     `json:"location"`
	Tags        []Interest `json:"tags"`
	Popularity  int        `json:"popularity"`
	DurationMin int        `json:"duration_min"`
}

type ScoredPoi struct {
	Poi   Poi
	Score int
}
