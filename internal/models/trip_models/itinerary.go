package trip_models

type TripRequest struct {
	Country     string      `json:"country"`
	Days        int         `json:"days"`
	Preferences Preferences `json:"preferences"`
}

// TripTuning holds the planning parameters derived from pace and trip length.
type TripTuning struct {
	MaxPoisPerDay    int `json:"max_pois_per_day"`
	MinNightsPerStop int `json:"min_nights_per_stop"`
	MaxStops         int `json:"max_stops"`
}

type Stop struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Location LatLng `json:"location"`
	Nights   int    `json:"nights"`
	Pois     []Poi  `json:"pois"`
}

type Transfer struct {
	FromCity    string `json:"from_city"`
	ToCity      string `json:"to_city"`
	DistanceKm  int    `json:"distance_km"`
	DurationMin int    `json:"duration_min"`
}

type ItineraryDay struct {
	Day      int    `json:"day"`
	BaseCity string `json:"base_city"`
	Pois     []Poi  `json:"pois"`
}

type Itinerary struct {
	Country   string         `json:"country"`
	Days      int            `json:"days"`
	Stops     []Stop         `json:"stops"`
	Transfers []Transfer     `json:"transfers"`
	Plan      []ItineraryDay `json:"plan"`
}
