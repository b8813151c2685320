package optimizer

import (
	"fmt"
	"reflect"
	"testing"

	"itinera/internal/models/trip_models"
)

func colombiaPois() []trip_models.Poi {
	return []trip_models.Poi{
		{ID: "co-bog-1", Name: "La Candelaria", City: "Bogotá", Country: "Colombia", Location: trip_models.LatLng{Lat: 4.5981, Lng: -74.0758}, Tags: []trip_models.Interest{"culture", "history", "food"}, Popularity: 88, DurationMin: 150},
		{ID: "co-bog-2", Name: "Monserrate", City: "Bogotá", Country: "Colombia", Location: trip_models.LatLng{Lat: 4.6057, Lng: -74.0550}, Tags: []trip_models.Interest{"nature", "culture"}, Popularity: 92, DurationMin: 140},
		{ID: "co-med-1", Name: "Comuna 13", City: "Medellín", Country: "Colombia", Location: trip_models.LatLng{Lat: 6.2442, Lng: -75.5812}, Tags: []trip_models.Interest{"culture", "history", "nightlife"}, Popularity: 89, DurationMin: 150},
		{ID: "co-car-1", Name: "Walled City Walk", City: "Cartagena", Country: "Colombia", Location: trip_models.LatLng{Lat: 10.4236, Lng: -75.5253}, Tags: []trip_models.Interest{"culture", "history"}, Popularity: 91, DurationMin: 160},
		{ID: "co-sam-1", Name: "Santa Marta Beaches", City: "Santa Marta", Country: "Colombia", Location: trip_models.LatLng{Lat: 11.2408, Lng: -74.1990}, Tags: []trip_models.Interest{"nature", "relax", "adventure"}, Popularity: 83, DurationMin: 360},
	}
}

// densePois has many POIs per city and one id repeated across two cities.
func densePois() []trip_models.Poi {
	cities := []struct {
		name string
		lat  float64
	}{{"Alpha", 1}, {"Beta", 2}, {"Gamma", 3}, {"Delta", 4}, {"Epsilon", 5}, {"Zeta", 6}, {"Eta", 7}}

	tags := trip_models.AllInterests
	var pois []trip_models.Poi
	for ci, c := range cities {
		for i := 0; i < 6+ci; i++ {
			pois = append(pois, trip_models.Poi{
				ID:          fmt.Sprintf("%s-%d", c.name, i),
				Name:        fmt.Sprintf("%s sight %d", c.name, i),
				City:        c.name,
				Country:     "Testland",
				Location:    trip_models.LatLng{Lat: c.lat, Lng: float64(i) / 10},
				Tags:        []trip_models.Interest{tags[(ci+i)%len(tags)], tags[(ci+2*i)%len(tags)]},
				Popularity:  (37*ci + 53*i) % 101,
				DurationMin: 60 + (ci*45+i*30)%300,
			})
		}
	}
	shared := trip_models.Poi{ID: "shared", Name: "Border market", Country: "Testland", Location: trip_models.LatLng{Lat: 1.5}, Tags: []trip_models.Interest{"food"}, Popularity: 100, DurationMin: 90}
	a, b := shared, shared
	a.City, b.City = "Alpha", "Beta"
	return append(pois, a, b)
}

type fakeEstimator struct {
	calls int
	km    float64
	min   int
}

func (f *fakeEstimator) DistanceKm(a, b trip_models.LatLng) float64 {
	f.calls++
	return f.km
}

func (f *fakeEstimator) EstimateDurationMin(float64) int {
	return f.min
}

func ids(pois []trip_models.Poi) []string {
	out := make([]string, 0, len(pois))
	for _, p := range pois {
		out = append(out, p.ID)
	}
	return out
}

func TestGenerateItineraryBalancedTenDays(t *testing.T) {
	req := trip_models.TripRequest{
		Country: "Colombia",
		Days:    10,
		Preferences: trip_models.Preferences{
			Interests: []trip_models.Interest{"nature", "culture"},
			Pace:      trip_models.PaceBalanced,
		},
	}

	it := GenerateItinerary(req, colombiaPois())

	if it.Country != "Colombia" || it.Days != 10 {
		t.Fatalf("unexpected header: %s/%d", it.Country, it.Days)
	}

	wantCities := []string{"Bogotá", "Cartagena", "Medellín"}
	wantNights := []int{4, 3, 3}
	wantPois := [][]string{{"co-bog-2", "co-bog-1"}, {"co-car-1"}, {"co-med-1"}}
	if len(it.Stops) != len(wantCities) {
		t.Fatalf("expected %d stops, got %d", len(wantCities), len(it.Stops))
	}
	for i, stop := range it.Stops {
		if stop.City != wantCities[i] || stop.Nights != wantNights[i] {
			t.Errorf("stop %d: got %s/%d, want %s/%d", i, stop.City, stop.Nights, wantCities[i], wantNights[i])
		}
		if got := ids(stop.Pois); !reflect.DeepEqual(got, wantPois[i]) {
			t.Errorf("stop %d pois: got %v, want %v", i, got, wantPois[i])
		}
	}

	if loc := it.Stops[0].Location; loc.Lat != 4.6057 || loc.Lng != -74.0550 {
		t.Errorf("Bogotá should be located at its best POI, got %+v", loc)
	}

	if len(it.Transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(it.Transfers))
	}
	if it.Transfers[0].FromCity != "Bogotá" || it.Transfers[0].ToCity != "Cartagena" {
		t.Errorf("unexpected first transfer %+v", it.Transfers[0])
	}
	if it.Transfers[0].DistanceKm < 600 || it.Transfers[0].DistanceKm > 700 {
		t.Errorf("Bogotá-Cartagena should be roughly 650 km, got %d", it.Transfers[0].DistanceKm)
	}

	wantPlan := [][]string{
		{"co-bog-2", "co-bog-1"}, {}, {}, {},
		{"co-car-1"}, {}, {},
		{"co-med-1"}, {}, {},
	}
	if len(it.Plan) != len(wantPlan) {
		t.Fatalf("expected %d plan days, got %d", len(wantPlan), len(it.Plan))
	}
	for i, day := range it.Plan {
		if day.Day != i+1 {
			t.Errorf("plan[%d].Day = %d", i, day.Day)
		}
		if got := ids(day.Pois); !reflect.DeepEqual(got, wantPlan[i]) {
			t.Errorf("day %d pois: got %v, want %v", day.Day, got, wantPlan[i])
		}
	}
}

func TestGenerateItineraryRelaxedShortTripCollapsesToOneStop(t *testing.T) {
	req := trip_models.TripRequest{
		Country: "Colombia",
		Days:    5,
		Preferences: trip_models.Preferences{
			Interests: []trip_models.Interest{"nature", "culture"},
			Pace:      trip_models.PaceRelaxed,
		},
	}

	it := GenerateItinerary(req, colombiaPois())

	if len(it.Stops) != 1 {
		t.Fatalf("expected a single stop, got %d", len(it.Stops))
	}
	if it.Stops[0].City != "Bogotá" || it.Stops[0].Nights != 5 {
		t.Fatalf("unexpected stop %s/%d", it.Stops[0].City, it.Stops[0].Nights)
	}
	if len(it.Transfers) != 0 {
		t.Fatalf("expected no transfers, got %d", len(it.Transfers))
	}
	if got := ids(it.Plan[0].Pois); !reflect.DeepEqual(got, []string{"co-bog-2", "co-bog-1"}) {
		t.Fatalf("day 1 pois: %v", got)
	}
}

func TestGenerateUsesEstimatorOncePerLeg(t *testing.T) {
	est := &fakeEstimator{km: 1234.4, min: 99}
	g := NewGenerator(est)

	req := trip_models.TripRequest{
		Country:     "Testland",
		Days:        20,
		Preferences: trip_models.Preferences{Pace: trip_models.PaceFast},
	}
	it := g.Generate(req, densePois())

	if len(it.Stops) != 6 {
		t.Fatalf("expected 6 stops for a 20 day fast trip, got %d", len(it.Stops))
	}
	if est.calls != len(it.Stops)-1 {
		t.Fatalf("expected %d estimator calls, got %d", len(it.Stops)-1, est.calls)
	}
	for _, tr := range it.Transfers {
		if tr.DistanceKm != 1234 || tr.DurationMin != 99 {
			t.Fatalf("unexpected transfer %+v", tr)
		}
	}
}

func TestGenerateEmptyPois(t *testing.T) {
	it := GenerateItinerary(trip_models.TripRequest{Country: "Nowhere", Days: 4}, nil)
	if len(it.Stops) != 0 || len(it.Transfers) != 0 || len(it.Plan) != 0 {
		t.Fatalf("expected an empty itinerary, got %+v", it)
	}
	if it.Stops == nil || it.Transfers == nil || it.Plan == nil {
		t.Fatal("empty itinerary should carry empty, non-nil slices")
	}
}

func TestGenerateClampsDays(t *testing.T) {
	it := GenerateItinerary(trip_models.TripRequest{Country: "Colombia", Days: 0}, colombiaPois())
	if it.Days != 1 || len(it.Plan) != 1 || len(it.Stops) != 1 || it.Stops[0].Nights != 1 {
		t.Fatalf("expected a one day itinerary, got days=%d plan=%d stops=%d", it.Days, len(it.Plan), len(it.Stops))
	}
}

func TestGenerateInvariants(t *testing.T) {
	interestSets := [][]trip_models.Interest{
		nil,
		{"nature", "culture"},
		{"food", "nightlife", "adventure"},
		trip_models.AllInterests,
	}
	datasets := map[string][]trip_models.Poi{
		"colombia": colombiaPois(),
		"dense":    densePois(),
	}

	for name, pois := range datasets {
		for _, pace := range trip_models.AllPaces {
			for _, interests := range interestSets {
				for days := 1; days <= 30; days++ {
					req := trip_models.TripRequest{
						Country:     name,
						Days:        days,
						Preferences: trip_models.Preferences{Interests: interests, Pace: pace},
					}
					it := GenerateItinerary(req, pois)
					label := fmt.Sprintf("%s/%s/%v/%d", name, pace, interests, days)
					checkInvariants(t, label, it, DeriveTuning(req.Preferences, days))

					if again := GenerateItinerary(req, pois); !reflect.DeepEqual(it, again) {
						t.Fatalf("%s: generation is not deterministic", label)
					}
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, label string, it trip_models.Itinerary, tuning trip_models.TripTuning) {
	t.Helper()

	if len(it.Stops) == 0 {
		t.Fatalf("%s: no stops", label)
	}
	if len(it.Stops) > tuning.MaxStops {
		t.Fatalf("%s: %d stops exceed max %d", label, len(it.Stops), tuning.MaxStops)
	}

	nights := 0
	seen := make(map[string]string)
	for _, stop := range it.Stops {
		if stop.Nights < 1 {
			t.Fatalf("%s: stop %s has %d nights", label, stop.City, stop.Nights)
		}
		nights += stop.Nights
		if len(stop.Pois) > stop.Nights*tuning.MaxPoisPerDay {
			t.Fatalf("%s: stop %s over capacity", label, stop.City)
		}
		for _, p := range stop.Pois {
			if other, dup := seen[p.ID]; dup {
				t.Fatalf("%s: poi %s assigned to %s and %s", label, p.ID, other, stop.City)
			}
			seen[p.ID] = stop.City
		}
	}
	if nights != it.Days {
		t.Fatalf("%s: nights sum %d != days %d", label, nights, it.Days)
	}
	if len(it.Transfers) != len(it.Stops)-1 {
		t.Fatalf("%s: %d transfers for %d stops", label, len(it.Transfers), len(it.Stops))
	}
	if len(it.Plan) != it.Days {
		t.Fatalf("%s: plan has %d days, want %d", label, len(it.Plan), it.Days)
	}

	planned := 0
	for i, day := range it.Plan {
		if day.Day != i+1 {
			t.Fatalf("%s: day counter %d at index %d", label, day.Day, i)
		}
		if len(day.Pois) > tuning.MaxPoisPerDay {
			t.Fatalf("%s: day %d has %d pois", label, day.Day, len(day.Pois))
		}
		for _, p := range day.Pois {
			if seen[p.ID] != day.BaseCity {
				t.Fatalf("%s: day %d visits %s outside base %s", label, day.Day, p.ID, day.BaseCity)
			}
		}
		planned += len(day.Pois)
	}
	if planned != len(seen) {
		t.Fatalf("%s: plan visits %d pois, stops hold %d", label, planned, len(seen))
	}
}

func TestPickTopCities(t *testing.T) {
	scored := []trip_models.ScoredPoi{
		{Poi: trip_models.Poi{ID: "a1", City: "Solo", Country: "X"}, Score: 100},
		{Poi: trip_models.Poi{ID: "b1", City: "Pair", Country: "X"}, Score: 50},
		{Poi: trip_models.Poi{ID: "b2", City: "PAIR", Country: "x"}, Score: 50},
		{Poi: trip_models.Poi{ID: "c1", City: "Low", Country: "X"}, Score: 10},
	}

	got := pickTopCities(scored, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(got))
	}
	if got[0].city != "Pair" || got[1].city != "Solo" {
		t.Fatalf("expected Pair before Solo on POI count, got %s, %s", got[0].city, got[1].city)
	}

	if got := pickTopCities(scored, 0); len(got) != 1 {
		t.Fatalf("maxStops 0 should still yield one city, got %d", len(got))
	}
	if got := pickTopCities(nil, 3); len(got) != 0 {
		t.Fatalf("expected no cities for no POIs, got %d", len(got))
	}
}

func TestFirstDistinctCities(t *testing.T) {
	got := firstDistinctCities(colombiaPois(), 2)
	if len(got) != 2 || got[0].city != "Bogotá" || got[1].city != "Medellín" {
		t.Fatalf("unexpected fallback cities %+v", got)
	}
}

func TestDistributeDaysIntoStops(t *testing.T) {
	cities := []cityRef{{key: "a", city: "A"}, {key: "b", city: "B"}, {key: "c", city: "C"}}

	tests := []struct {
		name      string
		days      int
		minNights int
		want      []int
	}{
		{"remainder goes to the first stop", 10, 3, []int{4, 3, 3}},
		{"even split", 9, 3, []int{3, 3, 3}},
		{"round robin surplus", 11, 1, []int{4, 4, 3}},
		{"tail stops dropped", 7, 3, []int{4, 3}},
		{"single stop shorter than minimum", 2, 3, []int{2}},
		{"zero minimum treated as one", 3, 0, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops := distributeDaysIntoStops(cities, tt.days, tt.minNights)
			got := make([]int, 0, len(stops))
			for i, s := range stops {
				got = append(got, s.Nights)
				if s.City != cities[i].city {
					t.Fatalf("stop %d is %s, ranking order not preserved", i, s.City)
				}
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("nights = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignPoisCityWithoutMatches(t *testing.T) {
	stops := distributeDaysIntoStops([]cityRef{{key: cityKey("Colombia", "Leticia"), city: "Leticia", country: "Colombia"}}, 3, 1)
	scored := scorePois(colombiaPois(), trip_models.Preferences{Pace: trip_models.PaceBalanced})

	out := assignPois(stops, scored, 3)

	if len(out) != 1 {
		t.Fatalf("expected one stop, got %d", len(out))
	}
	if out[0].Location != (trip_models.LatLng{}) {
		t.Fatalf("expected placeholder location, got %+v", out[0].Location)
	}
	if out[0].Pois == nil || len(out[0].Pois) != 0 {
		t.Fatalf("expected an empty POI list, got %v", out[0].Pois)
	}
}

func TestAssignPoisEarlierStopsClaimFirst(t *testing.T) {
	scored := scorePois(densePois(), trip_models.Preferences{Interests: []trip_models.Interest{"food"}})
	stops := []trip_models.Stop{
		{City: "Beta", Country: "Testland", Nights: 1},
		{City: "Alpha", Country: "Testland", Nights: 1},
	}

	out := assignPois(stops, scored, 3)

	if out[0].Pois[0].ID != "shared" {
		t.Fatalf("Beta should claim the shared POI first, got %v", ids(out[0].Pois))
	}
	for _, p := range out[1].Pois {
		if p.ID == "shared" {
			t.Fatal("shared POI assigned twice")
		}
	}
	if stops[0].Pois != nil {
		t.Fatal("input stops must not be mutated")
	}
}
