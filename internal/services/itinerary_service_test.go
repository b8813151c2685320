package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"itinera/internal/domain/optimizer"
	"itinera/internal/models/request_models"
	"itinera/internal/models/trip_models"
	"itinera/pkg/utils"
)

func newTestItineraryService(provider PoiProvider) ItineraryServiceInterface {
	return NewItineraryService(provider, optimizer.NewGenerator(nil), TripLimits{MinDays: 3, MaxDays: 30}, zap.NewNop())
}

func TestGenerateItineraryValidation(t *testing.T) {
	svc := newTestItineraryService(NewDemoPoiProvider(0))

	tests := []struct {
		name string
		req  request_models.GenerateItineraryRequest
		want error
	}{
		{"short country", request_models.GenerateItineraryRequest{Country: " C ", Days: 5}, utils.ErrInvalidCountry},
		{"too few days", request_models.GenerateItineraryRequest{Country: "Colombia", Days: 2}, utils.ErrInvalidTripLength},
		{"too many days", request_models.GenerateItineraryRequest{Country: "Colombia", Days: 31}, utils.ErrInvalidTripLength},
		{"bad pace", request_models.GenerateItineraryRequest{
			Country: "Colombia", Days: 5,
			Preferences: &request_models.PreferencesRequest{Interests: []string{"food"}, Pace: "sprint"},
		}, utils.ErrInvalidPace},
		{"no interests", request_models.GenerateItineraryRequest{
			Country: "Colombia", Days: 5,
			Preferences: &request_models.PreferencesRequest{Pace: "fast"},
		}, utils.ErrInvalidInterests},
		{"unknown interest", request_models.GenerateItineraryRequest{
			Country: "Colombia", Days: 5,
			Preferences: &request_models.PreferencesRequest{Interests: []string{"shopping"}},
		}, utils.ErrInvalidInterests},
		{"no pois", request_models.GenerateItineraryRequest{Country: "Atlantis", Days: 5}, utils.ErrNoPoisFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateItinerary(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateItineraryProviderFailure(t *testing.T) {
	svc := newTestItineraryService(&stubProvider{err: errBoom})

	_, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{Country: "Colombia", Days: 5})
	if !errors.Is(err, utils.ErrProviderFailure) || !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped provider failure, got %v", err)
	}
}

func TestGenerateItineraryDefaults(t *testing.T) {
	svc := newTestItineraryService(NewDemoPoiProvider(0))

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{Country: "  Colombia ", Days: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Preferences.Pace != trip_models.PaceBalanced || len(resp.Preferences.Interests) != 2 {
		t.Fatalf("expected default preferences, got %+v", resp.Preferences)
	}
	if resp.Preferences.MaxPoisPerDay != resp.Tuning.MaxPoisPerDay || resp.Tuning.MaxPoisPerDay != 5 {
		t.Fatalf("max pois per day not written back: prefs %d tuning %d", resp.Preferences.MaxPoisPerDay, resp.Tuning.MaxPoisPerDay)
	}

	it := resp.Itinerary
	if it.Country != "Colombia" || it.Days != 10 || len(it.Plan) != 10 {
		t.Fatalf("unexpected itinerary header %q days=%d plan=%d", it.Country, it.Days, len(it.Plan))
	}
	nights := 0
	for _, s := range it.Stops {
		nights += s.Nights
	}
	if nights != 10 {
		t.Fatalf("nights add up to %d, want 10", nights)
	}
	if len(it.Transfers) != len(it.Stops)-1 {
		t.Fatalf("expected %d transfers, got %d", len(it.Stops)-1, len(it.Transfers))
	}
}

func TestGenerateItineraryRelaxed(t *testing.T) {
	svc := newTestItineraryService(NewDemoPoiProvider(0))

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		Country: "kolumbien",
		Days:    5,
		Preferences: &request_models.PreferencesRequest{
			Interests: []string{"Culture", "history", "culture"},
			Pace:      "RELAXED",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Preferences.Interests) != 2 {
		t.Fatalf("duplicate interests were kept: %v", resp.Preferences.Interests)
	}
	if resp.Preferences.MaxPoisPerDay != 2 {
		t.Fatalf("expected 2 pois per day, got %d", resp.Preferences.MaxPoisPerDay)
	}
	if len(resp.Itinerary.Stops) != 1 || resp.Itinerary.Stops[0].Nights != 5 {
		t.Fatalf("expected one 5-night stop, got %+v", resp.Itinerary.Stops)
	}
}

func TestPreviewTuning(t *testing.T) {
	svc := newTestItineraryService(NewDemoPoiProvider(0))

	tuning, err := svc.PreviewTuning("", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := trip_models.TripTuning{MaxStops: 3, MinNightsPerStop: 2, MaxPoisPerDay: 5}
	if tuning != want {
		t.Fatalf("expected %+v, got %+v", want, tuning)
	}

	if _, err := svc.PreviewTuning("slow", 10); !errors.Is(err, utils.ErrInvalidPace) {
		t.Fatalf("expected ErrInvalidPace, got %v", err)
	}
	if _, err := svc.PreviewTuning("fast", 1); !errors.Is(err, utils.ErrInvalidTripLength) {
		t.Fatalf("expected ErrInvalidTripLength, got %v", err)
	}
}

func TestVocabulary(t *testing.T) {
	v := newTestItineraryService(nil).Vocabulary()
	if len(v.Interests) != 7 || len(v.Paces) != 3 || v.MinDays != 3 || v.MaxDays != 30 {
		t.Fatalf("unexpected vocabulary %+v", v)
	}
}
