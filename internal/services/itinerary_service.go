package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"itinera/internal/domain/optimizer"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/models/trip_models"
	"itinera/pkg/utils"
)

// TripLimits bounds the trip lengths accepted from callers.
type TripLimits struct {
	MinDays int
	MaxDays int
}

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.ItineraryResponse, error)
	PreviewTuning(pace string, days int) (trip_models.TripTuning, error)
	Vocabulary() response_models.VocabularyResponse
}

type ItineraryService struct {
	provider  PoiProvider
	generator *optimizer.Generator
	limits    TripLimits
	log       *zap.Logger
}

func NewItineraryService(provider PoiProvider, generator *optimizer.Generator, limits TripLimits, log *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		provider:  provider,
		generator: generator,
		limits:    limits,
		log:       log,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.ItineraryResponse, error) {
	tripReq, err := s.buildTripRequest(req)
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}

	pois, err := s.provider.FetchPoisByCountry(ctx, tripReq.Country)
	if err != nil {
		return response_models.ItineraryResponse{}, asProviderFailure(err)
	}
	if len(pois) == 0 {
		return response_models.ItineraryResponse{}, utils.ErrNoPoisFound
	}

	tuning := optimizer.DeriveTuning(tripReq.Preferences, tripReq.Days)
	tripReq.Preferences.MaxPoisPerDay = tuning.MaxPoisPerDay

	itinerary := s.generator.Generate(tripReq, pois)

	s.log.Info("Itinerary generated",
		zap.String("country", tripReq.Country),
		zap.Int("days", tripReq.Days),
		zap.String("pace", string(tripReq.Preferences.Pace)),
		zap.Int("candidate_pois", len(pois)),
		zap.Int("stops", len(itinerary.Stops)),
	)

	return response_models.ItineraryResponse{
		Tuning:      tuning,
		Preferences: tripReq.Preferences,
		Itinerary:   itinerary,
	}, nil
}

func (s *ItineraryService) PreviewTuning(pace string, days int) (trip_models.TripTuning, error) {
	p, err := parsePace(pace)
	if err != nil {
		return trip_models.TripTuning{}, err
	}
	if err := s.checkDays(days); err != nil {
		return trip_models.TripTuning{}, err
	}
	return optimizer.DeriveTuning(trip_models.Preferences{Pace: p}, days), nil
}

func (s *ItineraryService) Vocabulary() response_models.VocabularyResponse {
	return response_models.VocabularyResponse{
		Interests: trip_models.AllInterests,
		Paces:     trip_models.AllPaces,
		MinDays:   s.limits.MinDays,
		MaxDays:   s.limits.MaxDays,
	}
}

func (s *ItineraryService) buildTripRequest(req request_models.GenerateItineraryRequest) (trip_models.TripRequest, error) {
	country := strings.TrimSpace(req.Country)
	if !validCountryName(country) {
		return trip_models.TripRequest{}, utils.ErrInvalidCountry
	}
	if err := s.checkDays(req.Days); err != nil {
		return trip_models.TripRequest{}, err
	}

	prefs := trip_models.DefaultPreferences()
	if req.Preferences != nil {
		pace, err := parsePace(req.Preferences.Pace)
		if err != nil {
			return trip_models.TripRequest{}, err
		}
		interests, err := parseInterests(req.Preferences.Interests, true)
		if err != nil {
			return trip_models.TripRequest{}, err
		}
		prefs.Pace = pace
		prefs.Interests = interests
	}

	return trip_models.TripRequest{Country: country, Days: req.Days, Preferences: prefs}, nil
}

func (s *ItineraryService) checkDays(days int) error {
	if days < s.limits.MinDays || days > s.limits.MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d", utils.ErrInvalidTripLength, s.limits.MinDays, s.limits.MaxDays)
	}
	return nil
}

// parsePace accepts the three pace names in any case; empty means balanced.
func parsePace(raw string) (trip_models.Pace, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return trip_models.PaceBalanced, nil
	}
	p := trip_models.Pace(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", utils.ErrInvalidPace, raw)
	}
	return p, nil
}
