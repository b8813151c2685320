package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/models/trip_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

type POIServiceInterface interface {
	GetPoisByCountry(ctx context.Context, country string) (response_models.CountryPoisResponse, error)
	UpsertPoi(ctx context.Context, req request_models.UpsertPoiRequest) (trip_models.Poi, error)
	DeletePoi(ctx context.Context, id string) error
}

type countryInvalidator interface {
	Invalidate(ctx context.Context, country string)
}

type PoiService struct {
	provider PoiProvider
	// nil when POIs come from the demo dataset
	poiRepository repositories.POIRepository
	log           *zap.Logger
}

func NewPOIService(provider PoiProvider, poiRepository repositories.POIRepository, log *zap.Logger) POIServiceInterface {
	return &PoiService{
		provider:      provider,
		poiRepository: poiRepository,
		log:           log,
	}
}

func (p *PoiService) GetPoisByCountry(ctx context.Context, country string) (response_models.CountryPoisResponse, error) {
	if !validCountryName(country) {
		return response_models.CountryPoisResponse{}, utils.ErrInvalidCountry
	}

	pois, err := p.provider.FetchPoisByCountry(ctx, country)
	if err != nil {
		return response_models.CountryPoisResponse{}, asProviderFailure(err)
	}

	return response_models.CountryPoisResponse{
		Country: NormalizeCountry(country),
		Count:   len(pois),
		Pois:    pois,
	}, nil
}

func (p *PoiService) UpsertPoi(ctx context.Context, req request_models.UpsertPoiRequest) (trip_models.Poi, error) {
	if p.poiRepository == nil {
		return trip_models.Poi{}, utils.ErrCatalogReadOnly
	}

	tags, err := parseInterests(req.Tags, false)
	if err != nil {
		return trip_models.Poi{}, err
	}

	poi := trip_models.Poi{
		ID:          strings.TrimSpace(req.ID),
		Name:        strings.TrimSpace(req.Name),
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Location:    trip_models.LatLng{Lat: req.Latitude, Lng: req.Longitude},
		Tags:        tags,
		Popularity:  req.Popularity,
		DurationMin: req.DurationMin,
	}

	previous, err := p.poiRepository.GetBySlug(ctx, poi.ID)
	if err != nil {
		p.log.Error("Error fetching POI", zap.String("id", poi.ID), zap.Error(err))
		return trip_models.Poi{}, utils.ErrDatabaseError
	}

	row := db_models.POIFromTrip(poi)
	if err := p.poiRepository.UpsertPoi(ctx, &row); err != nil {
		p.log.Error("Error upserting POI", zap.String("id", poi.ID), zap.Error(err))
		return trip_models.Poi{}, utils.ErrDatabaseError
	}

	p.invalidate(ctx, poi.Country)
	if previous != nil && previous.CountryKey != row.CountryKey {
		p.invalidate(ctx, previous.Country)
	}
	p.log.Info("POI upserted", zap.String("id", poi.ID), zap.String("country", poi.Country))
	return poi, nil
}

func (p *PoiService) DeletePoi(ctx context.Context, id string) error {
	if p.poiRepository == nil {
		return utils.ErrCatalogReadOnly
	}

	existing, err := p.poiRepository.GetBySlug(ctx, id)
	if err != nil {
		p.log.Error("Error fetching POI", zap.String("id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPOINotFound
	}

	if err := p.poiRepository.DeleteBySlug(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPOINotFound
		}
		p.log.Error("Error deleting POI", zap.String("id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}

	p.invalidate(ctx, existing.Country)
	return nil
}

func (p *PoiService) invalidate(ctx context.Context, country string) {
	if inv, ok := p.provider.(countryInvalidator); ok {
		inv.Invalidate(ctx, country)
	}
}

// validCountryName requires at least two characters after trimming.
func validCountryName(country string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(country)) >= 2
}

func asProviderFailure(err error) error {
	if errors.Is(err, utils.ErrProviderFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", utils.ErrProviderFailure, err)
}

// parseInterests lower-cases, de-duplicates and validates interest names.
func parseInterests(raw []string, requireOne bool) ([]trip_models.Interest, error) {
	seen := make(map[trip_models.Interest]struct{}, len(raw))
	interests := make([]trip_models.Interest, 0, len(raw))
	for _, r := range raw {
		i := trip_models.Interest(strings.ToLower(strings.TrimSpace(r)))
		if !i.Valid() {
			return nil, fmt.Errorf("%w: unknown interest %q", utils.ErrInvalidInterests, r)
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		interests = append(interests, i)
	}
	if requireOne && len(interests) == 0 {
		return nil, fmt.Errorf("%w: select at least one interest", utils.ErrInvalidInterests)
	}
	return interests, nil
}
