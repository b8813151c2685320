package services

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"itinera/internal/models/db_models"
	"itinera/internal/models/trip_models"
)

type stubProvider struct {
	mu    sync.Mutex
	pois  map[string][]trip_models.Poi
	err   error
	calls int
}

func (s *stubProvider) FetchPoisByCountry(_ context.Context, country string) ([]trip_models.Poi, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pois[NormalizeCountry(country)], nil
}

// fakePOIRepository keeps rows in insertion order in memory.
type fakePOIRepository struct {
	rows    []db_models.POI
	listErr error
	saveErr error
}

func (f *fakePOIRepository) ListByCountry(_ context.Context, country string) ([]db_models.POI, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []db_models.POI
	for _, r := range f.rows {
		if r.CountryKey == country {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePOIRepository) GetBySlug(_ context.Context, slug string) (*db_models.POI, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	for i := range f.rows {
		if f.rows[i].Slug == slug {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakePOIRepository) UpsertPoi(_ context.Context, poi *db_models.POI) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range f.rows {
		if f.rows[i].Slug == poi.Slug {
			f.rows[i] = *poi
			return nil
		}
	}
	f.rows = append(f.rows, *poi)
	return nil
}

func (f *fakePOIRepository) DeleteBySlug(_ context.Context, slug string) error {
	for i := range f.rows {
		if f.rows[i].Slug == slug {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePOIRepository) Count(context.Context) (int64, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	return int64(len(f.rows)), nil
}

func (f *fakePOIRepository) CreateBatch(_ context.Context, pois []db_models.POI) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows = append(f.rows, pois...)
	return nil
}

var errBoom = errors.New("boom")
