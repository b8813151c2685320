// Package mem caches POI lookups keyed by normalized country.
package mem

import (
	"context"
	"sync"
	"time"

	"itinera/internal/models/trip_models"
)

type PoiListStore interface {
	// Get returns a copy of the cached list; ok is false when missing or expired.
	Get(ctx context.Context, key string) (pois []trip_models.Poi, ok bool)
	Set(ctx context.Context, key string, pois []trip_models.Poi, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type entry struct {
	pois      []trip_models.Poi
	expiresAt time.Time
}

type PoiLists struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewPoiLists() *PoiLists {
	return &PoiLists{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *PoiLists) Get(_ context.Context, key string) ([]trip_models.Poi, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// recheck: a concurrent Set may have refreshed the entry
		if cur, still := s.data[key]; still && s.now().After(cur.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return clonePois(e.pois), true
}

func (s *PoiLists) Set(_ context.Context, key string, pois []trip_models.Poi, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		pois:      clonePois(pois),
		expiresAt: s.now().Add(ttl),
	}
}

func (s *PoiLists) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func clonePois(pois []trip_models.Poi) []trip_models.Poi {
	out := make([]trip_models.Poi, len(pois))
	for i, p := range pois {
		p.Tags = append([]trip_models.Interest(nil), p.Tags...)
		out[i] = p
	}
	return out
}
