package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"itinera/internal/models/trip_models"
	mem "itinera/pkg/memcache"
)

// CachedPoiProvider remembers non-empty lookups per normalized country.
// Empty results are not cached so newly catalogued countries show up at once.
type CachedPoiProvider struct {
	next  PoiProvider
	cache mem.PoiListStore
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedPoiProvider(next PoiProvider, cache mem.PoiListStore, ttl time.Duration, log *zap.Logger) *CachedPoiProvider {
	return &CachedPoiProvider{next: next, cache: cache, ttl: ttl, log: log}
}

func (c *CachedPoiProvider) FetchPoisByCountry(ctx context.Context, country string) ([]trip_models.Poi, error) {
	key := NormalizeCountry(country)
	if pois, ok := c.cache.Get(ctx, key); ok {
		c.log.Debug("POI cache hit", zap.String("country", key), zap.Int("count", len(pois)))
		return pois, nil
	}

	pois, err := c.next.FetchPoisByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	if len(pois) > 0 {
		c.cache.Set(ctx, key, pois, c.ttl)
	}
	return pois, nil
}

// Invalidate drops the cached list for a country.
func (c *CachedPoiProvider) Invalidate(ctx context.Context, country string) {
	c.cache.Delete(ctx, NormalizeCountry(country))
}
