package mem

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"itinera/internal/models/trip_models"
)

// RedisPoiLists stores POI lists as JSON under "<prefix>:pois:<key>".
// Redis errors are logged and reported as cache misses.
type RedisPoiLists struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

func NewRedisPoiLists(client *redis.Client, prefix string, log *zap.Logger) *RedisPoiLists {
	if prefix == "" {
		prefix = "itinera"
	}
	return &RedisPoiLists{client: client, prefix: prefix, log: log}
}

func (s *RedisPoiLists) key(k string) string {
	return strings.Join([]string{s.prefix, "pois", k}, ":")
}

func (s *RedisPoiLists) Get(ctx context.Context, key string) ([]trip_models.Poi, bool) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("Redis POI cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var pois []trip_models.Poi
	if err := json.Unmarshal(raw, &pois); err != nil {
		s.log.Warn("Redis POI cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return pois, true
}

func (s *RedisPoiLists) Set(ctx context.Context, key string, pois []trip_models.Poi, ttl time.Duration) {
	raw, err := json.Marshal(pois)
	if err != nil {
		s.log.Warn("Redis POI cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.client.Set(ctx, s.key(key), raw, ttl).Err(); err != nil {
		s.log.Warn("Redis POI cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RedisPoiLists) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.log.Warn("Redis POI cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
