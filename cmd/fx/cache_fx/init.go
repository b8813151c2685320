package cache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/infra"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(providePoiListStore)

// providePoiListStore returns nil when POI caching is disabled.
func providePoiListStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.PoiListStore, error) {
	switch cfg.PoiCache {
	case config.PoiCacheMemory:
		return mem.NewPoiLists(), nil
	case config.PoiCacheRedis:
		client, err := infra.InitRedis(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Info("Closing Redis connection")
				return client.Close()
			},
		})
		return mem.NewRedisPoiLists(client, cfg.RedisPrefix, log), nil
	default:
		return nil, nil
	}
}
