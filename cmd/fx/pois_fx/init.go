package pois_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/repositories"
	"itinera/internal/services"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(
	providePoiProvider, providePoisService)

func providePoiProvider(cfg *config.Config, poiRepo repositories.POIRepository, cache mem.PoiListStore, log *zap.Logger) services.PoiProvider {
	var provider services.PoiProvider
	if cfg.PoiSource == config.PoiSourcePostgres {
		provider = services.NewRepositoryPoiProvider(poiRepo)
	} else {
		provider = services.NewDemoPoiProvider(time.Duration(cfg.PoiFetchDelayMs) * time.Millisecond)
	}

	if cache == nil {
		return provider
	}
	ttl := time.Duration(cfg.PoiCacheTTLMinute) * time.Minute
	return services.NewCachedPoiProvider(provider, cache, ttl, log)
}

func providePoisService(provider services.PoiProvider, poiRepo repositories.POIRepository, log *zap.Logger) services.POIServiceInterface {
	return services.NewPOIService(provider, poiRepo, log)
}
