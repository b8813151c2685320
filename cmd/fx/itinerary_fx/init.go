package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/domain/optimizer"
	"itinera/internal/geo"
	"itinera/internal/services"
)

var Module = fx.Provide(
	provideGenerator, provideItineraryService)

func provideGenerator() *optimizer.Generator {
	return optimizer.NewGenerator(geo.HaversineEstimator{})
}

func provideItineraryService(cfg *config.Config, provider services.PoiProvider, generator *optimizer.Generator, log *zap.Logger) services.ItineraryServiceInterface {
	limits := services.TripLimits{MinDays: cfg.MinTripDays, MaxDays: cfg.MaxTripDays}
	return services.NewItineraryService(provider, generator, limits, log)
}
