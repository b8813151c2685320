package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	provideLogger)

func provideLogger(cfg *config.Config) *zap.Logger {
	return logger.New(cfg)
}
