package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	PoiSourceDemo     = "demo"
	PoiSourcePostgres = "postgres"

	PoiCacheNone   = "none"
	PoiCacheMemory = "memory"
	PoiCacheRedis  = "redis"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text

	// POI catalog
	PoiSource         string `env:"POI_SOURCE" envDefault:"demo"` // demo, postgres
	PoiFetchDelayMs   int    `env:"POI_FETCH_DELAY_MS" envDefault:"350"`
	SeedDemoCatalog   bool   `env:"SEED_DEMO_CATALOG" envDefault:"true"`
	PostgresURL       string `env:"POSTGRES_URL"`
	PoiCache          string `env:"POI_CACHE" envDefault:"none"` // none, memory, redis
	PoiCacheTTLMinute int    `env:"POI_CACHE_TTL_MINUTES" envDefault:"30"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"itinera"`

	JWTSecret string `env:"JWT_SECRET"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`

	MinTripDays int `env:"MIN_TRIP_DAYS" envDefault:"3"`
	MaxTripDays int `env:"MAX_TRIP_DAYS" envDefault:"30"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.PoiSource = strings.ToLower(c.PoiSource)
	c.PoiCache = strings.ToLower(c.PoiCache)

	switch c.PoiSource {
	case PoiSourceDemo:
	case PoiSourcePostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required when POI_SOURCE=%s", PoiSourcePostgres)
		}
	default:
		return fmt.Errorf("unsupported POI_SOURCE %q (use demo or postgres)", c.PoiSource)
	}

	switch c.PoiCache {
	case PoiCacheNone, PoiCacheMemory, PoiCacheRedis:
	default:
		return fmt.Errorf("unsupported POI_CACHE %q (use none, memory or redis)", c.PoiCache)
	}

	if c.MinTripDays < 1 || c.MaxTripDays < c.MinTripDays {
		return fmt.Errorf("invalid trip length bounds %d..%d", c.MinTripDays, c.MaxTripDays)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}
