// Package config loads postboard settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Cache backends accepted by CacheConfig.Type.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all settings, loaded from POSTBOARD_* variables.
type Config struct {
	BaseURL     string        `envconfig:"POSTBOARD_BASE_URL" default:"https://jsonplaceholder.typicode.com"`
	ItemsPath   string        `envconfig:"POSTBOARD_ITEMS_PATH" default:"/posts"`
	UsersPath   string        `envconfig:"POSTBOARD_USERS_PATH" default:"/users"`
	LimitParam  string        `envconfig:"POSTBOARD_LIMIT_PARAM" default:"_limit"`
	PostsLimit  int           `envconfig:"POSTBOARD_POSTS_LIMIT" default:"20"`
	Revalidate  time.Duration `envconfig:"POSTBOARD_REVALIDATE" default:"60s"`
	HTTPTimeout time.Duration `envconfig:"POSTBOARD_HTTP_TIMEOUT" default:"10s"`
	CardsFile   string        `envconfig:"POSTBOARD_CARDS_FILE" default:""`

	Cache     CacheConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// CacheConfig selects where fetched collections are kept.
type CacheConfig struct {
	Type          string `envconfig:"POSTBOARD_CACHE_TYPE" default:"memory"`
	RedisAddr     string `envconfig:"POSTBOARD_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"POSTBOARD_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"POSTBOARD_REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"POSTBOARD_REDIS_PREFIX" default:"postboard:fetch"`
}

// LogConfig holds logger settings. An empty File means the user cache dir.
type LogConfig struct {
	Level string `envconfig:"POSTBOARD_LOG_LEVEL" default:"info"`
	File  string `envconfig:"POSTBOARD_LOG_FILE" default:""`
}

// TelemetryConfig uses the standard OTel variable names. Tracing is off when
// Endpoint is empty.
type TelemetryConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"postboard"`
}

// Load reads envFiles (or .env when none are given) into the environment,
// then processes the variables. Missing env files are ignored; variables
// already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Cache.Type = strings.ToLower(strings.TrimSpace(cfg.Cache.Type))
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, errors.New("base URL is empty"))
	}
	if c.PostsLimit <= 0 {
		errs = append(errs, fmt.Errorf("posts limit must be positive, got %d", c.PostsLimit))
	}
	if c.Revalidate <= 0 {
		errs = append(errs, fmt.Errorf("revalidate interval must be positive, got %s", c.Revalidate))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout))
	}
	switch c.Cache.Type {
	case CacheMemory, CacheRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown cache type %q (want %s or %s)", c.Cache.Type, CacheMemory, CacheRedis))
	}
	return errors.Join(errs...)
}
