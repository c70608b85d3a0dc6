// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// DB holds the history database settings. An empty URL disables the
// conversion history feature.
type DB struct {
	Url string `envconfig:"URL"`
}

// ExchangeRate holds the settings for the external rate source.
type ExchangeRate struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.exchangerate-api.com/v4/latest"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"15m"`
}

// RateLimit holds the inbound request throttling settings.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Log holds the logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"fxconvert"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// Theme holds the initial display mode handed to new clients.
type Theme struct {
	Default string `envconfig:"DEFAULT" default:"light"`
}

// App is the root configuration.
type App struct {
	Env       string       `envconfig:"APP_ENV" default:"development"`
	Server    Server       `envconfig:"SERVER"`
	DB        DB           `envconfig:"DATABASE"`
	Exchange  ExchangeRate `envconfig:"EXCHANGE_RATE"`
	RateLimit RateLimit    `envconfig:"RATE_LIMIT"`
	Log       Log          `envconfig:"LOG"`
	Theme     Theme        `envconfig:"THEME"`
}

// Load reads configuration from the environment. When an env file path is
// given it is loaded first; missing files are tolerated so deployments can
// rely on real environment variables alone.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"exchange_api_url", cfg.Exchange.ApiUrl,
		"exchange_cache_ttl", cfg.Exchange.CacheTTL,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}
