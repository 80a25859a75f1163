package server

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Upstream credentials. Weather and geocoding need none; markets and
	// commute fail with a fixed message when theirs is absent.
	TwelveDataKey string `env:"TWELVEDATA_API_KEY"`
	TomTomKey     string `env:"TOMTOM_API_KEY"`

	// RedisURL enables the shared response cache; empty falls back to an
	// in-process TTL map. DatabaseURL enables the close-history archive.
	RedisURL    string `env:"REDIS_URL"`
	DatabaseURL string `env:"DATABASE_URL"`

	Symbols     []string `env:"DASH_SYMBOLS" envDefault:"SPY,IAU"`
	HistoryDays int      `env:"DASH_HISTORY_DAYS" envDefault:"5"`
}

func ReadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
