package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the dashboard-side configuration: who the display greets,
// where it is, and how it reaches its data.
type Config struct {
	Name     string  `env:"DASH_NAME" envDefault:"Altay"`
	Lat      float64 `env:"DASH_LAT" envDefault:"41.8781"`
	Lon      float64 `env:"DASH_LON" envDefault:"-87.6298"`
	Timezone string  `env:"DASH_TZ" envDefault:"America/Chicago"`
	Use24h   bool    `env:"DASH_USE_24H" envDefault:"true"`

	// ServerURL points the dashboard at a running data proxy. Empty means
	// fetch the public upstreams directly (markets then needs the key).
	ServerURL string `env:"SERVER_URL"`

	// TwelveDataKey and TomTomKey are only consulted for direct upstream
	// fetches.
	TwelveDataKey string `env:"TWELVEDATA_API_KEY"`
	TomTomKey     string `env:"TOMTOM_API_KEY"`

	Symbols       []string `env:"DASH_SYMBOLS" envDefault:"SPY,IAU"`
	DetailSymbols []string `env:"DASH_DETAIL_SYMBOLS" envDefault:"SPY,QQQ,IAU,SLV"`

	// CommuteFrom/CommuteTo are free-text places for the traffic card.
	// The card prompts for them when unset.
	CommuteFrom string `env:"DASH_COMMUTE_FROM"`
	CommuteTo   string `env:"DASH_COMMUTE_TO"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
