// Package fetch is the dashboard's data source layer. A Fetcher obtains
// fresh domain snapshots either straight from the public upstreams or
// through a deployed proxy, so the render path never cares which.
package fetch

import (
	"context"

	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/config"
	"github.com/altay/inkdash/internal/snapshot"
)

type Fetcher interface {
	Weather(ctx context.Context, params openmeteo.ForecastParams) (*snapshot.Weather, error)

	// Markets fetches quotes for the symbols plus, when historyDays > 0,
	// their recent daily closes.
	Markets(ctx context.Context, symbols []string, historyDays int) (*snapshot.Markets, error)

	Commute(ctx context.Context, from, to string) (*snapshot.Traffic, error)

	Geocode(ctx context.Context, query string) (*openmeteo.GeoResult, error)
}

// FromConfig picks the proxy when a server URL is configured, otherwise
// direct upstream access with whatever credentials are present.
func FromConfig(cfg config.Config) Fetcher {
	if cfg.ServerURL != "" {
		return NewProxy(cfg.ServerURL)
	}
	return NewDirect(cfg.TwelveDataKey, cfg.TomTomKey)
}
