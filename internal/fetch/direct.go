package fetch

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/client/tomtom"
	"github.com/altay/inkdash/internal/client/twelvedata"
	"github.com/altay/inkdash/internal/snapshot"
)

var (
	ErrNoMarketKey  = errors.New("market data needs TWELVEDATA_API_KEY or SERVER_URL")
	ErrNoTrafficKey = errors.New("traffic data needs TOMTOM_API_KEY or SERVER_URL")
)

// Direct talks to the public upstreams without a proxy in between.
type Direct struct {
	weather *openmeteo.Client

	// markets and traffic are nil without their credential.
	markets *twelvedata.Client
	traffic *tomtom.Client
}

var _ Fetcher = (*Direct)(nil)

func NewDirect(twelveDataKey, tomtomKey string) *Direct {
	d := &Direct{weather: openmeteo.New()}
	if twelveDataKey != "" {
		d.markets = twelvedata.New(twelveDataKey)
	}
	if tomtomKey != "" {
		d.traffic = tomtom.New(tomtomKey)
	}
	return d
}

func (d *Direct) Weather(ctx context.Context, params openmeteo.ForecastParams) (*snapshot.Weather, error) {
	return d.weather.Forecast(ctx, params)
}

func (d *Direct) Markets(ctx context.Context, symbols []string, historyDays int) (*snapshot.Markets, error) {
	if d.markets == nil {
		return nil, ErrNoMarketKey
	}

	quotes, marketOpen, err := d.markets.Quotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	m := &snapshot.Markets{
		UpdatedAt:  time.Now().UTC(),
		MarketOpen: marketOpen,
		Symbols:    quotes,
	}

	if historyDays > 0 {
		history, err := d.markets.History(ctx, symbols, historyDays)
		if err != nil {
			return nil, err
		}
		m.History = history
	}

	return m, nil
}

func (d *Direct) Commute(ctx context.Context, from, to string) (*snapshot.Traffic, error) {
	if d.traffic == nil {
		return nil, ErrNoTrafficKey
	}

	var fromPlace, toPlace snapshot.Place

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := d.geocodePlace(gctx, from)
		if err != nil {
			return err
		}
		fromPlace = p
		return nil
	})
	g.Go(func() error {
		p, err := d.geocodePlace(gctx, to)
		if err != nil {
			return err
		}
		toPlace = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	route, err := d.traffic.Route(ctx,
		tomtom.Point{Lat: fromPlace.Lat, Lon: fromPlace.Lon},
		tomtom.Point{Lat: toPlace.Lat, Lon: toPlace.Lon},
	)
	if err != nil {
		return nil, err
	}

	return &snapshot.Traffic{
		From:      fromPlace,
		To:        toPlace,
		UpdatedAt: time.Now().UTC(),
		Route:     *route,
	}, nil
}

func (d *Direct) Geocode(ctx context.Context, query string) (*openmeteo.GeoResult, error) {
	return d.weather.Geocode(ctx, query)
}

func (d *Direct) geocodePlace(ctx context.Context, query string) (snapshot.Place, error) {
	result, err := d.weather.Geocode(ctx, query)
	if err != nil {
		return snapshot.Place{}, err
	}
	return snapshot.Place{Label: result.Label, Lat: result.Lat, Lon: result.Lon}, nil
}
