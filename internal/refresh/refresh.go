// Package refresh implements the one-shot data refresh job: fetch every
// domain, validate everything, then publish the static data files the
// offline dashboard build embeds. Nothing is written until every fetch
// has succeeded, so a partial upstream outage leaves the previous files
// intact.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/altay/inkdash/internal/archive"
	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/client/twelvedata"
	"github.com/altay/inkdash/internal/config"
	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/xslog"
)

const historyDays = 5

type Job struct {
	cfg     config.Config
	logger  *slog.Logger
	outDir  string
	weather *openmeteo.Client
	markets *twelvedata.Client

	// archive is nil when no database is configured.
	archive *archive.Archive
}

type Option func(*Job)

// WithClients overrides the upstream clients, used by tests.
func WithClients(weather *openmeteo.Client, markets *twelvedata.Client) Option {
	return func(j *Job) {
		j.weather = weather
		j.markets = markets
	}
}

func WithArchive(arc *archive.Archive) Option {
	return func(j *Job) { j.archive = arc }
}

func New(cfg config.Config, logger *slog.Logger, outDir string, opts ...Option) (*Job, error) {
	if cfg.TwelveDataKey == "" {
		return nil, fmt.Errorf("missing TWELVEDATA_API_KEY")
	}

	j := &Job{
		cfg:     cfg,
		logger:  logger,
		outDir:  outDir,
		weather: openmeteo.New(),
		markets: twelvedata.New(cfg.TwelveDataKey),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Run fetches weather and quotes in parallel, joining all-succeed: any
// failure aborts the run before a single file is touched.
func (j *Job) Run(ctx context.Context) error {
	var (
		weather *snapshot.Weather
		quotes  map[string]snapshot.Quote
		open    *bool
		history map[string][]snapshot.Close
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := j.weather.Forecast(gctx, openmeteo.ForecastParams{
			Lat:      j.cfg.Lat,
			Lon:      j.cfg.Lon,
			Timezone: j.cfg.Timezone,
		})
		if err != nil {
			return fmt.Errorf("weather: %w", err)
		}
		weather = w
		return nil
	})
	g.Go(func() error {
		q, o, err := j.markets.Quotes(gctx, j.cfg.Symbols)
		if err != nil {
			return fmt.Errorf("markets: %w", err)
		}
		quotes, open = q, o
		return nil
	})
	if j.archive != nil {
		g.Go(func() error {
			h, err := j.markets.History(gctx, j.cfg.Symbols, historyDays)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			history = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	now := time.Now().UTC()
	weatherOut := WeatherPayload{UpdatedAt: now, Weather: *weather}
	marketsOut := snapshot.Markets{
		UpdatedAt:  now,
		MarketOpen: open,
		Symbols:    quotes,
		History:    history,
	}

	if err := WriteFiles(j.outDir, weatherOut, marketsOut); err != nil {
		return err
	}
	j.logger.InfoContext(ctx, "wrote data files",
		xslog.Path(j.outDir), xslog.Count(len(quotes)))

	if j.archive != nil {
		if err := j.archive.RecordCloses(ctx, history); err != nil {
			return fmt.Errorf("archiving closes: %w", err)
		}
		j.logger.InfoContext(ctx, "archived closes", xslog.Count(len(history)))
	}

	return nil
}
