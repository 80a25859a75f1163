// Package server exposes the dashboard's data proxy: thin JSON endpoints
// in front of the weather, market, and routing upstreams, with per-route
// response caching so a fleet of displays shares one upstream budget.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/altay/inkdash/internal/archive"
	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/client/tomtom"
	"github.com/altay/inkdash/internal/client/twelvedata"
	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/xerrors"
	"github.com/altay/inkdash/internal/xhttp"
	"github.com/altay/inkdash/internal/xslog"
)

// Cache-control windows in seconds, matched by the response cache TTLs.
const (
	maxAgeWeather = 600
	maxAgeMarkets = 300
	maxAgeCommute = 300
	maxAgeGeocode = 3600
)

const maxSymbols = 8

type Handler struct {
	cfg     Config
	cache   ResponseCache
	weather *openmeteo.Client

	// markets and traffic are nil when their credential is absent; their
	// endpoints then fail fast with a fixed message.
	markets *twelvedata.Client
	traffic *tomtom.Client

	// archive is nil when no database is configured; markets responses
	// then carry no history series.
	archive *archive.Archive
}

func NewHandler(cfg Config, cache ResponseCache, arc *archive.Archive) *Handler {
	h := &Handler{
		cfg:     cfg,
		cache:   cache,
		weather: openmeteo.New(),
		archive: arc,
	}
	if cfg.TwelveDataKey != "" {
		h.markets = twelvedata.New(cfg.TwelveDataKey)
	}
	if cfg.TomTomKey != "" {
		h.traffic = tomtom.New(cfg.TomTomKey)
	}
	return h
}

func (h *Handler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	tz := q.Get("tz")
	if latErr != nil || lonErr != nil || tz == "" {
		xerrors.Write(w, xerrors.BadRequest(xerrors.WithMessage("missing lat/lon/tz")))
		return
	}

	params := openmeteo.ForecastParams{
		Lat:           lat,
		Lon:           lon,
		Timezone:      tz,
		IncludeHourly: q.Get("hourly") == "1",
	}

	h.serve(w, r, maxAgeWeather, func(ctx context.Context) (any, error) {
		return h.weather.Forecast(ctx, params)
	})
}

func (h *Handler) HandleMarkets(w http.ResponseWriter, r *http.Request) {
	if h.markets == nil {
		xerrors.Write(w, xerrors.Internal(xerrors.WithMessage("missing TWELVEDATA_API_KEY")))
		return
	}

	symbols := h.cfg.Symbols
	if raw := r.URL.Query().Get("symbols"); raw != "" {
		symbols = splitSymbols(raw)
	}
	if len(symbols) == 0 || len(symbols) > maxSymbols {
		xerrors.Write(w, xerrors.BadRequest(xerrors.WithMessage("invalid symbols parameter")))
		return
	}

	h.serve(w, r, maxAgeMarkets, func(ctx context.Context) (any, error) {
		quotes, marketOpen, err := h.markets.Quotes(ctx, symbols)
		if err != nil {
			return nil, err
		}

		m := snapshot.Markets{
			UpdatedAt:  time.Now().UTC(),
			MarketOpen: marketOpen,
			Symbols:    quotes,
		}

		if h.archive != nil {
			history, err := h.archive.History(ctx, symbols, h.cfg.HistoryDays)
			if err != nil {
				// Quotes alone still render; drop the history series.
				xslog.FromContext(ctx).WarnContext(ctx, "close history unavailable", xslog.Error(err))
			} else {
				m.History = history
			}
		}

		return m, nil
	})
}

func (h *Handler) HandleCommute(w http.ResponseWriter, r *http.Request) {
	if h.traffic == nil {
		xerrors.Write(w, xerrors.Internal(xerrors.WithMessage("missing TOMTOM_API_KEY")))
		return
	}

	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		xerrors.Write(w, xerrors.BadRequest(xerrors.WithMessage("missing from/to")))
		return
	}

	h.serve(w, r, maxAgeCommute, func(ctx context.Context) (any, error) {
		var fromPlace, toPlace snapshot.Place

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			p, err := h.geocodePlace(gctx, from)
			if err != nil {
				return err
			}
			fromPlace = p
			return nil
		})
		g.Go(func() error {
			p, err := h.geocodePlace(gctx, to)
			if err != nil {
				return err
			}
			toPlace = p
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		route, err := h.traffic.Route(ctx,
			tomtom.Point{Lat: fromPlace.Lat, Lon: fromPlace.Lon},
			tomtom.Point{Lat: toPlace.Lat, Lon: toPlace.Lon},
		)
		if err != nil {
			return nil, err
		}

		return snapshot.Traffic{
			From:      fromPlace,
			To:        toPlace,
			UpdatedAt: time.Now().UTC(),
			Route:     *route,
		}, nil
	})
}

func (h *Handler) HandleGeocode(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		xerrors.Write(w, xerrors.BadRequest(xerrors.WithMessage("missing q")))
		return
	}

	h.serve(w, r, maxAgeGeocode, func(ctx context.Context) (any, error) {
		result, err := h.weather.Geocode(ctx, query)
		if err != nil {
			return nil, err
		}
		return geocodeResponse{
			Label:    result.Label,
			Timezone: result.Timezone,
			Lat:      result.Lat,
			Lon:      result.Lon,
		}, nil
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, map[string]string{"status": "ok"})
}

type geocodeResponse struct {
	Label    string  `json:"label"`
	Timezone string  `json:"tz"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

func (h *Handler) geocodePlace(ctx context.Context, query string) (snapshot.Place, error) {
	result, err := h.weather.Geocode(ctx, query)
	if err != nil {
		return snapshot.Place{}, err
	}
	return snapshot.Place{Label: result.Label, Lat: result.Lat, Lon: result.Lon}, nil
}

// serve answers from the response cache when the window is still open,
// otherwise runs fetch, caches the rendered body for the window, and
// writes it. Fetch failures never overwrite a cached body.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, maxAge int, fetch func(ctx context.Context) (any, error)) {
	ctx := r.Context()
	key := r.URL.Path + "?" + r.URL.Query().Encode()

	if body, err := h.cache.Get(ctx, key); err == nil {
		h.write(w, maxAge, body)
		return
	}

	data, err := fetch(ctx)
	if err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "upstream fetch failed", xslog.Path(r.URL.Path), xslog.Error(err))
		xerrors.Write(w, h.mapError(err))
		return
	}

	body, err := go_json.Marshal(data)
	if err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "encoding response failed", xslog.Path(r.URL.Path), xslog.Error(err))
		xhttp.Error(w, http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set(ctx, key, body, time.Duration(maxAge)*time.Second); err != nil {
		xslog.FromContext(ctx).WarnContext(ctx, "caching response failed", xslog.Path(r.URL.Path), xslog.Error(err))
	}

	h.write(w, maxAge, body)
}

func (h *Handler) write(w http.ResponseWriter, maxAge int, body []byte) {
	xhttp.SetHeaderContentTypeApplicationJSON(w)
	xhttp.SetHeaderCacheControl(w, maxAge)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// mapError turns upstream failures into 502s carrying the upstream
// message; anything else surfaces as a plain 500.
func (h *Handler) mapError(err error) error {
	var omErr *openmeteo.APIError
	var tdErr *twelvedata.APIError
	var ttErr *tomtom.APIError
	if errors.As(err, &omErr) || errors.As(err, &tdErr) || errors.As(err, &ttErr) {
		return xerrors.BadGateway(xerrors.WithMessage(err.Error()), xerrors.WithCause(err))
	}
	return xerrors.Internal(xerrors.WithCause(err))
}

func splitSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			symbols = append(symbols, p)
		}
	}
	return symbols
}
