package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/xhttp"
)

const proxyTimeout = 10 * time.Second

// Proxy fetches through a deployed data server, which holds the upstream
// credentials and a shared response cache.
type Proxy struct {
	baseURL    string
	httpClient *http.Client
}

var _ Fetcher = (*Proxy)(nil)

func NewProxy(baseURL string) *Proxy {
	return &Proxy{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: xhttp.NewHTTPClient(xhttp.WithTimeout(proxyTimeout)),
	}
}

func (p *Proxy) Weather(ctx context.Context, params openmeteo.ForecastParams) (*snapshot.Weather, error) {
	query := url.Values{
		"lat": {strconv.FormatFloat(params.Lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(params.Lon, 'f', -1, 64)},
		"tz":  {params.Timezone},
	}
	if params.IncludeHourly {
		query.Set("hourly", "1")
	}

	var w snapshot.Weather
	if err := p.get(ctx, "/api/weather", query, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (p *Proxy) Markets(ctx context.Context, symbols []string, _ int) (*snapshot.Markets, error) {
	query := url.Values{"symbols": {strings.Join(symbols, ",")}}

	var m snapshot.Markets
	if err := p.get(ctx, "/api/markets", query, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (p *Proxy) Commute(ctx context.Context, from, to string) (*snapshot.Traffic, error) {
	query := url.Values{"from": {from}, "to": {to}}

	var t snapshot.Traffic
	if err := p.get(ctx, "/api/commute", query, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (p *Proxy) Geocode(ctx context.Context, query string) (*openmeteo.GeoResult, error) {
	var resp struct {
		Label    string  `json:"label"`
		Timezone string  `json:"tz"`
		Lat      float64 `json:"lat"`
		Lon      float64 `json:"lon"`
	}
	if err := p.get(ctx, "/api/geocode", url.Values{"q": {query}}, &resp); err != nil {
		return nil, err
	}
	return &openmeteo.GeoResult{
		Label:    resp.Label,
		Timezone: resp.Timezone,
		Lat:      resp.Lat,
		Lon:      resp.Lon,
	}, nil
}

func (p *Proxy) get(ctx context.Context, path string, query url.Values, result any) error {
	u := p.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = go_json.Unmarshal(body, &e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("server %s: %s", path, e.Error)
	}

	if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
