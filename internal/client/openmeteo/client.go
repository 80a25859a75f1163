// Package openmeteo fetches forecasts and city geocoding from the
// Open-Meteo public APIs.
package openmeteo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/altay/inkdash/internal/xhttp"
)

const (
	defaultForecastURL  = "https://api.open-meteo.com/v1"
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1"

	defaultTimeout = 10 * time.Second
)

type Client struct {
	forecastURL  string
	geocodingURL string
	httpClient   *http.Client
}

type clientConfig struct {
	forecastURL  string
	geocodingURL string
	timeout      time.Duration
}

type Option func(*clientConfig)

// WithBaseURL points both endpoints at one host, for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) {
		cfg.forecastURL = baseURL
		cfg.geocodingURL = baseURL
	}
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func New(opts ...Option) *Client {
	cfg := &clientConfig{
		forecastURL:  defaultForecastURL,
		geocodingURL: defaultGeocodingURL,
		timeout:      defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		forecastURL:  cfg.forecastURL,
		geocodingURL: cfg.geocodingURL,
		httpClient:   xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.timeout)),
	}
}

func (c *Client) get(ctx context.Context, baseURL, path string, query url.Values, result any) error {
	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
	}

	return nil
}
