// Package twelvedata fetches market quotes and daily close history from
// the TwelveData API.
package twelvedata

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
	defaultBaseURL = "https://api.twelvedata.com"
	defaultTimeout = 10 * time.Second
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type clientConfig struct {
	baseURL string
	timeout time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &keyTransport{
		base:   xhttp.NewTransport(),
		apiKey: apiKey,
	}

	return &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	// TwelveData signals errors in the body of an otherwise-200 response.
	if err := parseAPIError(resp.StatusCode, body); err != nil {
		return err
	}

	if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
	}

	return nil
}

// keyTransport appends the account API key to every outgoing request.
type keyTransport struct {
	base   http.RoundTripper
	apiKey string
}

var _ http.RoundTripper = (*keyTransport)(nil)

func (t *keyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	q := req.URL.Query()
	q.Set("apikey", t.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
