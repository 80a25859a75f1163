package xhttp

import (
	"fmt"
	"net/http"

	"github.com/altay/inkdash/internal/version"
)

type inkdashTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*inkdashTransport)(nil)

func (t *inkdashTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "inkdash/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard inkdash headers.
func NewTransport() http.RoundTripper {
	return &inkdashTransport{base: http.DefaultTransport}
}
