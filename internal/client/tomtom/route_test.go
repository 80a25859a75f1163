package tomtom

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/altay/inkdash/internal/snapshot"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/routing/1/calculateRoute/") {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("traffic"); got != "true" {
			t.Errorf("traffic = %q, want true", got)
		}
		_, _ = w.Write([]byte(`{"routes": [{"summary": {
			"lengthInMeters": 16093,
			"travelTimeInSeconds": 1800,
			"trafficDelayInSeconds": 300
		}}]}`))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	got, err := c.Route(t.Context(), Point{Lat: 41.88, Lon: -87.63}, Point{Lat: 41.97, Lon: -87.90})
	if err != nil {
		t.Fatalf("Route() error: %v", err)
	}

	want := &snapshot.Route{
		TravelTimeSec:  1800,
		DelaySec:       300,
		DistanceMeters: 16093,
		Ratio:          1800.0 / 1500.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("route mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteRatioClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		travel float64
		delay  float64
		want   float64
	}{
		{name: "no delay", travel: 1200, delay: 0, want: 1},
		{name: "negative delay", travel: 1200, delay: -60, want: 1},
		{name: "delay exceeds travel", travel: 60, delay: 120, want: 1},
		{name: "half delayed", travel: 1800, delay: 900, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"routes": [{"summary": {
					"lengthInMeters": 1000,
					"travelTimeInSeconds": ` + formatFloat(tt.travel) + `,
					"trafficDelayInSeconds": ` + formatFloat(tt.delay) + `
				}}]}`))
			}))
			defer srv.Close()

			c := New("k", WithBaseURL(srv.URL))
			got, err := c.Route(t.Context(), Point{}, Point{})
			if err != nil {
				t.Fatalf("Route() error: %v", err)
			}
			if got.Ratio != tt.want {
				t.Errorf("ratio = %v, want %v", got.Ratio, tt.want)
			}
		})
	}
}

func TestRouteMissingSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "no routes", body: `{"routes": []}`},
		{name: "no summary", body: `{"routes": [{}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New("k", WithBaseURL(srv.URL))
			if _, err := c.Route(t.Context(), Point{}, Point{}); err == nil {
				t.Error("Route() succeeded without a summary")
			}
		})
	}
}

func TestRouteUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detailedError": {"code": "BAD_INPUT", "message": "Invalid coordinates"}}`))
	}))
	defer srv.Close()

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.Route(t.Context(), Point{}, Point{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid coordinates" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
