package openmeteo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/altay/inkdash/internal/snapshot"
)

const forecastBody = `{
	"current": {"temperature_2m": 54.3, "weather_code": 2},
	"daily": {
		"time": ["2024-03-06","2024-03-07","2024-03-08","2024-03-09","2024-03-10","2024-03-11","2024-03-12"],
		"weather_code": [2,61,3,0,71,95,1],
		"temperature_2m_max": [61,48,50,55,38,42,58],
		"temperature_2m_min": [40,35,33,37,28,30,41]
	}
}`

func TestForecast(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("path = %q, want /forecast", r.URL.Path)
		}
		gotQuery = map[string]string{
			"latitude":         r.URL.Query().Get("latitude"),
			"timezone":         r.URL.Query().Get("timezone"),
			"temperature_unit": r.URL.Query().Get("temperature_unit"),
			"hourly":           r.URL.Query().Get("hourly"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	w, err := c.Forecast(t.Context(), ForecastParams{Lat: 41.8781, Lon: -87.6298, Timezone: "America/Chicago"})
	if err != nil {
		t.Fatalf("Forecast() error: %v", err)
	}

	want := snapshot.WeatherCurrent{
		Code:        2,
		Temperature: 54.3,
		High:        61,
		Low:         40,
		Text:        "Partly cloudy",
	}
	if diff := cmp.Diff(want, w.Current); diff != "" {
		t.Errorf("current mismatch (-want +got):\n%s", diff)
	}
	if len(w.Daily.Time) != 7 {
		t.Errorf("daily days = %d, want 7", len(w.Daily.Time))
	}
	if w.Hourly != nil {
		t.Error("hourly present without IncludeHourly")
	}

	if gotQuery["latitude"] != "41.8781" {
		t.Errorf("latitude = %q, want 41.8781", gotQuery["latitude"])
	}
	if gotQuery["timezone"] != "America/Chicago" {
		t.Errorf("timezone = %q", gotQuery["timezone"])
	}
	if gotQuery["temperature_unit"] != "fahrenheit" {
		t.Errorf("temperature_unit = %q", gotQuery["temperature_unit"])
	}
	if gotQuery["hourly"] != "" {
		t.Errorf("hourly requested without IncludeHourly: %q", gotQuery["hourly"])
	}
}

func TestForecastIncompleteBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing current", body: `{"daily": {"time": ["2024-03-06"], "temperature_2m_max": [61], "temperature_2m_min": [40]}}`},
		{name: "missing daily", body: `{"current": {"temperature_2m": 54.3, "weather_code": 2}}`},
		{name: "empty daily arrays", body: `{"current": {"temperature_2m": 54.3, "weather_code": 2}, "daily": {"time": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(WithBaseURL(srv.URL))
			if _, err := c.Forecast(t.Context(), ForecastParams{Timezone: "UTC"}); err == nil {
				t.Error("Forecast() succeeded on incomplete body")
			}
		})
	}
}

func TestForecastUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": true, "reason": "Latitude must be in range"}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Forecast(t.Context(), ForecastParams{Lat: 9999, Timezone: "UTC"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "Latitude must be in range" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestGeocode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "Istanbul" {
			t.Errorf("name = %q, want Istanbul", got)
		}
		_, _ = w.Write([]byte(`{"results": [{"name": "Istanbul", "country": "Turkey", "timezone": "Europe/Istanbul", "latitude": 41.01, "longitude": 28.95}]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	got, err := c.Geocode(t.Context(), "  Istanbul  ")
	if err != nil {
		t.Fatalf("Geocode() error: %v", err)
	}

	want := &GeoResult{Label: "Istanbul, Turkey", Timezone: "Europe/Istanbul", Lat: 41.01, Lon: 28.95}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Geocode() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeocodeNoResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	if _, err := c.Geocode(t.Context(), "Nowheresville"); err == nil {
		t.Error("Geocode() succeeded with no results")
	}
}

func TestGeocodeMissingTimezone(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"name": "Atlantis"}]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	if _, err := c.Geocode(t.Context(), "Atlantis"); err == nil {
		t.Error("Geocode() succeeded without timezone")
	}
}
