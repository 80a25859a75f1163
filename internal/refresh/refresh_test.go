package refresh

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/altay/inkdash/internal/client/openmeteo"
	"github.com/altay/inkdash/internal/client/twelvedata"
	"github.com/altay/inkdash/internal/config"
	"github.com/altay/inkdash/internal/snapshot"
)

const weatherBody = `{
	"current": {"temperature_2m": 54.3, "weather_code": 2},
	"daily": {
		"time": ["2024-03-06","2024-03-07","2024-03-08","2024-03-09","2024-03-10","2024-03-11","2024-03-12"],
		"weather_code": [2,61,3,0,71,95,1],
		"temperature_2m_max": [61,48,50,55,38,42,58],
		"temperature_2m_min": [40,35,33,37,28,30,41]
	}
}`

func testConfig() config.Config {
	return config.Config{
		Lat:           41.8781,
		Lon:           -87.6298,
		Timezone:      "America/Chicago",
		TwelveDataKey: "k",
		Symbols:       []string{"SPY", "IAU"},
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(weatherBody))
	}))
	defer weatherSrv.Close()

	marketsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"close": "512.34", "change": "-1.2", "is_market_open": false}`))
	}))
	defer marketsSrv.Close()

	dir := t.TempDir()
	j, err := New(testConfig(), slog.New(slog.DiscardHandler), dir,
		WithClients(
			openmeteo.New(openmeteo.WithBaseURL(weatherSrv.URL)),
			twelvedata.New("k", twelvedata.WithBaseURL(marketsSrv.URL)),
		))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := j.Run(t.Context()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, name := range []string{"weather.json", "markets.json", "weather.js", "markets.js"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "markets.json"))
	if err != nil {
		t.Fatalf("reading markets.json: %v", err)
	}
	var markets snapshot.Markets
	if err := go_json.Unmarshal(raw, &markets); err != nil {
		t.Fatalf("decoding markets.json: %v", err)
	}
	if len(markets.Symbols) != 2 {
		t.Errorf("symbols = %d, want 2", len(markets.Symbols))
	}
	if q := markets.Symbols["SPY"]; q.Price == nil || *q.Price != 512.34 {
		t.Errorf("SPY quote = %+v", q)
	}
	if markets.UpdatedAt.IsZero() {
		t.Error("updated_iso is zero")
	}
}

func TestRunNoPartialWrites(t *testing.T) {
	t.Parallel()

	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(weatherBody))
	}))
	defer weatherSrv.Close()

	// Quotes fail, so nothing may be written even though weather succeeded.
	marketsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "out of credits"}`))
	}))
	defer marketsSrv.Close()

	dir := t.TempDir()
	j, err := New(testConfig(), slog.New(slog.DiscardHandler), dir,
		WithClients(
			openmeteo.New(openmeteo.WithBaseURL(weatherSrv.URL)),
			twelvedata.New("k", twelvedata.WithBaseURL(marketsSrv.URL)),
		))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := j.Run(t.Context()); err == nil {
		t.Fatal("Run() succeeded with a failing upstream")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dir has %d entries after failed run, want 0", len(entries))
	}
}

func TestNewMissingKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.TwelveDataKey = ""
	if _, err := New(cfg, slog.New(slog.DiscardHandler), t.TempDir()); err == nil {
		t.Error("New() succeeded without an API key")
	}
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2024, 3, 6, 15, 4, 0, 0, time.UTC)

	weather := WeatherPayload{
		UpdatedAt: now,
		Weather: snapshot.Weather{
			Current: snapshot.WeatherCurrent{Code: 2, Temperature: 54.3, Text: "Partly cloudy"},
			Daily:   snapshot.WeatherDaily{Time: []string{"2024-03-06"}, Code: []int{2}, High: []float64{61}, Low: []float64{40}},
		},
	}
	price := 512.34
	markets := snapshot.Markets{
		UpdatedAt: now,
		Symbols:   map[string]snapshot.Quote{"SPY": {Price: &price}},
	}

	if err := WriteFiles(dir, weather, markets); err != nil {
		t.Fatalf("WriteFiles() error: %v", err)
	}

	js, err := os.ReadFile(filepath.Join(dir, "markets.js"))
	if err != nil {
		t.Fatalf("reading markets.js: %v", err)
	}
	text := string(js)
	if !strings.HasPrefix(text, "// AUTO-GENERATED. DO NOT EDIT.\n") {
		t.Errorf("markets.js missing banner: %q", text[:40])
	}
	if !strings.Contains(text, "window.DASH_DATA.markets = {") {
		t.Errorf("markets.js missing assignment: %q", text)
	}
	if !strings.HasSuffix(text, ";\n") {
		t.Error("markets.js not terminated")
	}

	wjs, err := os.ReadFile(filepath.Join(dir, "weather.js"))
	if err != nil {
		t.Fatalf("reading weather.js: %v", err)
	}
	if !strings.Contains(string(wjs), "window.DASH_DATA.weather = {") {
		t.Errorf("weather.js missing assignment")
	}

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("dir has %d entries, want 4", len(entries))
	}
}
