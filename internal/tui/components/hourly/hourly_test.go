package hourly

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/altay/inkdash/internal/snapshot"
)

func TestRows(t *testing.T) {
	t.Parallel()

	h := &snapshot.WeatherHourly{
		Time:          []string{"2024-03-06T15:00", "2024-03-06T16:00"},
		Temperature:   []float64{54.6, 53.2},
		Precipitation: []int{10, 35},
		Code:          []int{2, 61},
		WindSpeed:     []float64{12.4, 15.8},
	}

	rows := Rows(h)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	want := Row{Time: "15:00", Glyph: "☁", Temp: "55°", Precip: "10%", Wind: "12 mph"}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
	if rows[1].Glyph != "☂" {
		t.Errorf("rainy glyph = %q, want ☂", rows[1].Glyph)
	}
}

func TestRowsCap(t *testing.T) {
	t.Parallel()

	h := &snapshot.WeatherHourly{Time: make([]string, 24)}
	for i := range h.Time {
		h.Time[i] = "2024-03-06T00:00"
	}

	if got := len(Rows(h)); got != 10 {
		t.Errorf("rows = %d, want 10", got)
	}
}

func TestRowsEmpty(t *testing.T) {
	t.Parallel()

	if got := Rows(nil); got != nil {
		t.Errorf("nil series = %v, want nil", got)
	}
	if got := Rows(&snapshot.WeatherHourly{}); got != nil {
		t.Errorf("empty series = %v, want nil", got)
	}
}

func TestRowsRagged(t *testing.T) {
	t.Parallel()

	h := &snapshot.WeatherHourly{
		Time:        []string{"2024-03-06T15:00", "2024-03-06T16:00"},
		Temperature: []float64{54.6},
	}

	rows := Rows(h)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1].Temp != "--" || rows[1].Precip != "--" {
		t.Errorf("ragged row = %+v, want placeholders", rows[1])
	}
}
