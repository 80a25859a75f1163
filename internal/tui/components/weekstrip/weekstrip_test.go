package weekstrip

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/altay/inkdash/internal/snapshot"
)

func TestDays(t *testing.T) {
	t.Parallel()

	daily := snapshot.WeatherDaily{
		Time: []string{"2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10", "2024-03-11", "2024-03-12"},
		Code: []int{2, 61, 3, 0, 71, 95, 1},
		High: []float64{61.4, 48, 50, 55, 38, 42, 58},
		Low:  []float64{39.6, 35, 33, 37, 28, 30, 41},
	}

	days := Days(daily)
	if len(days) != 7 {
		t.Fatalf("days = %d, want 7", len(days))
	}

	want := Day{Label: "Wed", Glyph: "☁", High: "61°", Low: "40°"}
	if diff := cmp.Diff(want, days[0]); diff != "" {
		t.Errorf("first day mismatch (-want +got):\n%s", diff)
	}
	if days[1].Glyph != "☂" {
		t.Errorf("rainy day glyph = %q, want ☂", days[1].Glyph)
	}
	if days[6].Label != "Tue" {
		t.Errorf("last label = %q, want Tue", days[6].Label)
	}
}

func TestDaysTruncatesToSeven(t *testing.T) {
	t.Parallel()

	daily := snapshot.WeatherDaily{
		Time: make([]string, 10),
		Code: make([]int, 10),
		High: make([]float64, 10),
		Low:  make([]float64, 10),
	}
	for i := range daily.Time {
		daily.Time[i] = "2024-03-06"
	}

	if got := len(Days(daily)); got != 7 {
		t.Errorf("days = %d, want 7", got)
	}
}

func TestDaysEmpty(t *testing.T) {
	t.Parallel()

	if got := Days(snapshot.WeatherDaily{}); len(got) != 0 {
		t.Errorf("days = %d, want 0", len(got))
	}
}

func TestDaysRaggedArrays(t *testing.T) {
	t.Parallel()

	// Upstream sent fewer temps than dates; the strip must not panic and
	// the short columns stay blank.
	daily := snapshot.WeatherDaily{
		Time: []string{"2024-03-06", "2024-03-07"},
		Code: []int{2},
		High: []float64{61},
		Low:  []float64{40},
	}

	days := Days(daily)
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	if days[1].High != "" || days[1].Low != "" {
		t.Errorf("ragged day = %+v, want blank temps", days[1])
	}
}
