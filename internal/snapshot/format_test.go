package snapshot

import (
	"math"
	"testing"
	"time"
)

func ptr(v float64) *float64 { return &v }

func TestPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{name: "nil", value: nil, expected: "--"},
		{name: "simple", value: ptr(12.5), expected: "$12.50"},
		{name: "rounding", value: ptr(0.005), expected: "$0.01"},
		{name: "large", value: ptr(4821.9), expected: "$4821.90"},
		{name: "nan", value: ptr(math.NaN()), expected: "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Price(tt.value); got != tt.expected {
				t.Errorf("Price() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{name: "nil", value: nil, expected: "--"},
		{name: "positive gets sign", value: ptr(1.234), expected: "+1.23%"},
		{name: "zero gets sign", value: ptr(0.0), expected: "+0.00%"},
		{name: "negative", value: ptr(-2.5), expected: "-2.50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Percent(tt.value); got != tt.expected {
				t.Errorf("Percent() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio    float64
		expected string
	}{
		{ratio: 1.0, expected: "Light"},
		{ratio: 1.19, expected: "Light"},
		{ratio: 1.20, expected: "Medium"},
		{ratio: 1.45, expected: "Medium"},
		{ratio: 1.50, expected: "Heavy"},
		{ratio: 1.99, expected: "Heavy"},
		{ratio: 2.00, expected: "Severe"},
		{ratio: 3.7, expected: "Severe"},
		{ratio: 0, expected: "--"},
		{ratio: math.NaN(), expected: "--"},
	}

	for _, tt := range tests {
		if got := Status(tt.ratio); got != tt.expected {
			t.Errorf("Status(%v) = %q, want %q", tt.ratio, got, tt.expected)
		}
	}
}

func TestMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sec      float64
		expected string
	}{
		{sec: 0, expected: "0 min"},
		{sec: 89, expected: "1 min"},
		{sec: 90, expected: "2 min"},
		{sec: 1860, expected: "31 min"},
		{sec: math.NaN(), expected: "--"},
	}

	for _, tt := range tests {
		if got := Minutes(tt.sec); got != tt.expected {
			t.Errorf("Minutes(%v) = %q, want %q", tt.sec, got, tt.expected)
		}
	}
}

func TestDistanceMiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meters   float64
		expected string
	}{
		{meters: 1609.344, expected: "1.0 mi"},
		{meters: 8046.72, expected: "5.0 mi"},
		{meters: 16093.44, expected: "10 mi"},
		{meters: 40233.6, expected: "25 mi"},
		{meters: math.Inf(1), expected: "--"},
	}

	for _, tt := range tests {
		if got := DistanceMiles(tt.meters); got != tt.expected {
			t.Errorf("DistanceMiles(%v) = %q, want %q", tt.meters, got, tt.expected)
		}
	}
}

func TestFiveDayChange(t *testing.T) {
	t.Parallel()

	series := []Close{
		{Date: "2024-03-01", Close: 100},
		{Date: "2024-03-04", Close: 98},
		{Date: "2024-03-05", Close: 105},
	}

	got := FiveDayChange(series)
	if got == nil {
		t.Fatal("FiveDayChange() = nil, want value")
	}
	if math.Abs(*got-5.0) > 1e-9 {
		t.Errorf("FiveDayChange() = %v, want 5.0", *got)
	}

	if FiveDayChange(nil) != nil {
		t.Error("FiveDayChange(nil) should be nil")
	}
	if FiveDayChange(series[:1]) != nil {
		t.Error("FiveDayChange(single point) should be nil")
	}
	if FiveDayChange([]Close{{Close: 0}, {Close: 5}}) != nil {
		t.Error("FiveDayChange(zero base) should be nil")
	}
}

func TestCloseRange(t *testing.T) {
	t.Parallel()

	series := []Close{{Close: 101.5}, {Close: 99.25}, {Close: 104}}
	const want = "$99.25 – $104.00"
	if got := CloseRange(series); got != want {
		t.Errorf("CloseRange() = %q, want %q", got, want)
	}

	if got := CloseRange(nil); got != "--" {
		t.Errorf("CloseRange(nil) = %q, want --", got)
	}
}

func TestRecordStale(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	rec := Record[Weather]{UpdatedAt: now.Add(-23 * time.Hour)}
	if rec.Stale(now) {
		t.Error("record under 24h marked stale")
	}

	rec.UpdatedAt = now.Add(-25 * time.Hour)
	if !rec.Stale(now) {
		t.Error("record over 24h not marked stale")
	}
}
