package worldclock

import (
	"testing"
	"time"

	"github.com/altay/inkdash/internal/snapshot"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()

	// 2024-03-06 20:05 UTC.
	instant := time.Date(2024, 3, 6, 20, 5, 0, 0, time.UTC)

	tests := []struct {
		name string
		city snapshot.City
		want string
	}{
		{name: "london evening", city: snapshot.City{Label: "London", Timezone: "Europe/London"}, want: "08:05 PM"},
		{name: "dubai past midnight", city: snapshot.City{Label: "Dubai", Timezone: "Asia/Dubai"}, want: "12:05 AM"},
		{name: "mumbai half hour offset", city: snapshot.City{Label: "Mumbai", Timezone: "Asia/Kolkata"}, want: "01:35 AM"},
		{name: "unknown zone", city: snapshot.City{Label: "Nowhere", Timezone: "Not/AZone"}, want: "--:--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatTime(instant, tt.city); got != tt.want {
				t.Errorf("FormatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTimeNoonAndMidnight(t *testing.T) {
	t.Parallel()

	noon := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	utc := snapshot.City{Label: "UTC", Timezone: "UTC"}

	if got := FormatTime(noon, utc); got != "12:00 PM" {
		t.Errorf("noon = %q, want 12:00 PM", got)
	}
	midnight := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	if got := FormatTime(midnight, utc); got != "12:00 AM" {
		t.Errorf("midnight = %q, want 12:00 AM", got)
	}
}

func TestEntries(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 3, 6, 20, 5, 0, 0, time.UTC)
	entries := Entries(instant, DetailClocks)

	if len(entries) != len(DetailClocks) {
		t.Fatalf("entries = %d, want %d", len(entries), len(DetailClocks))
	}
	for i, e := range entries {
		if e.City != DetailClocks[i] {
			t.Errorf("entry %d city = %+v, want %+v", i, e.City, DetailClocks[i])
		}
		if e.Time == "" {
			t.Errorf("entry %d has empty time", i)
		}
	}
}

func TestCityLists(t *testing.T) {
	t.Parallel()

	if len(HomeClocks) != 3 {
		t.Errorf("home clocks = %d, want 3", len(HomeClocks))
	}
	if len(DetailClocks) != 6 {
		t.Errorf("detail clocks = %d, want 6", len(DetailClocks))
	}
	for _, city := range append(append([]snapshot.City{}, HomeClocks...), DetailClocks...) {
		if _, err := time.LoadLocation(city.Timezone); err != nil {
			t.Errorf("%s: bad zone %q: %v", city.Label, city.Timezone, err)
		}
	}
}
