// Package worldclock holds the fixed city grids and per-zone time
// formatting for the world-clock card and detail page.
package worldclock

import (
	"fmt"
	"time"

	"github.com/altay/inkdash/internal/snapshot"
)

// HomeClocks is the three-row strip on the dashboard card.
var HomeClocks = []snapshot.City{
	{Label: "Los Angeles", Timezone: "America/Los_Angeles"},
	{Label: "Denver", Timezone: "America/Denver"},
	{Label: "New York", Timezone: "America/New_York"},
}

// DetailClocks is the fixed grid on the detail page.
var DetailClocks = []snapshot.City{
	{Label: "Los Angeles", Timezone: "America/Los_Angeles"},
	{Label: "New York", Timezone: "America/New_York"},
	{Label: "London", Timezone: "Europe/London"},
	{Label: "Istanbul", Timezone: "Europe/Istanbul"},
	{Label: "Dubai", Timezone: "Asia/Dubai"},
	{Label: "Mumbai", Timezone: "Asia/Kolkata"},
}

// DefaultCustomClock shows on the custom card until the user searches.
var DefaultCustomClock = snapshot.City{Label: "Chicago", Timezone: "America/Chicago"}

// Entry is one rendered row: a city with its local time.
type Entry struct {
	City snapshot.City
	Time string
}

// FormatTime renders the instant in the city's zone as zero-padded
// 12-hour time. An unknown zone renders as "--:--" rather than failing
// the whole grid.
func FormatTime(t time.Time, city snapshot.City) string {
	loc, err := time.LoadLocation(city.Timezone)
	if err != nil {
		return "--:--"
	}
	local := t.In(loc)

	h := ((local.Hour() + 11) % 12) + 1
	ampm := "AM"
	if local.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h, local.Minute(), ampm)
}

// Entries renders a city list at the given instant, in order.
func Entries(t time.Time, cities []snapshot.City) []Entry {
	entries := make([]Entry, 0, len(cities))
	for _, city := range cities {
		entries = append(entries, Entry{City: city, Time: FormatTime(t, city)})
	}
	return entries
}
