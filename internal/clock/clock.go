package clock

import (
	"fmt"
	"time"
)

// Parts is the wall-clock breakdown the dashboard paints from. All string
// fields are zero-padded; Hour24 is kept numeric for the night-window rule.
type Parts struct {
	Weekday string
	Year    string
	Month   string
	Day     string
	Hour    string
	Minute  string
	Hour24  int
}

// Now computes Parts for the given instant in loc. When use24h is false the
// Hour field is 12-hour without padding, matching the display format.
func Now(t time.Time, loc *time.Location, use24h bool) Parts {
	t = t.In(loc)

	hour := fmt.Sprintf("%02d", t.Hour())
	if !use24h {
		hour = fmt.Sprintf("%d", ((t.Hour()+11)%12)+1)
	}

	return Parts{
		Weekday: t.Weekday().String(),
		Year:    fmt.Sprintf("%04d", t.Year()),
		Month:   fmt.Sprintf("%02d", int(t.Month())),
		Day:     fmt.Sprintf("%02d", t.Day()),
		Hour:    hour,
		Minute:  fmt.Sprintf("%02d", t.Minute()),
		Hour24:  t.Hour(),
	}
}

// FormatTime renders HH:MM (24h) or H:MM AM/PM (12h).
func FormatTime(t time.Time, use24h bool) string {
	h, m := t.Hour(), t.Minute()
	if use24h {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	hh := ((h + 11) % 12) + 1
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hh, m, ampm)
}

// Display is the top-clock string for these parts.
func (p Parts) Display() string {
	return p.Hour + ":" + p.Minute
}

// DateLine is the full header line: MM/DD/YYYY · Weekday · HH:MM.
func (p Parts) DateLine() string {
	return fmt.Sprintf("%s/%s/%s · %s · %s:%s", p.Month, p.Day, p.Year, p.Weekday, p.Hour, p.Minute)
}

// Greeting picks the salutation for an hour of day.
func Greeting(hour24 int) string {
	switch {
	case hour24 >= 5 && hour24 < 12:
		return "Good morning"
	case hour24 >= 12 && hour24 < 17:
		return "Good afternoon"
	case hour24 >= 17 && hour24 < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}
