// Package weekstrip renders the 7-day forecast strip: one column per day
// with short weekday, condition glyph, and rounded high/low.
package weekstrip

import (
	"fmt"
	"math"
	"time"

	"github.com/altay/inkdash/internal/icons"
	"github.com/altay/inkdash/internal/snapshot"
)

// NoForecast is the single placeholder shown for an empty forecast.
const NoForecast = "No forecast"

// Day is one rendered column.
type Day struct {
	Label string
	Glyph string
	High  string
	Low   string
}

// Days builds the strip columns in forecast order, truncated to seven.
// An empty forecast yields no columns; callers render NoForecast.
func Days(daily snapshot.WeatherDaily) []Day {
	n := min(len(daily.Time), 7)
	days := make([]Day, 0, n)

	for i := range n {
		day := Day{Label: shortWeekday(daily.Time[i]), Glyph: icons.Glyph(icons.KindCloud)}
		if i < len(daily.Code) {
			day.Glyph = icons.Weather(daily.Code[i])
		}
		if i < len(daily.High) {
			day.High = fmt.Sprintf("%d°", int(math.Round(daily.High[i])))
		}
		if i < len(daily.Low) {
			day.Low = fmt.Sprintf("%d°", int(math.Round(daily.Low[i])))
		}
		days = append(days, day)
	}
	return days
}

func shortWeekday(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "--"
	}
	return t.Weekday().String()[:3]
}
