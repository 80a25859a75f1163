// Package hourly renders the hourly forecast table on the weather detail
// page: at most ten rows of time, glyph, temperature, precipitation
// chance, and wind.
package hourly

import (
	"fmt"
	"math"
	"time"

	"github.com/altay/inkdash/internal/icons"
	"github.com/altay/inkdash/internal/snapshot"
)

// NoData is the placeholder shown when no hourly series is available.
const NoData = "No hourly data"

const maxRows = 10

// Row is one rendered table row.
type Row struct {
	Time   string
	Glyph  string
	Temp   string
	Precip string
	Wind   string
}

// Rows builds the table rows in series order, capped at ten. A nil or
// empty series yields no rows; callers render NoData.
func Rows(h *snapshot.WeatherHourly) []Row {
	if h == nil || len(h.Time) == 0 {
		return nil
	}

	n := min(len(h.Time), maxRows)
	rows := make([]Row, 0, n)

	for i := range n {
		row := Row{
			Time:   hourLabel(h.Time[i]),
			Glyph:  icons.Glyph(icons.KindCloud),
			Temp:   "--",
			Precip: "--",
			Wind:   "--",
		}
		if i < len(h.Code) {
			row.Glyph = icons.Weather(h.Code[i])
		}
		if i < len(h.Temperature) {
			row.Temp = fmt.Sprintf("%d°", int(math.Round(h.Temperature[i])))
		}
		if i < len(h.Precipitation) {
			row.Precip = fmt.Sprintf("%d%%", h.Precipitation[i])
		}
		if i < len(h.WindSpeed) {
			row.Wind = fmt.Sprintf("%d mph", int(math.Round(h.WindSpeed[i])))
		}
		rows = append(rows, row)
	}
	return rows
}

// hourLabel renders the upstream local-time stamp as HH:MM. The forecast
// is already in the requested zone, so the wall-clock text is kept as-is.
func hourLabel(stamp string) string {
	t, err := time.Parse("2006-01-02T15:04", stamp)
	if err != nil {
		return "--:--"
	}
	return t.Format("15:04")
}
