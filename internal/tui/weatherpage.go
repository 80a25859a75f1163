package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/altay/inkdash/internal/icons"
	"github.com/altay/inkdash/internal/tui/components/hourly"
)

// WeatherView is the weather detail page: current conditions, the 7-day
// strip, and up to ten hourly rows.
func (m *Model) WeatherView() string {
	if !m.weather.has {
		return m.cardStatus(m.weather.loading, m.weather.err, "No weather data")
	}

	cur := m.weather.rec.Data.Current
	current := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold().Render(fmt.Sprintf("%s %.0f°", icons.Weather(cur.Code), cur.Temperature)),
		cur.Text,
		m.theme.Muted().Render(fmt.Sprintf("High %.0f°  Low %.0f°", cur.High, cur.Low)),
	)

	sections := []string{
		current,
		"",
		m.theme.Bold().Render("This week"),
		m.weekStripView(),
		"",
		m.theme.Bold().Render("Hourly"),
		m.hourlyView(),
	}
	if m.weather.rec.Stale(m.now) {
		sections = append(sections, "", m.theme.Muted().Render("Updated "+m.weather.rec.Updated+" (old)"))
	}
	if m.weather.err != nil {
		sections = append(sections, "", m.theme.Negative().Render(errorLine(m.weather.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) hourlyView() string {
	rows := hourly.Rows(m.weather.rec.Data.Hourly)
	if len(rows) == 0 {
		return m.theme.Muted().Render(hourly.NoData)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, m.theme.Muted().Render(
		fmt.Sprintf("%-6s %-3s %6s %6s %8s", "Time", "", "Temp", "Rain", "Wind"),
	))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-6s %-3s %6s %6s %8s", r.Time, r.Glyph, r.Temp, r.Precip, r.Wind))
	}
	return strings.Join(lines, "\n")
}
