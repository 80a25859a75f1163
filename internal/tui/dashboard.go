package tui

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/altay/inkdash/internal/clock"
	"github.com/altay/inkdash/internal/icons"
	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/tui/components/weekstrip"
	"github.com/altay/inkdash/internal/worldclock"
)

const cardWidth = 32

func greetingLine(hour24 int, name string) string {
	if name == "" {
		return clock.Greeting(hour24)
	}
	return clock.Greeting(hour24) + ", " + name
}

// DashboardView is the home grid: four cards in two rows, the focused one
// drawn with a heavy border.
func (m *Model) DashboardView() string {
	cards := []string{
		m.card(0, icons.Chart, "Markets", m.marketsCard()),
		m.card(1, icons.Week, "Weather", m.weatherCard()),
		m.card(2, icons.Road, "Commute", m.commuteCard()),
		m.card(3, icons.Globe, "World Clock", m.worldClockCard()),
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], " ", cards[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m *Model) card(index int, glyph, title, body string) string {
	style := m.theme.Card()
	if index == m.focus {
		style = m.theme.CardFocused()
	}

	header := m.theme.Bold().Render(glyph + " " + title)
	return style.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, body),
	)
}

func (m *Model) marketsCard() string {
	if !m.markets.has {
		return m.cardStatus(m.markets.loading, m.markets.err, "No market data")
	}

	data := m.markets.rec.Data
	lines := make([]string, 0, len(data.Symbols)+1)
	for _, sym := range sortedSymbols(data.Symbols) {
		q := data.Symbols[sym]
		change := m.changeStyle(q.PercentChange).Render(snapshot.Percent(q.PercentChange))
		lines = append(lines, fmt.Sprintf("%-5s %9s  %s", sym, snapshot.Price(q.Price), change))
	}
	if data.MarketOpen != nil && !*data.MarketOpen {
		lines = append(lines, m.theme.Muted().Render("Market closed"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) changeStyle(v *float64) lipgloss.Style {
	if v != nil && *v < 0 {
		return m.theme.Negative()
	}
	return m.theme.Positive()
}

func sortedSymbols(quotes map[string]snapshot.Quote) []string {
	syms := make([]string, 0, len(quotes))
	for s := range quotes {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

func (m *Model) weatherCard() string {
	if !m.weather.has {
		return m.cardStatus(m.weather.loading, m.weather.err, "No weather data")
	}

	cur := m.weather.rec.Data.Current
	now := fmt.Sprintf("%s %.0f° %s", icons.Weather(cur.Code), cur.Temperature, cur.Text)
	if m.weather.rec.Stale(m.now) {
		now += " " + m.theme.Muted().Render("(old)")
	}
	hilo := m.theme.Muted().Render(fmt.Sprintf("H %.0f°  L %.0f°", cur.High, cur.Low))

	return lipgloss.JoinVertical(lipgloss.Left, now, hilo, m.weekStripView())
}

// weekStripView renders the 7-day strip as aligned columns.
func (m *Model) weekStripView() string {
	days := weekstrip.Days(m.weather.rec.Data.Daily)
	if len(days) == 0 {
		return m.theme.Muted().Render(weekstrip.NoForecast)
	}

	labels := make([]string, 0, len(days))
	glyphs := make([]string, 0, len(days))
	highs := make([]string, 0, len(days))
	lows := make([]string, 0, len(days))
	for _, d := range days {
		labels = append(labels, fmt.Sprintf("%-4s", d.Label))
		glyphs = append(glyphs, fmt.Sprintf("%-4s", d.Glyph))
		highs = append(highs, fmt.Sprintf("%-4s", d.High))
		lows = append(lows, fmt.Sprintf("%-4s", d.Low))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Muted().Render(strings.Join(labels, "")),
		strings.Join(glyphs, ""),
		strings.Join(highs, ""),
		m.theme.Muted().Render(strings.Join(lows, "")),
	)
}

func (m *Model) commuteCard() string {
	if !m.commuteConfigured() {
		return m.theme.Muted().Render("Set DASH_COMMUTE_FROM and\nDASH_COMMUTE_TO to enable")
	}
	if !m.traffic.has {
		return m.cardStatus(m.traffic.loading, m.traffic.err, "No commute data")
	}

	data := m.traffic.rec.Data
	status := snapshot.Status(data.Route.Ratio)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.statusStyle(status).Render(status)+"  "+snapshot.Minutes(data.Route.TravelTimeSec),
		m.theme.Muted().Render(data.From.Label+" → "+data.To.Label),
	)
}

func (m *Model) statusStyle(status string) lipgloss.Style {
	switch status {
	case "Light":
		return m.theme.Positive()
	case "Heavy", "Severe":
		return m.theme.Negative()
	default:
		return m.theme.Bold()
	}
}

func (m *Model) worldClockCard() string {
	entries := worldclock.Entries(m.now, worldclock.HomeClocks)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-8s %s", e.City.Label, e.Time))
	}
	return strings.Join(lines, "\n")
}

// cardStatus is the empty-card body: a spinner-less loading note, the
// fetch error, or the domain's no-data line.
func (m *Model) cardStatus(loading bool, err error, empty string) string {
	switch {
	case loading:
		return m.theme.Muted().Render("Loading…")
	case err != nil:
		return m.theme.Negative().Render(errorLine(err))
	default:
		return m.theme.Muted().Render(empty)
	}
}
