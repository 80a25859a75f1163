package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/altay/inkdash/internal/snapshot"
)

// TrafficView is the commute detail page.
func (m *Model) TrafficView() string {
	if !m.commuteConfigured() {
		return m.theme.Muted().Render(
			"Commute is not configured.\n\nSet DASH_COMMUTE_FROM and DASH_COMMUTE_TO\nto addresses or place names.",
		)
	}
	if !m.traffic.has {
		return m.cardStatus(m.traffic.loading, m.traffic.err, "No commute data")
	}

	data := m.traffic.rec.Data
	route := data.Route
	status := snapshot.Status(route.Ratio)

	noTraffic := route.TravelTimeSec - route.DelaySec
	if noTraffic < 0 {
		noTraffic = 0
	}

	lines := []string{
		m.theme.Bold().Render(data.From.Label + " → " + data.To.Label),
		"",
		"Status      " + m.statusStyle(status).Render(status),
		"Travel      " + snapshot.Minutes(route.TravelTimeSec),
		"Delay       " + snapshot.Minutes(route.DelaySec),
		"No traffic  " + snapshot.Minutes(noTraffic),
		"Distance    " + snapshot.DistanceMiles(route.DistanceMeters),
		"",
		m.theme.Muted().Render("Updated " + m.traffic.rec.Updated),
	}
	if m.traffic.err != nil {
		lines = append(lines, "", m.theme.Negative().Render(errorLine(m.traffic.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
