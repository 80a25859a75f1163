package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case weatherPage:
		content = m.WeatherView()
	case marketsPage:
		content = m.MarketsView()
	case trafficPage:
		content = m.TrafficView()
	case worldclockPage:
		content = m.WorldClockView()
	default:
		content = m.DashboardView()
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		content,
	)

	page := lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight-1,
		lipgloss.Center,
		lipgloss.Top,
		body,
	)

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left, page, m.footerView()))
	return view
}

func (m *Model) headerView() string {
	greeting := m.theme.Bold().Render(greetingLine(m.parts.Hour24, m.deps.Cfg.Name))
	date := m.theme.Muted().Render(m.parts.DateLine())
	return lipgloss.JoinVertical(lipgloss.Left, greeting, date, "")
}

// footerView pins the key hints left and the last-load stamp right on one
// line spanning the viewport.
func (m *Model) footerView() string {
	hints := "1-4 cards · enter open · esc back · t theme · r refresh · q quit"
	if m.page != dashboardPage {
		hints = "esc back · t theme · r refresh · q quit"
	}
	if m.page == worldclockPage {
		hints = "/ search · x reset · esc back · t theme · q quit"
	}

	left := m.theme.Muted().Render(hints)
	right := m.theme.Muted().Render("Loaded " + m.loaded)

	gap := m.viewportWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
