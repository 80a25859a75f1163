package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/worldclock"
)

// WorldClockView is the world-clock detail page: the fixed city list plus
// one custom slot replaceable through the search prompt.
func (m *Model) WorldClockView() string {
	entries := worldclock.Entries(m.now, worldclock.DetailClocks)
	lines := make([]string, 0, len(entries)+4)
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-10s %s", e.City.Label, e.Time))
	}

	custom := worldclock.Entries(m.now, []snapshot.City{m.customClock})
	lines = append(lines, "")
	for _, e := range custom {
		lines = append(lines, m.theme.Bold().Render(fmt.Sprintf("%-10s %s", e.City.Label, e.Time)))
	}

	lines = append(lines, "", m.searchView())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) searchView() string {
	if m.searching {
		return "Search: " + m.searchBuf + "▎"
	}

	var parts []string
	if m.searchErr != nil {
		parts = append(parts, m.theme.Negative().Render("City not found"))
	}
	parts = append(parts, m.theme.Muted().Render("Press / to change the custom city"))
	return strings.Join(parts, "\n")
}
