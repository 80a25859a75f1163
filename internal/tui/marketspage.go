package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/altay/inkdash/internal/snapshot"
	"github.com/altay/inkdash/internal/tui/components/sparkline"
)

const (
	sparkWidth  = 24
	sparkHeight = 3
)

// MarketsView is the markets detail page: one block per symbol with
// price, daily and five-day change, the close range, and a sparkline of
// recent closes.
func (m *Model) MarketsView() string {
	if !m.markets.has {
		return m.cardStatus(m.markets.loading, m.markets.err, "No market data")
	}

	data := m.markets.rec.Data
	blocks := make([]string, 0, len(data.Symbols)+2)

	if data.MarketOpen != nil && !*data.MarketOpen {
		blocks = append(blocks, m.theme.Muted().Render("Market closed"), "")
	}

	for _, sym := range sortedSymbols(data.Symbols) {
		blocks = append(blocks, m.symbolBlock(sym, data.Symbols[sym], data.History[sym]), "")
	}

	if m.markets.err != nil {
		blocks = append(blocks, m.theme.Negative().Render(errorLine(m.markets.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) symbolBlock(sym string, q snapshot.Quote, history []snapshot.Close) string {
	head := m.theme.Bold().Render(sym) + "  " + snapshot.Price(q.Price) + "  " +
		m.changeStyle(q.PercentChange).Render(snapshot.Percent(q.PercentChange))

	lines := []string{head}

	if len(history) > 0 {
		fiveDay := snapshot.FiveDayChange(history)
		lines = append(lines, m.theme.Muted().Render(
			fmt.Sprintf("5D %s · Range %s", snapshot.Percent(fiveDay), snapshot.CloseRange(history)),
		))

		closes := make([]float64, 0, len(history))
		for _, c := range history {
			closes = append(closes, c.Close)
		}
		if spark := sparkline.Render(closes, sparkWidth, sparkHeight); spark != "" {
			lines = append(lines, m.theme.Muted().Render(spark))
		}

		for _, c := range history {
			price := c.Close
			lines = append(lines, m.theme.Muted().Render(
				fmt.Sprintf("%-12s %9s", c.Date, snapshot.Price(&price)),
			))
		}
	}

	return strings.Join(lines, "\n")
}
