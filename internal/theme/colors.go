package theme

import "charm.land/lipgloss/v2"

var (
	ColorPaper = lipgloss.Color("#E8E6E3") // day background / night foreground
	ColorInk   = lipgloss.Color("#14161A") // day foreground / night background

	ColorMutedLight = lipgloss.Color("#6B6F76") // secondary text on paper
	ColorMutedDark  = lipgloss.Color("#8A8F98") // secondary text on ink
)

var (
	ColorUp   = lipgloss.Color("#2E9E5B") // positive market change
	ColorDown = lipgloss.Color("#C94B3C") // negative market change
)
