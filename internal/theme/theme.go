package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme carries the two e-ink palettes: a light "paper" face for the day
// and an inverted dark face for the night window.
type Theme struct {
	inverted   bool
	background color.Color
	foreground color.Color
	muted      color.Color
	base       lipgloss.Style
}

func New(inverted bool) Theme {
	var t Theme
	t.inverted = inverted

	if inverted {
		t.background = ColorInk
		t.foreground = ColorPaper
		t.muted = ColorMutedDark
	} else {
		t.background = ColorPaper
		t.foreground = ColorInk
		t.muted = ColorMutedLight
	}
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Inverted() bool          { return t.inverted }
func (t Theme) Background() color.Color { return t.background }
func (t Theme) Foreground() color.Color { return t.foreground }

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) Bold() lipgloss.Style {
	return t.base.Bold(true)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.muted)
}

func (t Theme) Card() lipgloss.Style {
	return t.base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.muted).
		Padding(0, 1)
}

func (t Theme) CardFocused() lipgloss.Style {
	return t.base.
		Border(lipgloss.ThickBorder()).
		BorderForeground(t.foreground).
		Padding(0, 1)
}

func (t Theme) Positive() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorUp)
}

func (t Theme) Negative() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDown)
}
