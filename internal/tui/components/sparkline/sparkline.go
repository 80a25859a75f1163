// Package sparkline renders a small braille line chart for a close
// series, in the style of the markets detail page.
package sparkline

import (
	"strings"

	drawille "github.com/exrook/drawille-go"
)

// braille cells are 2 dots wide and 4 dots tall
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
)

// Render plots the series left to right into a widthCells x heightCells
// block. Fewer than two points yields an empty string; the caller shows
// its own placeholder.
func Render(series []float64, widthCells, heightCells int) string {
	if len(series) < 2 || widthCells < 1 || heightCells < 1 {
		return ""
	}

	var (
		dotsW = widthCells * dotsPerCellX
		dotsH = heightCells * dotsPerCellY
	)

	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	// scale a value to a dot row, row 0 at the top; a flat series plots
	// along the vertical middle
	scaleY := func(v float64) int {
		if hi == lo {
			return dotsH / 2
		}
		y := int(float64(dotsH-1) * (hi - v) / (hi - lo))
		return clamp(y, 0, dotsH-1)
	}
	scaleX := func(i int) int {
		x := i * (dotsW - 1) / (len(series) - 1)
		return clamp(x, 0, dotsW-1)
	}

	canvas := drawille.NewCanvas()
	for i := 1; i < len(series); i++ {
		drawSegment(&canvas,
			scaleX(i-1), scaleY(series[i-1]),
			scaleX(i), scaleY(series[i]),
		)
	}

	return canvasString(&canvas, dotsW, dotsH)
}

// drawSegment sets every dot on the line between two points.
func drawSegment(canvas *drawille.Canvas, x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	steps := max(dx, dy)
	if steps == 0 {
		canvas.Set(x0, y0)
		return
	}
	for s := 0; s <= steps; s++ {
		x := x0 + (x1-x0)*s/steps
		y := y0 + (y1-y0)*s/steps
		canvas.Set(x, y)
	}
}

// canvasString extracts the canvas padded to exact cell dimensions.
func canvasString(canvas *drawille.Canvas, dotsW, dotsH int) string {
	var (
		cellW = dotsW / dotsPerCellX
		cellH = dotsH / dotsPerCellY
		rows  = canvas.Rows(0, 0, dotsW, dotsH)
		lines = make([]string, 0, cellH)
	)

	for i := range cellH {
		var line string
		if i < len(rows) {
			line = rows[i]
		}
		runes := []rune(line)
		if len(runes) < cellW {
			line += strings.Repeat(" ", cellW-len(runes))
		} else if len(runes) > cellW {
			line = string(runes[:cellW])
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
