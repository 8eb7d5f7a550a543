package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws top over base with its top-left corner at (x, y).
// Cells outside top's visible width keep the base content, styles included.
func Overlay(base, top string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		lineWidth := ansi.StringWidth(line)
		if lineWidth == 0 {
			continue
		}

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		end := x + lineWidth
		result := ansi.Cut(baseLine, 0, x) + line
		if end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		baseLines[row] = result
	}
	return strings.Join(baseLines, "\n")
}

// Center overlays top in the middle of a width x height base.
func Center(base, top string, width, height int) string {
	topLines := strings.Split(top, "\n")
	topWidth := 0
	for _, l := range topLines {
		topWidth = max(topWidth, ansi.StringWidth(l))
	}
	x := max((width-topWidth)/2, 0)
	y := max((height-len(topLines))/2, 0)
	return Overlay(base, top, x, y, width)
}
