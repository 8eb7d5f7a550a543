// Package headerbar renders the page tabs line.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab names, also used to select the active one.
const (
	TabHome    = "home"
	TabLibrary = "library"
)

type tab struct {
	key  string
	name string
	id   string
}

var tabs = []tab{
	{"1", "Home", TabHome},
	{"2", "Your Library", TabLibrary},
}

const brand = "encore"

// Render returns the header line: brand and tabs on the left, right
// aligned to the edge. The result is exactly width cells.
func Render(active, right string, width int) string {
	if width < 20 {
		return render.EmptyLine(max(width, 0))
	}

	s := styles.T().S()
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		keyStyle, nameStyle := s.Subtle, s.Muted
		if t.id == active {
			keyStyle, nameStyle = s.Active.Bold(true), s.Title
		}
		parts = append(parts, keyStyle.Render(t.key)+" "+nameStyle.Render(t.name))
	}

	left := styles.ApplyBoldGradient(brand, styles.T().Primary, styles.T().Secondary) +
		"  " + strings.Join(parts, s.Subtle.Render(" │ "))
	line := render.Row(left, s.Muted.Render(right), width)
	if w := lipgloss.Width(line); w < width {
		line += render.EmptyLine(width - w)
	}
	return line
}
