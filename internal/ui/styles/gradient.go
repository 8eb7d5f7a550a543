package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders text in bold, one color per grapheme,
// blended from one color to the other.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := blendColors(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colors[i]).Render(cluster))
	}
	return b.String()
}

// GradientBar renders a progress bar of width cells. The first filled
// cells blend from Primary to Secondary across the full width, so the
// head color tracks progress; the rest is a dim track.
func GradientBar(filled, width int) string {
	if width <= 0 {
		return ""
	}
	filled = min(max(filled, 0), width)

	var b strings.Builder
	colors := blendColors(width, T().Primary, T().Secondary)
	for i := range filled {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render("━"))
	}
	if rest := width - filled; rest > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(T().FgSubtle).Render(strings.Repeat("─", rest)))
	}
	return b.String()
}

// blendColors returns size colors from one end to the other, blended in
// HCL space.
func blendColors(size int, from, to lipgloss.Color) []lipgloss.Color {
	switch size {
	case 0:
		return nil
	case 1:
		return []lipgloss.Color{from}
	}

	start := toColorful(from)
	end := toColorful(to)
	colors := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = lipgloss.Color(start.BlendHcl(end, t).Clamped().Hex())
	}
	return colors
}

// toColorful parses a "#rrggbb" color. ANSI palette indexes have no
// fixed RGB value and blend as neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
