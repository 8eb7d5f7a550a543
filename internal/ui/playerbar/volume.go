package playerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// RenderVolume renders the volume slider. A muted session shows 0 while the
// stored level is kept for unmute.
// Format: "🔊 ━━━── 50" or "🔇 ───── 0"
func RenderVolume(snap playback.Snapshot, barWidth int) string {
	level := snap.EffectiveVolume()
	icon := icons.Volume(snap.Muted)

	filled := SliderFill(float64(level), barWidth)
	bar := lipgloss.NewStyle().Foreground(styles.T().FgBase).Render(strings.Repeat("━", filled)) +
		styles.T().S().Subtle.Render(strings.Repeat("─", max(barWidth-filled, 0)))

	return styles.T().S().Muted.Render(icon) + " " + bar + " " +
		styles.T().S().Muted.Render(padLeft(strconv.Itoa(level), 3))
}

func padLeft(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
