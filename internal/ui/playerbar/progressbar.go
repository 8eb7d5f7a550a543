package playerbar

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// RenderProgress renders the seek slider.
// Format: 1:23 ━━━━━───── 3:45
func RenderProgress(snap playback.Snapshot, width int) string {
	pos, dur := progressLabels(snap)

	timeStyle := styles.T().S().Muted
	barWidth := width - lipgloss.Width(pos) - lipgloss.Width(dur) - 2
	if barWidth < minSliderCells {
		// Too narrow for bar, just show times
		return timeStyle.Render(pos + " / " + dur)
	}

	filled := SliderFill(snap.ProgressPercent(), barWidth)
	return timeStyle.Render(pos) + " " + styles.GradientBar(filled, barWidth) + " " + timeStyle.Render(dur)
}

const minSliderCells = 3

func progressLabels(snap playback.Snapshot) (pos, dur string) {
	return playlist.FormatDuration(int(snap.Progress)), playlist.FormatDuration(snap.Duration())
}

// SliderFill converts a 0-100 slider value into filled cells.
func SliderFill(pct float64, width int) int {
	if width <= 0 || math.IsNaN(pct) {
		return 0
	}
	pct = min(max(pct, 0), 100)
	return int(math.Round(pct / 100 * float64(width)))
}

// SeekTarget maps a column inside the slider to a 0-100 seek value.
// Columns outside the bar clamp to its ends.
func SeekTarget(col, width int) float64 {
	if width <= 1 {
		return 0
	}
	col = min(max(col, 0), width-1)
	return float64(col) / float64(width-1) * 100
}

// SeekAt maps a click at (x, y), relative to the bar's top-left corner,
// to a 0-100 seek value. ok is false when the click misses the slider.
func SeekAt(snap playback.Snapshot, mode DisplayMode, width, x, y int) (pct float64, ok bool) {
	row, start, cells := sliderSpan(snap, mode, width)
	if cells < minSliderCells || y != row || x < start || x >= start+cells {
		return 0, false
	}
	return SeekTarget(x-start, cells), true
}

// sliderSpan locates the slider cells inside the rendered bar.
// Columns count the left border and padding.
func sliderSpan(snap playback.Snapshot, mode DisplayMode, width int) (row, start, cells int) {
	const inset = 2
	innerWidth := max(width-4, 0)
	pos, dur := progressLabels(snap)
	labels := lipgloss.Width(pos) + lipgloss.Width(dur) + 2

	if mode == ModeExpanded && innerWidth >= 40 {
		controls := renderControls(snap)
		progress := expandedProgressWidth(innerWidth, controls, RenderVolume(snap, expandedVolumeWidth))
		start = inset + lipgloss.Width(controls) + 3 + lipgloss.Width(pos) + 1
		return 3, start, progress - labels
	}

	info, bar := compactWidths(innerWidth, lipgloss.Width(compactRight(snap)))
	if bar < minCompactBar {
		return 1, 0, 0
	}
	start = inset + info + 3 + lipgloss.Width(pos) + 1
	return 1, start, bar - labels
}
