// Package playerbar renders the transport bar from a playback snapshot.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Track info, controls and sliders on separate lines
)

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeExpanded {
		return ModeCompact
	}
	return ModeExpanded
}

const noTrackText = "No song playing"

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 5 // 3 content rows + 2 border rows
	}
	return 3 // top border + content + bottom border
}

// Render returns the player bar for the given width.
// An empty session still renders, with the controls disabled.
func Render(snap playback.Snapshot, mode DisplayMode, width int) string {
	if mode == ModeExpanded {
		return renderExpanded(snap, width)
	}
	return renderCompact(snap, width)
}

func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		Width(max(width-2, 0))
}

// Title · Artist  ♥   ▶ 1:23 ━━━━───── 3:45   [S] [R]   Vol ━━── 50
func renderCompact(snap playback.Snapshot, width int) string {
	innerWidth := max(width-4, 0)
	right := compactRight(snap)
	infoWidth, barWidth := compactWidths(innerWidth, lipgloss.Width(right))
	info := render.TruncateAndPadEllipsis(trackInfo(snap), infoWidth)

	var line string
	if barWidth >= minCompactBar {
		line = info + "   " + RenderProgress(snap, barWidth) + "   " + right
	} else {
		line = render.Row(info, right, innerWidth)
	}

	return barStyle(width).Render(line)
}

const minCompactBar = 12

func compactRight(snap playback.Snapshot) string {
	return strings.Join([]string{
		statusIcon(snap),
		modeIcons(snap),
		RenderVolume(snap, 5),
	}, "   ")
}

// compactWidths splits the compact line: the track info gets at most a
// third, the slider the rest.
func compactWidths(innerWidth, rightWidth int) (info, bar int) {
	info = max(min(innerWidth/3, innerWidth-rightWidth-20), 10)
	return info, innerWidth - info - rightWidth - 6
}

func renderExpanded(snap playback.Snapshot, width int) string {
	innerWidth := max(width-4, 0)
	if innerWidth < 40 {
		return renderCompact(snap, width)
	}

	// Line 1: title and heart. Line 2: artist · album.
	title := noTrackText
	var meta string
	if t, ok := snap.Current(); ok {
		title = titleStyle().Render(render.Sanitize(t.Title))
		if snap.CurrentLiked() {
			title += " " + styles.T().S().Liked.Render(likedIcon())
		}
		meta = trackMeta(t)
	} else {
		title = styles.T().S().Muted.Render(title)
	}

	volume := RenderVolume(snap, expandedVolumeWidth)
	controls := renderControls(snap)
	progress := RenderProgress(snap, expandedProgressWidth(innerWidth, controls, volume))

	lines := []string{
		render.TruncateEllipsis(title, innerWidth),
		render.TruncateEllipsis(styles.T().S().Muted.Render(meta), innerWidth),
		render.Row(controls+"   "+progress, volume, innerWidth),
	}
	return barStyle(width).Render(strings.Join(lines, "\n"))
}

const expandedVolumeWidth = 10

func expandedProgressWidth(innerWidth int, controls, volume string) int {
	return max(innerWidth-lipgloss.Width(controls)-lipgloss.Width(volume)-6, 10)
}

func trackInfo(snap playback.Snapshot) string {
	t, ok := snap.Current()
	if !ok {
		return styles.T().S().Muted.Render(noTrackText)
	}
	info := titleStyle().Render(render.Sanitize(t.Title))
	if t.Artist != "" {
		info += styles.T().S().Muted.Render(" · " + render.Sanitize(t.Artist))
	}
	if snap.CurrentLiked() {
		info += " " + styles.T().S().Liked.Render(likedIcon())
	}
	return info
}

func trackMeta(t playlist.Track) string {
	parts := []string{render.Sanitize(t.Artist)}
	if t.AlbumTitle != "" {
		parts = append(parts, render.Sanitize(t.AlbumTitle))
	}
	return strings.Join(parts, " · ")
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}
