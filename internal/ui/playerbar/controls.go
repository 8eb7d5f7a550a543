package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// statusIcon is the play/pause button: it shows the action it would take.
func statusIcon(snap playback.Snapshot) string {
	if !snap.HasTrack() {
		return disabled().Render(icons.Play())
	}
	if snap.State == playback.StatePlaying {
		return active().Render(icons.Pause())
	}
	return styles.T().S().Base.Render(icons.Play())
}

// modeIcons shows shuffle and repeat, dimmed when off.
func modeIcons(snap playback.Snapshot) string {
	return shuffleIcon(snap) + " " + repeatIcon(snap)
}

func shuffleIcon(snap playback.Snapshot) string {
	if snap.Shuffle {
		return active().Render(icons.Shuffle())
	}
	return disabled().Render(icons.Shuffle())
}

func repeatIcon(snap playback.Snapshot) string {
	switch snap.Repeat {
	case playback.RepeatQueue:
		return active().Render(icons.RepeatAll())
	case playback.RepeatTrack:
		return active().Render(icons.RepeatOne())
	default:
		return disabled().Render(icons.RepeatAll())
	}
}

// renderControls draws: shuffle  prev  play/pause  next  repeat
func renderControls(snap playback.Snapshot) string {
	prev := disabled().Render(icons.Previous())
	if snap.CanGoPrevious() {
		prev = styles.T().S().Base.Render(icons.Previous())
	}
	next := disabled().Render(icons.Next())
	if snap.CanGoNext() {
		next = styles.T().S().Base.Render(icons.Next())
	}

	return strings.Join([]string{
		shuffleIcon(snap), prev, statusIcon(snap), next, repeatIcon(snap),
	}, "  ")
}

func likedIcon() string {
	return icons.Favorite()
}

func active() lipgloss.Style {
	return styles.T().S().Active
}

func disabled() lipgloss.Style {
	return styles.T().S().Disabled
}
