//go:build linux

package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/encore/internal/playback"
)

const noTrackPath = "/org/mpris/MediaPlayer2/TrackList/NoTrack"

// ignoreEmpty drops ErrNoActiveTrack: a media key pressed with nothing queued
// is not a D-Bus error.
func ignoreEmpty(err error) error {
	if errors.Is(err, playback.ErrNoActiveTrack) {
		return nil
	}
	return err
}

func trackObjectPath(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

func toSeconds(us types.Microseconds) float64 {
	return float64(us) / 1e6
}

func toMicroseconds(seconds float64) types.Microseconds {
	return types.Microseconds(math.Round(seconds * 1e6))
}

func playbackStatusFor(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateStopped:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func loopStatusFor(m playback.RepeatMode) types.LoopStatus {
	switch m {
	case playback.RepeatTrack:
		return types.LoopStatusTrack
	case playback.RepeatQueue:
		return types.LoopStatusPlaylist
	case playback.RepeatOff:
		return types.LoopStatusNone
	}
	return types.LoopStatusNone
}

func repeatModeFor(s types.LoopStatus) playback.RepeatMode {
	switch s {
	case types.LoopStatusTrack:
		return playback.RepeatTrack
	case types.LoopStatusPlaylist:
		return playback.RepeatQueue
	case types.LoopStatusNone:
		return playback.RepeatOff
	}
	return playback.RepeatOff
}

// volumeToMPRIS maps 0..100 onto the MPRIS 0.0..1.0 range.
func volumeToMPRIS(level int) float64 {
	return float64(level) / 100
}

// volumeFromMPRIS maps an MPRIS volume back to 0..100. Values above 1.0
// are legal on the bus but clamp here.
func volumeFromMPRIS(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 100
	}
	return int(math.Round(v * 100))
}

func metadataFor(snap playback.Snapshot) types.Metadata {
	t, ok := snap.Current()
	if !ok {
		return types.Metadata{TrackId: dbus.ObjectPath(noTrackPath)}
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(trackObjectPath(t.ID)),
		Length:  toMicroseconds(float64(t.Duration)),
		Title:   t.Title,
		Artist:  []string{t.Artist},
		Album:   t.AlbumTitle,
		ArtUrl:  t.ArtURL,
	}
	if snap.Cursor >= 0 {
		meta.TrackNumber = snap.Cursor + 1
	}
	return meta
}
