package playback

import (
	"maps"
	"slices"

	"github.com/llehouerou/encore/internal/playlist"
)

// Snapshot is an immutable copy of the session state handed to observers.
// Holding one never gives access to the live session.
type Snapshot struct {
	Seq      uint64 // mutation sequence number, increasing
	TrackSeq uint64 // changes whenever a track starts from the top

	State    State
	Progress float64 // seconds
	Cursor   int     // -1 when the queue is empty
	Volume   int     // 0..100, unaffected by Muted
	Muted    bool
	Shuffle  bool
	Repeat   RepeatMode

	tracks []playlist.Track
	liked  map[string]struct{}
}

// Current returns the current track. The second value is false when
// nothing is loaded.
func (s Snapshot) Current() (playlist.Track, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.tracks) {
		return playlist.Track{}, false
	}
	return s.tracks[s.Cursor], true
}

// HasTrack returns true if a track is current.
func (s Snapshot) HasTrack() bool {
	_, ok := s.Current()
	return ok
}

// Tracks returns a copy of the queued tracks.
func (s Snapshot) Tracks() []playlist.Track {
	return slices.Clone(s.tracks)
}

// QueueLen returns the number of queued tracks.
func (s Snapshot) QueueLen() int {
	return len(s.tracks)
}

// Queue rebuilds the queue value the snapshot was taken from.
func (s Snapshot) Queue() playlist.Queue {
	q, err := playlist.BuildQueue(s.tracks, s.Cursor)
	if err != nil {
		return playlist.EmptyQueue()
	}
	return q
}

// Duration returns the current track duration in seconds, 0 if none.
func (s Snapshot) Duration() int {
	t, _ := s.Current()
	return t.Duration
}

// ProgressPercent returns progress through the current track (0-100).
func (s Snapshot) ProgressPercent() float64 {
	d := s.Duration()
	if d == 0 {
		return 0
	}
	return s.Progress / float64(d) * 100
}

// EffectiveVolume is the output level: 0 when muted, Volume otherwise.
func (s Snapshot) EffectiveVolume() int {
	if s.Muted {
		return 0
	}
	return s.Volume
}

// IsLiked reports whether id is in the liked set.
func (s Snapshot) IsLiked(id string) bool {
	_, ok := s.liked[id]
	return ok
}

// CurrentLiked reports whether the current track is liked.
func (s Snapshot) CurrentLiked() bool {
	t, ok := s.Current()
	return ok && s.IsLiked(t.ID)
}

// LikedIDs returns the liked track ids in sorted order.
func (s Snapshot) LikedIDs() []string {
	return slices.Sorted(maps.Keys(s.liked))
}

// IsActive reports whether id is the loaded track (playing or paused).
func (s Snapshot) IsActive(id string) bool {
	t, ok := s.Current()
	return ok && t.ID == id && s.State.IsActive()
}

// IsPlaying reports whether id is the loaded track and is playing.
func (s Snapshot) IsPlaying(id string) bool {
	return s.IsActive(id) && s.State == StatePlaying
}

// CanGoNext reports whether a next gesture would land on a track.
func (s Snapshot) CanGoNext() bool {
	if len(s.tracks) == 0 {
		return false
	}
	return s.Shuffle || s.Repeat == RepeatQueue || s.Queue().HasNext()
}

// CanGoPrevious reports whether a previous gesture does anything beyond
// the first track.
func (s Snapshot) CanGoPrevious() bool {
	return len(s.tracks) > 0
}
