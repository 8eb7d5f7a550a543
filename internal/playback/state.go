// internal/playback/state.go
package playback

// State represents the transport status.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded for playback (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatQueue
	RepeatTrack
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatQueue:
		return "Queue"
	case RepeatTrack:
		return "Track"
	default:
		return "Unknown"
	}
}

// Next returns the mode that follows m in the cycle Off → Queue → Track → Off.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatQueue
	case RepeatQueue:
		return RepeatTrack
	default:
		return RepeatOff
	}
}

// ParseRepeatMode converts a config or MPRIS-ish name to a RepeatMode.
// Unknown names map to RepeatOff.
func ParseRepeatMode(s string) RepeatMode {
	switch s {
	case "queue", "all", "playlist":
		return RepeatQueue
	case "track", "one":
		return RepeatTrack
	default:
		return RepeatOff
	}
}

// AdvanceReason says why the cursor is moving.
type AdvanceReason int

const (
	UserNext AdvanceReason = iota
	UserPrevious
	TrackEnded
)

// String returns the reason name.
func (r AdvanceReason) String() string {
	switch r {
	case UserNext:
		return "UserNext"
	case UserPrevious:
		return "UserPrevious"
	case TrackEnded:
		return "TrackEnded"
	default:
		return "Unknown"
	}
}

// IsUser returns true for navigation the user asked for.
func (r AdvanceReason) IsUser() bool {
	return r == UserNext || r == UserPrevious
}
