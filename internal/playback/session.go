package playback

import (
	"errors"
	"fmt"
	"math"

	"github.com/llehouerou/encore/internal/playlist"
)

// ErrNoActiveTrack is returned when a transport command needs a loaded
// track and the queue is empty.
var ErrNoActiveTrack = errors.New("no active track")

const (
	// DefaultVolume is the volume of a fresh session.
	DefaultVolume = 50
	// MaxVolume is the upper bound of the volume scale.
	MaxVolume = 100
)

// Session is the playback state machine: queue, transport status, progress,
// volume and mode flags. It is not safe for concurrent use; Controller is
// its only owner and serializes every call.
//
// Every mutator is total (out-of-range input is clamped) except Play on an
// empty queue, which returns ErrNoActiveTrack and changes nothing.
type Session struct {
	queue    playlist.Queue
	state    State
	progress float64 // seconds into the current track

	volume  int
	muted   bool
	shuffle bool
	repeat  RepeatMode
	liked   map[string]struct{}

	rng Rand

	// version increments on every effective mutation.
	version uint64
	// trackSeq increments every time a track starts from the top.
	trackSeq uint64
}

// NewSession creates an empty, stopped session.
// rng drives shuffle picks.
func NewSession(rng Rand) *Session {
	return &Session{
		queue:  playlist.EmptyQueue(),
		state:  StateStopped,
		volume: DefaultVolume,
		liked:  make(map[string]struct{}),
		rng:    rng,
	}
}

func (s *Session) touch() {
	s.version++
}

func (s *Session) startTrack() {
	s.progress = 0
	s.trackSeq++
}

// currentDuration returns the current track duration in seconds, 0 if none.
func (s *Session) currentDuration() float64 {
	t, ok := s.queue.Current()
	if !ok {
		return 0
	}
	return float64(t.Duration)
}

// Load replaces the queue, rewinds and starts playing. Valid from any state.
func (s *Session) Load(q playlist.Queue) error {
	if q.IsEmpty() {
		return fmt.Errorf("%w: no tracks", playlist.ErrInvalidQueue)
	}
	s.queue = q
	s.state = StatePlaying
	s.startTrack()
	s.touch()
	return nil
}

// Play resumes or starts the current track.
func (s *Session) Play() error {
	if s.queue.IsEmpty() {
		return ErrNoActiveTrack
	}
	if s.state == StatePlaying {
		return nil
	}
	s.state = StatePlaying
	s.touch()
	return nil
}

// Pause pauses a playing track; no-op otherwise.
func (s *Session) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.state = StatePaused
	s.touch()
}

// Toggle plays when not playing, pauses otherwise.
func (s *Session) Toggle() error {
	if s.state == StatePlaying {
		s.Pause()
		return nil
	}
	return s.Play()
}

// Stop halts playback and rewinds, keeping the queue.
func (s *Session) Stop() {
	if s.state == StateStopped && s.progress == 0 {
		return
	}
	s.state = StateStopped
	s.progress = 0
	s.touch()
}

// Clear resets to an empty, stopped session. Volume, modes and likes survive.
func (s *Session) Clear() {
	if s.queue.IsEmpty() && s.state == StateStopped {
		return
	}
	s.queue = playlist.EmptyQueue()
	s.state = StateStopped
	s.startTrack()
	s.touch()
}

// Seek moves within the current track, clamped to [0, duration].
// The transport status is unchanged.
func (s *Session) Seek(target float64) {
	if s.queue.IsEmpty() {
		return
	}
	if math.IsNaN(target) {
		target = 0
	}
	target = min(max(target, 0), s.currentDuration())
	if target == s.progress {
		return
	}
	s.progress = target
	s.touch()
}

// Tick advances progress while playing. Reaching the end of the track
// triggers Advance(TrackEnded); leftover time is not carried over.
func (s *Session) Tick(delta float64) {
	if s.state != StatePlaying || !(delta > 0) {
		return
	}
	next := s.progress + delta
	if next >= s.currentDuration() {
		s.Advance(TrackEnded)
		return
	}
	s.progress = next
	s.touch()
}

// Advance moves the cursor according to the navigation policy.
// When the policy reports exhaustion the session stops and rewinds.
// User navigation keeps the transport status; a natural track end keeps
// playing.
func (s *Session) Advance(reason AdvanceReason) {
	if s.queue.IsEmpty() {
		return
	}
	cursor := s.queue.Cursor()
	idx, ok := ResolveNext(s.queue.Len(), cursor, s.shuffle, s.repeat, reason, s.rng)
	if !ok {
		s.state = StateStopped
		s.progress = 0
		s.touch()
		return
	}

	if idx == cursor && reason.IsUser() {
		// Previous at the top of a non-repeating queue: re-seek to start.
		s.progress = 0
		s.touch()
		return
	}

	s.queue, _ = s.queue.At(idx)
	s.startTrack()
	s.touch()
}

// SetVolume sets the volume clamped to [0, 100]. A positive level unmutes.
func (s *Session) SetVolume(level int) {
	level = min(max(level, 0), MaxVolume)
	muted := s.muted
	if level > 0 {
		muted = false
	}
	if level == s.volume && muted == s.muted {
		return
	}
	s.volume = level
	s.muted = muted
	s.touch()
}

// ToggleMute flips the muted flag without touching volume.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
	s.touch()
}

// SetShuffle enables or disables shuffle.
func (s *Session) SetShuffle(enabled bool) {
	if s.shuffle == enabled {
		return
	}
	s.shuffle = enabled
	s.touch()
}

// ToggleShuffle flips the shuffle flag.
func (s *Session) ToggleShuffle() {
	s.SetShuffle(!s.shuffle)
}

// SetRepeatMode sets the repeat mode.
func (s *Session) SetRepeatMode(mode RepeatMode) {
	if mode < RepeatOff || mode > RepeatTrack || mode == s.repeat {
		return
	}
	s.repeat = mode
	s.touch()
}

// CycleRepeat steps Off → Queue → Track → Off.
func (s *Session) CycleRepeat() {
	s.SetRepeatMode(s.repeat.Next())
}

// ToggleLike adds or removes id from the liked set and returns the new
// membership. Independent of playback state.
func (s *Session) ToggleLike(id string) bool {
	if id == "" {
		return false
	}
	_, liked := s.liked[id]
	if liked {
		delete(s.liked, id)
	} else {
		s.liked[id] = struct{}{}
	}
	s.touch()
	return !liked
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	liked := make(map[string]struct{}, len(s.liked))
	for id := range s.liked {
		liked[id] = struct{}{}
	}
	return Snapshot{
		TrackSeq: s.trackSeq,
		State:    s.state,
		Progress: s.progress,
		Volume:   s.volume,
		Muted:    s.muted,
		Shuffle:  s.shuffle,
		Repeat:   s.repeat,
		Cursor:   s.queue.Cursor(),
		tracks:   s.queue.Tracks(),
		liked:    liked,
	}
}
