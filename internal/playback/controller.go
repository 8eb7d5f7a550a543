package playback

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/llehouerou/encore/internal/playlist"
)

// Transport is the command surface page models and adapters depend on.
type Transport interface {
	// Play requests
	RequestPlay(track playlist.Track) error
	RequestPlayQueue(tracks []playlist.Track, start int) error
	RequestPlaySongs(songs []playlist.Song, start int) error
	RequestShufflePlay(tracks []playlist.Track) error

	// Transport control
	Play() error
	Pause()
	Toggle() error
	Stop()
	Clear()
	Next()
	Previous()
	Advance(reason AdvanceReason)
	Seek(seconds float64)
	SeekBy(delta float64)
	SeekPercent(pct float64)
	Tick(delta float64)

	// Volume
	SetVolume(level int)
	AdjustVolume(delta int)
	ToggleMute()

	// Modes
	SetShuffle(enabled bool)
	ToggleShuffle()
	SetRepeatMode(mode RepeatMode)
	CycleRepeat()
	ToggleLike(trackID string) bool
	ToggleLikeCurrent() bool

	// Observation
	Snapshot() Snapshot
	OnSnapshotChange(fn func(Snapshot)) (unsubscribe func())
	Subscribe() *Subscription
}

// Verify Controller implements Transport at compile time.
var _ Transport = (*Controller)(nil)

// Options configures a Controller.
type Options struct {
	Rand   Rand         // shuffle source; nil uses a time-seeded PCG
	Volume int          // initial volume, DefaultVolume when zero
	Liked  []string     // track ids liked on start
	Logger *slog.Logger // nil discards logs
}

type observer struct {
	id int
	fn func(Snapshot)
}

// Controller is the validating facade over a Session and its single
// writer. Every operation runs under one mutex; snapshots are delivered
// to observers after the mutex is released, strictly in mutation order.
type Controller struct {
	mu      sync.Mutex
	session *Session
	log     *slog.Logger

	seq          uint64
	pending      []Snapshot
	delivering   bool
	lastTrack    *playlist.Track
	lastTrackSeq uint64

	observers []observer
	nextID    int
	subs      []*Subscription
	closed    bool
}

// NewController creates a controller owning a fresh empty session.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)) //nolint:gosec // shuffle order
	}
	s := NewSession(rng)
	if opts.Volume != 0 {
		s.SetVolume(opts.Volume)
	}
	for _, id := range opts.Liked {
		if !s.Snapshot().IsLiked(id) {
			s.ToggleLike(id)
		}
	}
	return &Controller{
		session: s,
		log:     logger.With("component", "playback"),
	}
}

// apply runs fn against the session under the lock and queues a snapshot
// if anything changed. A rejected operation leaves state untouched.
func (c *Controller) apply(op string, fn func(s *Session) error) error {
	c.mu.Lock()
	before := c.session.version
	if err := fn(c.session); err != nil {
		c.mu.Unlock()
		c.log.Warn("operation rejected", "op", op, "error", err)
		return err
	}
	if c.session.version != before {
		c.seq++
		snap := c.session.Snapshot()
		snap.Seq = c.seq
		c.pending = append(c.pending, snap)
		c.log.Debug("session updated", "op", op, "seq", snap.Seq,
			"state", snap.State, "cursor", snap.Cursor, "progress", snap.Progress)
	}
	c.mu.Unlock()

	c.flush()
	return nil
}

func (c *Controller) do(op string, fn func(s *Session)) {
	_ = c.apply(op, func(s *Session) error {
		fn(s)
		return nil
	})
}

// flush delivers queued snapshots. Only one goroutine delivers at a time:
// a mutation made from inside a callback, or from another goroutine while
// a delivery is running, is queued and delivered by the running loop, so
// that mutation may return before its snapshot reaches observers. A
// panicking observer releases delivery; snapshots still queued go out
// with the next mutation.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	c.mu.Unlock()

	finished := false
	defer func() {
		if !finished {
			c.mu.Lock()
			c.delivering = false
			c.mu.Unlock()
		}
	}()

	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			// Cleared under the same lock that saw the queue empty, so no
			// snapshot queued by another goroutine is left behind.
			c.delivering = false
			finished = true
			c.mu.Unlock()
			return
		}
		batch := c.pending
		c.pending = nil
		observers := slices.Clone(c.observers)
		subs := slices.Clone(c.subs)
		c.mu.Unlock()

		for _, snap := range batch {
			change, changed := c.trackChange(snap)
			for _, o := range observers {
				o.fn(snap)
			}
			for _, sub := range subs {
				sub.sendSnapshot(snap)
				if changed {
					sub.sendTrack(change)
				}
			}
		}
	}
}

// trackChange compares snap with the last delivered track.
// Only called by the delivering goroutine.
func (c *Controller) trackChange(snap Snapshot) (TrackChange, bool) {
	if snap.TrackSeq == c.lastTrackSeq {
		return TrackChange{}, false
	}
	var current *playlist.Track
	if t, ok := snap.Current(); ok {
		current = &t
	}
	change := TrackChange{
		Previous: c.lastTrack,
		Current:  current,
		Index:    snap.Cursor,
	}
	c.lastTrack = current
	c.lastTrackSeq = snap.TrackSeq
	return change, true
}

// --- Play requests ---

// RequestPlay replaces the queue with a single track and plays it.
func (c *Controller) RequestPlay(track playlist.Track) error {
	return c.RequestPlayQueue([]playlist.Track{track}, 0)
}

// RequestPlayQueue replaces the queue and plays from start.
func (c *Controller) RequestPlayQueue(tracks []playlist.Track, start int) error {
	q, err := playlist.BuildQueue(tracks, start)
	if err != nil {
		c.log.Warn("play request rejected", "tracks", len(tracks), "start", start, "error", err)
		return err
	}
	return c.apply("load", func(s *Session) error {
		return s.Load(q)
	})
}

// RequestPlaySongs parses the songs' display durations and plays them
// from start. A malformed duration rejects the whole request.
func (c *Controller) RequestPlaySongs(songs []playlist.Song, start int) error {
	tracks, err := playlist.FromSongs(songs)
	if err != nil {
		c.log.Warn("play request rejected", "songs", len(songs), "error", err)
		return err
	}
	return c.RequestPlayQueue(tracks, start)
}

// RequestShufflePlay enables shuffle and plays tracks from a random start.
func (c *Controller) RequestShufflePlay(tracks []playlist.Track) error {
	if len(tracks) == 0 {
		_, err := playlist.BuildQueue(tracks, 0)
		return err
	}
	return c.apply("shuffle-load", func(s *Session) error {
		q, err := playlist.BuildQueue(tracks, s.rng.IntN(len(tracks)))
		if err != nil {
			return err
		}
		s.SetShuffle(true)
		return s.Load(q)
	})
}

// --- Transport ---

// Play resumes the current track. Returns ErrNoActiveTrack on an empty queue.
func (c *Controller) Play() error {
	return c.apply("play", func(s *Session) error { return s.Play() })
}

// Pause pauses playback.
func (c *Controller) Pause() {
	c.do("pause", func(s *Session) { s.Pause() })
}

// Toggle toggles between play and pause.
func (c *Controller) Toggle() error {
	return c.apply("toggle", func(s *Session) error { return s.Toggle() })
}

// Stop halts playback and rewinds, keeping the queue.
func (c *Controller) Stop() {
	c.do("stop", func(s *Session) { s.Stop() })
}

// Clear empties the queue and stops.
func (c *Controller) Clear() {
	c.do("clear", func(s *Session) { s.Clear() })
}

// Next advances on user request.
func (c *Controller) Next() {
	c.Advance(UserNext)
}

// Previous steps back on user request.
func (c *Controller) Previous() {
	c.Advance(UserPrevious)
}

// Advance moves the cursor for the given reason.
func (c *Controller) Advance(reason AdvanceReason) {
	c.do("advance", func(s *Session) { s.Advance(reason) })
}

// Seek moves to an absolute position in seconds.
func (c *Controller) Seek(seconds float64) {
	c.do("seek", func(s *Session) { s.Seek(seconds) })
}

// SeekBy moves relative to the current position.
func (c *Controller) SeekBy(delta float64) {
	c.do("seek", func(s *Session) { s.Seek(s.progress + delta) })
}

// SeekPercent moves to pct (0-100) of the current track.
func (c *Controller) SeekPercent(pct float64) {
	c.do("seek", func(s *Session) {
		pct = min(max(pct, 0), 100)
		s.Seek(s.currentDuration() * pct / 100)
	})
}

// Tick advances the progress clock by delta seconds.
func (c *Controller) Tick(delta float64) {
	c.do("tick", func(s *Session) { s.Tick(delta) })
}

// --- Volume ---

// SetVolume sets the volume (clamped to 0-100); a positive level unmutes.
func (c *Controller) SetVolume(level int) {
	c.do("volume", func(s *Session) { s.SetVolume(level) })
}

// AdjustVolume changes the volume by delta.
func (c *Controller) AdjustVolume(delta int) {
	c.do("volume", func(s *Session) { s.SetVolume(s.volume + delta) })
}

// ToggleMute flips mute.
func (c *Controller) ToggleMute() {
	c.do("mute", func(s *Session) { s.ToggleMute() })
}

// --- Modes ---

// SetShuffle enables or disables shuffle.
func (c *Controller) SetShuffle(enabled bool) {
	c.do("shuffle", func(s *Session) { s.SetShuffle(enabled) })
}

// ToggleShuffle flips shuffle.
func (c *Controller) ToggleShuffle() {
	c.do("shuffle", func(s *Session) { s.ToggleShuffle() })
}

// SetRepeatMode sets the repeat mode.
func (c *Controller) SetRepeatMode(mode RepeatMode) {
	c.do("repeat", func(s *Session) { s.SetRepeatMode(mode) })
}

// CycleRepeat steps the repeat mode.
func (c *Controller) CycleRepeat() {
	c.do("repeat", func(s *Session) { s.CycleRepeat() })
}

// ToggleLike flips the liked status of trackID and returns the new status.
func (c *Controller) ToggleLike(trackID string) bool {
	var liked bool
	c.do("like", func(s *Session) { liked = s.ToggleLike(trackID) })
	return liked
}

// ToggleLikeCurrent flips the liked status of the current track.
// Returns false when nothing is loaded.
func (c *Controller) ToggleLikeCurrent() bool {
	var liked bool
	c.do("like", func(s *Session) {
		if t, ok := s.queue.Current(); ok {
			liked = s.ToggleLike(t.ID)
		}
	})
	return liked
}

// --- Observation ---

// Snapshot returns an immutable copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.session.Snapshot()
	snap.Seq = c.seq
	return snap
}

// OnSnapshotChange registers fn to receive a snapshot after every
// mutation, synchronously and in mutation order.
// The returned function unregisters it.
func (c *Controller) OnSnapshotChange(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.observers = slices.DeleteFunc(c.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

// Subscribe creates a new channel-based subscription.
// After Close, the returned subscription is already done.
func (c *Controller) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close ends every subscription. Transport operations keep working;
// callback observers stay registered.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	return nil
}
