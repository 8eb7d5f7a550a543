//nolint:goconst // test file with repeated string literals
package playback

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/encore/internal/playlist"
)

func newTestSession() *Session {
	return NewSession(rand.New(rand.NewPCG(1, 1)))
}

func track(id string, seconds int) playlist.Track {
	return playlist.NewTrack(id, "Title "+id, "Artist", seconds)
}

func mustQueue(t *testing.T, start int, tracks ...playlist.Track) playlist.Queue {
	t.Helper()
	q, err := playlist.BuildQueue(tracks, start)
	require.NoError(t, err)
	return q
}

func TestNewSession_EmptyAndStopped(t *testing.T) {
	s := newTestSession()
	snap := s.Snapshot()

	assert.Equal(t, StateStopped, snap.State)
	assert.False(t, snap.HasTrack())
	assert.Equal(t, -1, snap.Cursor)
	assert.Equal(t, DefaultVolume, snap.Volume)
	assert.False(t, snap.Muted)
	assert.False(t, snap.Shuffle)
	assert.Equal(t, RepeatOff, snap.Repeat)
	assert.Empty(t, snap.LikedIDs())
}

func TestSession_LoadRoundTrip(t *testing.T) {
	s := newTestSession()
	q := mustQueue(t, 1, track("a", 100), track("b", 200), track("c", 300))

	require.NoError(t, s.Load(q))
	snap := s.Snapshot()

	assert.Equal(t, q.Tracks(), snap.Tracks())
	assert.Equal(t, q, snap.Queue())
	assert.Equal(t, 1, snap.Cursor)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestSession_LoadFromAnyState(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 100))))
	s.Seek(50)
	s.Pause()

	require.NoError(t, s.Load(mustQueue(t, 0, track("b", 200))))
	snap := s.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Zero(t, snap.Progress)
	cur, _ := snap.Current()
	assert.Equal(t, "b", cur.ID)

	s.Stop()
	require.NoError(t, s.Load(mustQueue(t, 0, track("c", 200))))
	assert.Equal(t, StatePlaying, s.Snapshot().State)
}

func TestSession_LoadEmptyQueueRejected(t *testing.T) {
	s := newTestSession()
	before := s.Snapshot()

	err := s.Load(playlist.EmptyQueue())

	require.ErrorIs(t, err, playlist.ErrInvalidQueue)
	assert.Equal(t, before, s.Snapshot())
}

func TestSession_PlayEmptyFailsWithoutChange(t *testing.T) {
	s := newTestSession()
	before := s.Snapshot()

	err := s.Play()

	require.ErrorIs(t, err, ErrNoActiveTrack)
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, StateStopped, s.Snapshot().State)
}

func TestSession_ToggleEmptyFails(t *testing.T) {
	s := newTestSession()
	require.ErrorIs(t, s.Toggle(), ErrNoActiveTrack)
}

func TestSession_PlayPauseToggle(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 100))))

	v := s.version
	require.NoError(t, s.Play())
	assert.Equal(t, v, s.version, "Play while playing is a no-op")

	s.Pause()
	assert.Equal(t, StatePaused, s.Snapshot().State)
	s.Pause()
	assert.Equal(t, StatePaused, s.Snapshot().State)

	require.NoError(t, s.Toggle())
	assert.Equal(t, StatePlaying, s.Snapshot().State)
	require.NoError(t, s.Toggle())
	assert.Equal(t, StatePaused, s.Snapshot().State)
}

func TestSession_PlayFromStoppedWithQueue(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 100))))
	s.Stop()
	require.Equal(t, StateStopped, s.Snapshot().State)

	require.NoError(t, s.Play())
	assert.Equal(t, StatePlaying, s.Snapshot().State)
}

func TestSession_PauseWhenStoppedIsNoop(t *testing.T) {
	s := newTestSession()
	v := s.version
	s.Pause()
	assert.Equal(t, v, s.version)
	assert.Equal(t, StateStopped, s.Snapshot().State)
}

func TestSession_SeekClampsAndKeepsStatus(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 180))))
	s.Pause()

	tests := []struct {
		target float64
		want   float64
	}{
		{30, 30},
		{-10, 0},
		{500, 180},
		{180, 180},
		{math.Inf(1), 180},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		s.Seek(tt.target)
		assert.InDelta(t, tt.want, s.Snapshot().Progress, 1e-9, "Seek(%v)", tt.target)
		assert.Equal(t, StatePaused, s.Snapshot().State)
	}
}

func TestSession_SeekSequenceLastWins(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 240))))

	for range 200 {
		x := rng.Float64()*600 - 200
		y := rng.Float64()*600 - 200
		s.Seek(x)
		s.Seek(y)
		want := min(max(y, 0), 240)
		require.InDelta(t, want, s.Snapshot().Progress, 1e-9)
	}
}

func TestSession_SeekEmptyIsNoop(t *testing.T) {
	s := newTestSession()
	v := s.version
	s.Seek(10)
	assert.Equal(t, v, s.version)
	assert.Zero(t, s.Snapshot().Progress)
}

func TestSession_TickAdvancesWhilePlaying(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 180))))

	s.Tick(1)
	s.Tick(1.5)
	assert.InDelta(t, 2.5, s.Snapshot().Progress, 1e-9)

	s.Pause()
	s.Tick(10)
	assert.InDelta(t, 2.5, s.Snapshot().Progress, 1e-9, "paused sessions do not tick")

	require.NoError(t, s.Play())
	s.Tick(0)
	s.Tick(-5)
	s.Tick(math.NaN())
	assert.InDelta(t, 2.5, s.Snapshot().Progress, 1e-9, "non-positive deltas are ignored")
}

func TestSession_TickAutoAdvanceScenario(t *testing.T) {
	s := newTestSession()
	q := mustQueue(t, 0, track("A", 180), track("B", 200))

	require.NoError(t, s.Load(q))
	require.NoError(t, s.Play()) // already playing: no-op
	s.Tick(180)

	snap := s.Snapshot()
	cur, ok := snap.Current()
	require.True(t, ok)
	assert.Equal(t, "B", cur.ID)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestSession_TickPastEndOfLastTrackStops(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("A", 10))))

	s.Tick(25)

	snap := s.Snapshot()
	assert.Equal(t, StateStopped, snap.State)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, 0, snap.Cursor, "queue and cursor survive exhaustion")
}

func TestSession_RepeatQueueCyclesForever(t *testing.T) {
	const n = 4
	s := newTestSession()
	tracks := make([]playlist.Track, n)
	for i := range tracks {
		tracks[i] = track(string(rune('a'+i)), 60)
	}
	require.NoError(t, s.Load(mustQueue(t, 0, tracks...)))
	s.SetRepeatMode(RepeatQueue)

	for step := 1; step <= 3*n; step++ {
		s.Advance(TrackEnded)
		snap := s.Snapshot()
		require.Equal(t, step%n, snap.Cursor, "step %d", step)
		require.Equal(t, StatePlaying, snap.State)
	}
}

func TestSession_EndOfQueueStopsWhenRepeatOff(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 2, track("a", 60), track("b", 60), track("c", 60))))
	s.Seek(30)

	s.Advance(TrackEnded)

	snap := s.Snapshot()
	assert.Equal(t, StateStopped, snap.State)
	assert.Zero(t, snap.Progress)
}

func TestSession_RepeatTrackReplays(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 60), track("b", 60))))
	s.SetRepeatMode(RepeatTrack)
	seq := s.Snapshot().TrackSeq

	s.Tick(60)

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Cursor)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Greater(t, snap.TrackSeq, seq, "a replay restarts the track")
}

func TestSession_PreviousAtStartReseeks(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 60), track("b", 60))))
	s.Seek(42)
	seq := s.Snapshot().TrackSeq

	s.Advance(UserPrevious)

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Cursor)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, seq, snap.TrackSeq, "a re-seek is not a track change")
}

func TestSession_UserNavigationKeepsPause(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 60), track("b", 60))))
	s.Pause()

	s.Advance(UserNext)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Cursor)
	assert.Equal(t, StatePaused, snap.State)
}

func TestSession_AdvanceEmptyIsNoop(t *testing.T) {
	s := newTestSession()
	v := s.version
	s.Advance(UserNext)
	s.Advance(TrackEnded)
	assert.Equal(t, v, s.version)
}

func TestSession_ShuffleUsesInjectedSource(t *testing.T) {
	r := &fixedRand{values: []int{2, 0}}
	s := NewSession(r)
	require.NoError(t, s.Load(mustQueue(t, 1, track("a", 60), track("b", 60), track("c", 60), track("d", 60))))
	s.ToggleShuffle()

	s.Advance(UserNext)
	assert.Equal(t, 3, s.Snapshot().Cursor) // draw 2 skips cursor 1
	s.Advance(TrackEnded)
	assert.Equal(t, 0, s.Snapshot().Cursor)
}

func TestSession_VolumeAndMute(t *testing.T) {
	s := newTestSession()

	s.SetVolume(80)
	assert.Equal(t, 80, s.Snapshot().EffectiveVolume())

	s.ToggleMute()
	snap := s.Snapshot()
	assert.True(t, snap.Muted)
	assert.Equal(t, 80, snap.Volume, "mute keeps volume")
	assert.Equal(t, 0, snap.EffectiveVolume())

	s.SetVolume(0)
	snap = s.Snapshot()
	assert.True(t, snap.Muted, "zero volume does not unmute")
	assert.Equal(t, 0, snap.Volume)

	s.SetVolume(30)
	snap = s.Snapshot()
	assert.False(t, snap.Muted, "positive volume unmutes")
	assert.Equal(t, 30, snap.EffectiveVolume())

	s.SetVolume(150)
	assert.Equal(t, MaxVolume, s.Snapshot().Volume)
	s.SetVolume(-20)
	assert.Equal(t, 0, s.Snapshot().Volume)
}

func TestSession_VolumeProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	s := newTestSession()

	for range 500 {
		if rng.IntN(3) == 0 {
			s.ToggleMute()
		}
		v := rng.IntN(140) - 20
		s.SetVolume(v)
		snap := s.Snapshot()
		clamped := min(max(v, 0), MaxVolume)
		if snap.Muted {
			require.Equal(t, 0, snap.EffectiveVolume())
		} else {
			require.Equal(t, clamped, snap.EffectiveVolume())
		}
		if clamped > 0 {
			require.False(t, snap.Muted)
		}
	}
}

func TestSession_CycleRepeat(t *testing.T) {
	s := newTestSession()
	want := []RepeatMode{RepeatQueue, RepeatTrack, RepeatOff}
	for _, w := range want {
		s.CycleRepeat()
		assert.Equal(t, w, s.Snapshot().Repeat)
	}
}

func TestSession_SetRepeatModeIgnoresUnknown(t *testing.T) {
	s := newTestSession()
	s.SetRepeatMode(RepeatMode(42))
	assert.Equal(t, RepeatOff, s.Snapshot().Repeat)
}

func TestSession_ToggleLikeRoundTrips(t *testing.T) {
	s := newTestSession()
	s.ToggleLike("t0")
	before := s.Snapshot().LikedIDs()

	assert.True(t, s.ToggleLike("t1"))
	assert.True(t, s.Snapshot().IsLiked("t1"))
	assert.False(t, s.ToggleLike("t1"))

	assert.Equal(t, before, s.Snapshot().LikedIDs())
	assert.False(t, s.Snapshot().IsLiked("t1"))
}

func TestSession_ToggleLikeIndependentOfPlayback(t *testing.T) {
	s := newTestSession()
	s.ToggleLike("nowhere")
	assert.Equal(t, StateStopped, s.Snapshot().State)
	assert.Equal(t, []string{"nowhere"}, s.Snapshot().LikedIDs())

	assert.False(t, s.ToggleLike(""), "empty id is ignored")
}

func TestSession_StopAndClear(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 1, track("a", 60), track("b", 60))))
	s.Seek(20)
	s.ToggleLike("a")
	s.SetVolume(70)

	s.Stop()
	snap := s.Snapshot()
	assert.Equal(t, StateStopped, snap.State)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, 2, snap.QueueLen())

	s.Clear()
	snap = s.Snapshot()
	assert.False(t, snap.HasTrack())
	assert.Equal(t, StateStopped, snap.State)
	assert.Equal(t, 70, snap.Volume)
	assert.True(t, snap.IsLiked("a"))
}

func TestSnapshot_IsDetached(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 60))))
	s.ToggleLike("a")

	snap := s.Snapshot()
	tracks := snap.Tracks()
	tracks[0].Title = "changed"
	ids := snap.LikedIDs()
	ids[0] = "zzz"

	fresh := s.Snapshot()
	cur, _ := fresh.Current()
	assert.Equal(t, "Title a", cur.Title)
	assert.True(t, fresh.IsLiked("a"))

	s.ToggleLike("a")
	assert.True(t, snap.IsLiked("a"), "old snapshot is unaffected by later mutations")
}

func TestSnapshot_Helpers(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(mustQueue(t, 0, track("a", 200), track("b", 60))))
	s.Seek(50)

	snap := s.Snapshot()
	assert.InDelta(t, 25.0, snap.ProgressPercent(), 1e-9)
	assert.Equal(t, 200, snap.Duration())
	assert.True(t, snap.IsActive("a"))
	assert.True(t, snap.IsPlaying("a"))
	assert.False(t, snap.IsActive("b"))
	assert.True(t, snap.CanGoNext())

	s.Pause()
	snap = s.Snapshot()
	assert.True(t, snap.IsActive("a"))
	assert.False(t, snap.IsPlaying("a"))

	s.Advance(UserNext)
	assert.False(t, s.Snapshot().CanGoNext())
	s.SetRepeatMode(RepeatQueue)
	assert.True(t, s.Snapshot().CanGoNext())
}
