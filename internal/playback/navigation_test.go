package playback

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRand returns queued values in order, then repeats the last one.
type fixedRand struct {
	values []int
	calls  []int
}

func (r *fixedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v % n
}

func TestResolveNext_Sequential(t *testing.T) {
	tests := []struct {
		name   string
		length int
		cursor int
		mode   RepeatMode
		reason AdvanceReason
		want   int
		ok     bool
	}{
		{"next middle", 3, 0, RepeatOff, UserNext, 1, true},
		{"ended middle", 3, 1, RepeatOff, TrackEnded, 2, true},
		{"next at end off", 3, 2, RepeatOff, UserNext, -1, false},
		{"ended at end off", 3, 2, RepeatOff, TrackEnded, -1, false},
		{"next at end queue wraps", 3, 2, RepeatQueue, UserNext, 0, true},
		{"ended at end queue wraps", 3, 2, RepeatQueue, TrackEnded, 0, true},
		{"previous middle", 3, 2, RepeatOff, UserPrevious, 1, true},
		{"previous at start off stays", 3, 0, RepeatOff, UserPrevious, 0, true},
		{"previous at start queue wraps", 3, 0, RepeatQueue, UserPrevious, 2, true},
		{"previous at start track stays", 3, 0, RepeatTrack, UserPrevious, 0, true},
		{"ended repeat track replays", 3, 1, RepeatTrack, TrackEnded, 1, true},
		{"next repeat track moves on", 3, 1, RepeatTrack, UserNext, 2, true},
		{"next repeat track at end exhausts", 3, 2, RepeatTrack, UserNext, -1, false},
		{"single track ended off", 1, 0, RepeatOff, TrackEnded, -1, false},
		{"single track ended queue", 1, 0, RepeatQueue, TrackEnded, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveNext(tt.length, tt.cursor, false, tt.mode, tt.reason, &fixedRand{})
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveNext_InvalidInput(t *testing.T) {
	_, ok := ResolveNext(0, 0, false, RepeatQueue, UserNext, &fixedRand{})
	assert.False(t, ok, "empty queue")

	_, ok = ResolveNext(3, 3, false, RepeatQueue, UserNext, &fixedRand{})
	assert.False(t, ok, "cursor out of range")

	_, ok = ResolveNext(3, -1, true, RepeatQueue, UserNext, &fixedRand{})
	assert.False(t, ok, "negative cursor")
}

func TestResolveNext_RepeatTrackBeatsShuffle(t *testing.T) {
	r := &fixedRand{values: []int{0}}
	got, ok := ResolveNext(5, 3, true, RepeatTrack, TrackEnded, r)

	assert.True(t, ok)
	assert.Equal(t, 3, got)
	assert.Empty(t, r.calls, "rng must not be consulted for a track replay")
}

func TestResolveNext_ShuffleSkipsCursor(t *testing.T) {
	// With length 4 and cursor 1, draws 0,1,2 map to 0,2,3.
	tests := []struct {
		draw int
		want int
	}{
		{0, 0},
		{1, 2},
		{2, 3},
	}
	for _, tt := range tests {
		r := &fixedRand{values: []int{tt.draw}}
		got, ok := ResolveNext(4, 1, true, RepeatOff, UserNext, r)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "draw %d", tt.draw)
		assert.Equal(t, []int{3}, r.calls, "should draw from length-1 slots")
	}
}

func TestResolveNext_ShuffleSingleTrack(t *testing.T) {
	r := &fixedRand{}
	got, ok := ResolveNext(1, 0, true, RepeatOff, TrackEnded, r)

	assert.True(t, ok)
	assert.Equal(t, 0, got)
	assert.Empty(t, r.calls)
}

func TestResolveNext_ShuffleNeverExhausts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cursor := 0
	for range 500 {
		next, ok := ResolveNext(6, cursor, true, RepeatOff, TrackEnded, rng)
		if !ok {
			t.Fatal("shuffle reported exhaustion")
		}
		if next == cursor {
			t.Fatalf("shuffle picked the current index %d", cursor)
		}
		if next < 0 || next >= 6 {
			t.Fatalf("index %d out of range", next)
		}
		cursor = next
	}
}

func TestResolveNext_ShuffleIsUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	counts := make([]int, 5)
	const draws = 20000
	for range draws {
		next, _ := ResolveNext(5, 2, true, RepeatOff, UserNext, rng)
		counts[next]++
	}

	assert.Zero(t, counts[2])
	for i, c := range counts {
		if i == 2 {
			continue
		}
		// Expected 5000 each; allow a generous band.
		assert.InDelta(t, draws/4, c, 500, "index %d", i)
	}
}

func TestResolveNext_ShuffleDeterministicWithSeed(t *testing.T) {
	walk := func() []int {
		rng := rand.New(rand.NewPCG(99, 99))
		var seq []int
		cursor := 0
		for range 10 {
			cursor, _ = ResolveNext(8, cursor, true, RepeatOff, TrackEnded, rng)
			seq = append(seq, cursor)
		}
		return seq
	}

	assert.Equal(t, walk(), walk())
}
