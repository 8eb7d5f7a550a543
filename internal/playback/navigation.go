package playback

// Rand is the random source used for shuffle picks.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// ResolveNext picks the queue index to move to from cursor.
// It returns false when the queue is exhausted and playback should stop.
//
// Rules, first match wins:
//  1. RepeatTrack on a natural track end replays the same index.
//  2. Shuffle picks a uniformly random index other than cursor
//     (the same index when the queue has a single track).
//  3. UserPrevious steps back; at 0 it wraps under RepeatQueue and
//     otherwise stays at 0.
//  4. UserNext and TrackEnded step forward; past the end they wrap under
//     RepeatQueue and otherwise report exhaustion.
func ResolveNext(length, cursor int, shuffle bool, mode RepeatMode, reason AdvanceReason, rng Rand) (int, bool) {
	if length <= 0 || cursor < 0 || cursor >= length {
		return -1, false
	}

	if mode == RepeatTrack && !reason.IsUser() {
		return cursor, true
	}

	if shuffle {
		if length == 1 {
			return cursor, true
		}
		// Draw from the length-1 other slots and skip over cursor.
		idx := rng.IntN(length - 1)
		if idx >= cursor {
			idx++
		}
		return idx, true
	}

	if reason == UserPrevious {
		if cursor > 0 {
			return cursor - 1, true
		}
		if mode == RepeatQueue {
			return length - 1, true
		}
		return 0, true
	}

	if cursor < length-1 {
		return cursor + 1, true
	}
	if mode == RepeatQueue {
		return 0, true
	}
	return -1, false
}
