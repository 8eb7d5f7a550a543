package playlist

import (
	"errors"
	"fmt"
)

// ErrInvalidQueue is returned when a queue is built from no tracks or with
// a start index outside of them.
var ErrInvalidQueue = errors.New("invalid queue")

// Queue is an ordered list of tracks with a cursor on the current one.
// The zero value is the empty queue. A non-empty queue always has
// 0 <= cursor < Len().
type Queue struct {
	tracks []Track
	cursor int
}

// EmptyQueue returns a queue with no tracks.
func EmptyQueue() Queue {
	return Queue{cursor: -1}
}

// BuildQueue copies tracks into a new queue positioned at start. A track
// with a negative duration makes the queue invalid.
func BuildQueue(tracks []Track, start int) (Queue, error) {
	if len(tracks) == 0 {
		return EmptyQueue(), fmt.Errorf("%w: no tracks", ErrInvalidQueue)
	}
	if start < 0 || start >= len(tracks) {
		return EmptyQueue(), fmt.Errorf("%w: start index %d out of range [0,%d)",
			ErrInvalidQueue, start, len(tracks))
	}
	for i := range tracks {
		if tracks[i].Duration < 0 {
			return EmptyQueue(), fmt.Errorf("%w: track %q has negative duration %d",
				ErrInvalidQueue, tracks[i].ID, tracks[i].Duration)
		}
	}
	owned := make([]Track, len(tracks))
	copy(owned, tracks)
	return Queue{tracks: owned, cursor: start}, nil
}

// Current returns the track under the cursor.
// The second value is false for an empty queue.
func (q Queue) Current() (Track, bool) {
	if q.IsEmpty() {
		return Track{}, false
	}
	return q.tracks[q.cursor], true
}

// Cursor returns the index of the current track (-1 if empty).
func (q Queue) Cursor() int {
	if q.IsEmpty() {
		return -1
	}
	return q.cursor
}

// At returns a copy of the queue with the cursor moved to index.
// Returns false and the unchanged queue if index is out of range.
func (q Queue) At(index int) (Queue, bool) {
	if index < 0 || index >= len(q.tracks) {
		return q, false
	}
	q.cursor = index
	return q, true
}

// Tracks returns a copy of all tracks.
func (q Queue) Tracks() []Track {
	result := make([]Track, len(q.tracks))
	copy(result, q.tracks)
	return result
}

// Len returns the number of tracks.
func (q Queue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q Queue) IsEmpty() bool {
	return len(q.tracks) == 0
}

// HasNext returns true if there's a track after the current one.
func (q Queue) HasNext() bool {
	return !q.IsEmpty() && q.cursor < len(q.tracks)-1
}
