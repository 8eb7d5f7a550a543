// Package playlist holds the immutable track and queue values shared by the
// catalog, the playback session and its observers.
package playlist

import "time"

// Track represents a single playable track.
// Tracks are values: the session stores copies, never references into a
// caller's slice.
type Track struct {
	ID         string // opaque catalog identifier
	Title      string
	Artist     string
	AlbumTitle string // optional
	AlbumID    string // optional
	ArtURL     string // optional
	Duration   int    // whole seconds, never negative
}

// Length returns the track duration as a time.Duration.
func (t Track) Length() time.Duration {
	return time.Duration(t.Duration) * time.Second
}

// NewTrack builds a track, clamping a negative duration to zero.
func NewTrack(id, title, artist string, durationSeconds int) Track {
	return Track{
		ID:       id,
		Title:    title,
		Artist:   artist,
		Duration: max(durationSeconds, 0),
	}
}

// Song is a catalog row as list pages know it: same identity as a Track
// but with the duration still in its display form ("3:45").
type Song struct {
	ID          string
	Title       string
	Artist      string
	Album       string
	AlbumID     string
	ArtURL      string
	Duration    string // e.g. "3:45"
	TrackNumber int
}

// Track converts the song into a Track, parsing its display duration.
func (s Song) Track() (Track, error) {
	secs, err := ParseDuration(s.Duration)
	if err != nil {
		return Track{}, err
	}
	return Track{
		ID:         s.ID,
		Title:      s.Title,
		Artist:     s.Artist,
		AlbumTitle: s.Album,
		AlbumID:    s.AlbumID,
		ArtURL:     s.ArtURL,
		Duration:   secs,
	}, nil
}
