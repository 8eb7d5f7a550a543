package playlist

import "fmt"

// FromSongs converts catalog songs to tracks, parsing every display duration.
// The first malformed duration aborts the conversion.
func FromSongs(songs []Song) ([]Track, error) {
	result := make([]Track, len(songs))
	for i := range songs {
		t, err := songs[i].Track()
		if err != nil {
			return nil, fmt.Errorf("song %q: %w", songs[i].ID, err)
		}
		result[i] = t
	}
	return result, nil
}
