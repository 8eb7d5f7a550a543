package playback

import "github.com/llehouerou/encore/internal/playlist"

// TrackChange is emitted when a track starts from the top.
//
// Emitted by:
//   - Load (any RequestPlay* call)
//   - Advance to another index, or a replay under RepeatTrack
//   - Clear (Current is nil)
//
// NOT emitted by:
//   - Previous at the first track without repeat (a re-seek)
//   - Seek, Pause, Play, Stop
//
// Observers that react once per track (desktop notifications, MPRIS
// metadata) listen to this rather than diffing snapshots.
type TrackChange struct {
	Previous *playlist.Track
	Current  *playlist.Track
	Index    int
}
