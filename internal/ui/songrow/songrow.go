// Package songrow renders one line of a song list, marked from the
// playback snapshot: the loaded song is highlighted, the playing one gets
// a play marker and liked songs a heart.
package songrow

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// State is what the session says about a row.
type State struct {
	Active  bool // loaded in the session, playing or paused
	Playing bool
	Liked   bool
}

// StateFor derives a row's state from a snapshot.
func StateFor(snap playback.Snapshot, id string) State {
	return State{
		Active:  snap.IsActive(id),
		Playing: snap.IsPlaying(id),
		Liked:   snap.IsLiked(id),
	}
}

// Options selects optional columns.
type Options struct {
	ShowTrackNumber bool // album pages; playlists show the index instead
	ShowAlbum       bool
	Selected        bool // cursor row
}

const (
	leadWidth     = 4
	likeWidth     = 2
	durationWidth = 7
	minTitleWidth = 8
)

// Render draws song as a row of exactly width cells.
// index is the zero-based position used when track numbers are hidden.
func Render(song playlist.Song, index int, st State, opts Options, width int) string {
	if width <= 0 {
		return ""
	}

	lead := leadCell(song, index, st, opts)
	like := ""
	if st.Liked {
		like = icons.Favorite()
	}
	duration := song.Duration

	flex := max(width-leadWidth-likeWidth-durationWidth, minTitleWidth)
	titleW, artistW, albumW := splitFlex(flex, opts.ShowAlbum)

	textStyle := styles.T().S().Base
	if st.Active {
		textStyle = styles.T().S().Active
	}
	if st.Playing {
		textStyle = styles.T().S().Playing
	}
	muted := styles.T().S().Muted

	row := render.Pad(lead, leadWidth) +
		textStyle.Render(render.TruncateAndPad(song.Title, titleW))
	if artistW > 0 {
		row += muted.Render(render.TruncateAndPad(song.Artist, artistW))
	}
	if albumW > 0 {
		row += muted.Render(render.TruncateAndPad(song.Album, albumW))
	}
	row += styles.T().S().Liked.Render(runewidth.FillRight(like, likeWidth)) +
		muted.Render(runewidth.FillLeft(duration, durationWidth))

	row = render.TruncateAndPadEllipsis(row, width)
	if opts.Selected {
		return styles.T().S().Cursor.Render(row)
	}
	return row
}

func leadCell(song playlist.Song, index int, st State, opts Options) string {
	switch {
	case st.Playing:
		return styles.T().S().Playing.Render(icons.Playing())
	case st.Active:
		return styles.T().S().Active.Render(icons.Pause())
	case opts.ShowTrackNumber && song.TrackNumber > 0:
		return styles.T().S().Muted.Render(strconv.Itoa(song.TrackNumber))
	default:
		return styles.T().S().Muted.Render(strconv.Itoa(index + 1))
	}
}

// splitFlex shares the flexible width: title gets half (or all when the
// row is narrow), artist and album split the rest.
func splitFlex(flex int, showAlbum bool) (title, artist, album int) {
	if flex < 3*minTitleWidth {
		return flex, 0, 0
	}
	if !showAlbum {
		title = flex * 3 / 5
		return title, flex - title, 0
	}
	title = flex / 2
	artist = (flex - title) / 2
	return title, artist, flex - title - artist
}
