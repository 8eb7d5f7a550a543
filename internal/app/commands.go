package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
)

// queryTimeout bounds a single catalog query.
const queryTimeout = 5 * time.Second

// TickCmd returns a command that sends TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchSession waits for the next session event and converts it to a
// tea.Msg. Update re-issues it after each event.
func WatchSession(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case snap := <-sub.Snapshots:
			return SnapshotMsg{Snapshot: snap}
		case e := <-sub.TrackChanged:
			return TrackChangedMsg{Change: e}
		case <-sub.Done:
			return SessionClosedMsg{}
		}
	}
}

// loadBrowseCmd queries the albums shown on a browse page.
func loadBrowseCmd(cat Catalog, page Page) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		var entries []AlbumEntry
		if page == PageLibrary {
			entries = append(entries, AlbumEntry{Album: catalog.LikedAlbum()})
		}
		for _, section := range page.sections() {
			albums, err := cat.Albums(ctx, section)
			if err != nil {
				return BrowseLoadedMsg{Page: page, Err: err}
			}
			for _, a := range albums {
				count, err := cat.SongCount(ctx, a.ID)
				if err != nil {
					return BrowseLoadedMsg{Page: page, Err: err}
				}
				entries = append(entries, AlbumEntry{Album: a, Count: count})
			}
		}
		return BrowseLoadedMsg{Page: page, Entries: entries}
	}
}

// loadAlbumCmd queries an album's songs. The liked pseudo-album resolves
// liked against the catalog.
func loadAlbumCmd(cat Catalog, id string, liked []string, open, play bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		msg := AlbumLoadedMsg{Album: catalog.Album{ID: id}, Open: open, Play: play}
		if id == catalog.LikedSongsID {
			msg.Album = catalog.LikedAlbum()
			msg.Songs, msg.Err = cat.SongsByIDs(ctx, liked)
			return msg
		}

		album, err := cat.Album(ctx, id)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Album = album
		var songs []playlist.Song
		songs, msg.Err = cat.Songs(ctx, id)
		msg.Songs = songs
		return msg
	}
}
