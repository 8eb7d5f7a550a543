package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/errmsg"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampCursors()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case LoadingMessage:
		return m.handleLoadingMsg(msg)
	}

	return m, nil
}

// handlePlaybackMsg routes session messages.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.transport.Tick(m.tick.Seconds())
		m.refresh()
		return m, TickCmd(m.tick)

	case SnapshotMsg:
		// Local mutations refresh eagerly, so a buffered snapshot may be older.
		if msg.Snapshot.Seq > m.snap.Seq {
			m.snap = msg.Snapshot
		}
		return m, WatchSession(m.sub)

	case TrackChangedMsg:
		if t := msg.Change.Current; t != nil {
			m.log.Debug("track changed", "id", t.ID, "index", msg.Change.Index)
		}
		return m, WatchSession(m.sub)

	case SessionClosedMsg:
		m.sub = nil
		return m, nil
	}
	return m, nil
}

// handleLoadingMsg applies catalog query results.
func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BrowseLoadedMsg:
		if msg.Err != nil {
			m.fail(errmsg.Format(errmsg.OpCatalogLoad, msg.Err), msg.Err)
			return m, nil
		}
		page := m.browse(msg.Page)
		page.entries = msg.Entries
		page.loaded = true
		page.cursor.ClampToBounds(len(page.entries), m.browseHeight())
		return m, nil

	case AlbumLoadedMsg:
		return m.handleAlbumLoaded(msg)
	}
	return m, nil
}

func (m Model) handleAlbumLoaded(msg AlbumLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		op := errmsg.OpAlbumLoad
		if msg.Album.ID == catalog.LikedSongsID {
			op = errmsg.OpLikedLoad
		}
		m.fail(errmsg.Format(op, msg.Err), msg.Err)
		if msg.Open && m.album.loading {
			m.album.loading = false
			if m.page == PageAlbum && len(m.album.songs) == 0 {
				m.page = m.album.from
			}
		}
		return m, nil
	}

	// An open request only lands if it is still the pending one.
	if msg.Open && m.album.loading && m.album.album.ID == msg.Album.ID {
		m.album.album = msg.Album
		m.album.songs = msg.Songs
		m.album.loading = false
		m.album.cursor.ClampToBounds(len(msg.Songs), m.albumHeight())
	}

	if msg.Play {
		err := m.transport.RequestPlaySongs(msg.Songs, 0)
		m.report(errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Album.Title, err), err)
		m.refresh()
	}
	return m, nil
}

// fail records a user-visible failure.
func (m *Model) fail(text string, err error) {
	m.status = text
	m.log.Warn(text, "err", err)
}

// report sets the status line when err is non-nil.
func (m *Model) report(text string, err error) {
	if err != nil {
		m.fail(text, err)
	}
}

func (m *Model) clampCursors() {
	m.home.cursor.ClampToBounds(len(m.home.entries), m.browseHeight())
	m.library.cursor.ClampToBounds(len(m.library.entries), m.browseHeight())
	m.album.cursor.ClampToBounds(len(m.album.songs), m.albumHeight())
}
