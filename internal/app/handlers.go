package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/app/handler"
	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/ui/cursor"
	"github.com/llehouerou/encore/internal/ui/playerbar"
)

const (
	seekStep     = 5.0
	seekStepLong = 30.0
	volumeStep   = 5
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.showHelp {
		return m, m.handleHelpKeys(key)
	}

	m.status = ""
	_, cmd := handler.Chain(
		func() handler.Result { return m.handleGlobalKeys(key) },
		func() handler.Result { return m.handleTransportKeys(key) },
		func() handler.Result { return m.handlePageKeys(key) },
	)
	return m, cmd
}

// handleHelpKeys closes the help overlay; quit still quits.
func (m *Model) handleHelpKeys(key string) tea.Cmd {
	switch m.keys.ResolveIn(key, "global") { //nolint:exhaustive // only overlay actions
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp, keymap.ActionBack:
		m.showHelp = false
	}
	return nil
}

func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.keys.ResolveIn(key, "global") { //nolint:exhaustive // only global actions
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.showHelp = true
	case keymap.ActionViewHome:
		m.page = PageHome
	case keymap.ActionViewLibrary:
		m.page = PageLibrary
	case keymap.ActionBack:
		if m.page == PageAlbum {
			m.page = m.album.from
		}
	case keymap.ActionToggleDisplay:
		m.displayMode = m.displayMode.Toggle()
		m.clampCursors()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleTransportKeys maps playback gestures 1:1 onto the transport.
func (m *Model) handleTransportKeys(key string) handler.Result {
	action := m.keys.ResolveIn(key, "playback")
	if !action.IsTransport() {
		return handler.NotHandled
	}
	defer m.refresh()

	t := m.transport
	switch action { //nolint:exhaustive // IsTransport filtered the rest
	case keymap.ActionPlayPause:
		m.togglePlayback()
	case keymap.ActionStop:
		t.Stop()
	case keymap.ActionNextTrack:
		t.Next()
	case keymap.ActionPrevTrack:
		t.Previous()
	case keymap.ActionSeekBack:
		t.SeekBy(-seekStep)
	case keymap.ActionSeekForward:
		t.SeekBy(seekStep)
	case keymap.ActionSeekBackLong:
		t.SeekBy(-seekStepLong)
	case keymap.ActionSeekForwardLong:
		t.SeekBy(seekStepLong)
	case keymap.ActionVolumeUp:
		t.AdjustVolume(volumeStep)
	case keymap.ActionVolumeDown:
		t.AdjustVolume(-volumeStep)
	case keymap.ActionToggleMute:
		t.ToggleMute()
	case keymap.ActionCycleRepeat:
		t.CycleRepeat()
	case keymap.ActionToggleShuffle:
		t.ToggleShuffle()
	case keymap.ActionLikeCurrent:
		if !m.snap.HasTrack() {
			m.status = "Nothing is playing"
			return handler.HandledNoCmd
		}
		t.ToggleLikeCurrent()
		return handler.Handled(m.reloadLiked())
	case keymap.ActionClearQueue:
		t.Clear()
	}
	return handler.HandledNoCmd
}

func (m *Model) togglePlayback() {
	err := m.transport.Toggle()
	if errors.Is(err, playback.ErrNoActiveTrack) {
		m.status = "Nothing to play"
		return
	}
	m.report(errmsg.Format(errmsg.OpPlaybackStart, err), err)
}

func (m *Model) handlePageKeys(key string) handler.Result {
	action := m.keys.ResolveIn(key, m.page.keyContexts()...)
	if action == "" {
		return handler.NotHandled
	}
	if m.page == PageAlbum {
		return m.handleAlbumAction(action)
	}
	return m.handleBrowseAction(action)
}

func (m *Model) handleBrowseAction(action keymap.Action) handler.Result {
	page := m.browse(m.page)
	handled, cmd := handler.Chain(
		func() handler.Result {
			return handler.If(page.cursor.HandleAction(action, len(page.entries), m.browseHeight()))
		},
		func() handler.Result { return m.activateEntry(page, action) },
	)
	return handler.Result{Handled: handled, Cmd: cmd}
}

func (m *Model) activateEntry(page *browsePage, action keymap.Action) handler.Result {
	pos := page.cursor.Pos()
	if pos >= len(page.entries) {
		return handler.NotHandled
	}
	entry := page.entries[pos]

	switch action { //nolint:exhaustive // only browse actions
	case keymap.ActionSelect:
		return handler.Handled(m.openAlbum(entry.ID))
	case keymap.ActionPlayAll:
		return handler.Handled(loadAlbumCmd(m.catalog, entry.ID, m.snap.LikedIDs(), false, true))
	}
	return handler.NotHandled
}

func (m *Model) handleAlbumAction(action keymap.Action) handler.Result {
	handled, cmd := handler.Chain(
		func() handler.Result {
			return handler.If(m.album.cursor.HandleAction(action, len(m.album.songs), m.albumHeight()))
		},
		func() handler.Result { return m.activateSong(action) },
	)
	return handler.Result{Handled: handled, Cmd: cmd}
}

func (m *Model) activateSong(action keymap.Action) handler.Result {
	a := &m.album
	defer m.refresh()

	switch action { //nolint:exhaustive // only album actions
	case keymap.ActionSelect:
		m.playSongAt(a.cursor.Pos())
	case keymap.ActionPlayAll:
		err := m.transport.RequestPlaySongs(a.songs, 0)
		m.report(errmsg.FormatWith(errmsg.OpPlaybackStart, a.album.Title, err), err)
	case keymap.ActionShufflePlay:
		m.shufflePlay()
	case keymap.ActionToggleLike:
		pos := a.cursor.Pos()
		if pos >= len(a.songs) {
			return handler.HandledNoCmd
		}
		m.transport.ToggleLike(a.songs[pos].ID)
		return handler.Handled(m.reloadLiked())
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// playSongAt toggles the song if it is the loaded one, otherwise plays
// the album from it.
func (m *Model) playSongAt(pos int) {
	songs := m.album.songs
	if pos < 0 || pos >= len(songs) {
		return
	}
	if m.snap.IsActive(songs[pos].ID) {
		m.togglePlayback()
		return
	}
	err := m.transport.RequestPlaySongs(songs, pos)
	m.report(errmsg.FormatWith(errmsg.OpPlaybackStart, songs[pos].Title, err), err)
}

func (m *Model) shufflePlay() {
	tracks, err := playlist.FromSongs(m.album.songs)
	if err == nil {
		err = m.transport.RequestShufflePlay(tracks)
	}
	m.report(errmsg.FormatWith(errmsg.OpPlaybackStart, m.album.album.Title, err), err)
}

// openAlbum shows the album page and queries its songs.
func (m *Model) openAlbum(id string) tea.Cmd {
	from := m.page
	if from == PageAlbum {
		from = m.album.from
	}
	m.album = albumPage{
		album:   catalog.Album{ID: id},
		cursor:  cursor.New(listMargin),
		from:    from,
		loading: true,
	}
	m.page = PageAlbum
	return loadAlbumCmd(m.catalog, id, m.snap.LikedIDs(), true, false)
}

// reloadLiked refreshes the liked songs page after a like change.
func (m *Model) reloadLiked() tea.Cmd {
	m.refresh()
	if m.page != PageAlbum || m.album.album.ID != catalog.LikedSongsID {
		return nil
	}
	m.album.loading = true
	return loadAlbumCmd(m.catalog, catalog.LikedSongsID, m.snap.LikedIDs(), true, false)
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button { //nolint:exhaustive // only wheel and left click
	case tea.MouseButtonWheelUp:
		return m.handlePageKeysFor(keymap.ActionMoveUp)
	case tea.MouseButtonWheelDown:
		return m.handlePageKeysFor(keymap.ActionMoveDown)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		top := m.Height - footerHeight - playerbar.Height(m.displayMode)
		if pct, ok := playerbar.SeekAt(m.snap, m.displayMode, m.Width, msg.X, msg.Y-top); ok {
			m.transport.SeekPercent(pct)
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) handlePageKeysFor(action keymap.Action) (tea.Model, tea.Cmd) {
	if m.page == PageAlbum {
		m.album.cursor.HandleAction(action, len(m.album.songs), m.albumHeight())
		return m, nil
	}
	page := m.browse(m.page)
	page.cursor.HandleAction(action, len(page.entries), m.browseHeight())
	return m, nil
}
