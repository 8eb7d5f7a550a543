package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/ui/cursor"
	"github.com/llehouerou/encore/internal/ui/playerbar"
)

// Catalog is the read side of the song catalog the pages browse.
type Catalog interface {
	Albums(ctx context.Context, section string) ([]catalog.Album, error)
	Album(ctx context.Context, id string) (catalog.Album, error)
	Songs(ctx context.Context, albumID string) ([]playlist.Song, error)
	SongsByIDs(ctx context.Context, ids []string) ([]playlist.Song, error)
	SongCount(ctx context.Context, albumID string) (int, error)
}

var _ Catalog = (*catalog.Store)(nil)

// Page identifies a top-level view.
type Page int

const (
	PageHome Page = iota
	PageLibrary
	PageAlbum
)

// String returns the page title.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageLibrary:
		return "Your Library"
	case PageAlbum:
		return "Album"
	default:
		return "Unknown"
	}
}

func (p Page) sections() []string {
	switch p { //nolint:exhaustive // only browse pages have sections
	case PageHome:
		return []string{catalog.SectionRecent, catalog.SectionFeatured}
	case PageLibrary:
		return []string{catalog.SectionLibrary}
	}
	return nil
}

// keyContexts lists keymap contexts from most to least specific.
func (p Page) keyContexts() []string {
	if p == PageAlbum {
		return []string{"album", "browse"}
	}
	return []string{"browse"}
}

// AlbumEntry is one row of a browse page.
type AlbumEntry struct {
	catalog.Album
	Count int // songs; computed from the session for the liked pseudo-album
}

type browsePage struct {
	entries []AlbumEntry
	cursor  cursor.Cursor
	loaded  bool
}

type albumPage struct {
	album   catalog.Album
	songs   []playlist.Song
	cursor  cursor.Cursor
	from    Page
	loading bool
}

// Options configures the model.
type Options struct {
	Catalog      Catalog
	Transport    playback.Transport
	TickInterval time.Duration // playback.DefaultTickInterval when zero
	DisplayMode  playerbar.DisplayMode
	StartAlbum   string // opened, and played, on start when set
	Logger       *slog.Logger
}

// Model is the root application model.
type Model struct {
	catalog   Catalog
	transport playback.Transport
	sub       *playback.Subscription
	keys      *keymap.Resolver
	help      help.Model
	log       *slog.Logger

	snap        playback.Snapshot
	page        Page
	home        browsePage
	library     browsePage
	album       albumPage
	showHelp    bool
	displayMode playerbar.DisplayMode
	tick        time.Duration
	startAlbum  string
	status      string

	Width  int
	Height int
}

const listMargin = 2

// New creates the application model. The model subscribes to the
// transport; the subscription lives as long as the transport.
func New(opts Options) Model {
	tick := opts.TickInterval
	if tick <= 0 {
		tick = playback.DefaultTickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		catalog:     opts.Catalog,
		transport:   opts.Transport,
		sub:         opts.Transport.Subscribe(),
		keys:        keymap.NewResolver(keymap.Bindings),
		help:        help.New(),
		log:         logger,
		snap:        opts.Transport.Snapshot(),
		page:        PageHome,
		home:        browsePage{cursor: cursor.New(listMargin)},
		library:     browsePage{cursor: cursor.New(listMargin)},
		album:       albumPage{cursor: cursor.New(listMargin)},
		displayMode: opts.DisplayMode,
		tick:        tick,
		startAlbum:  opts.StartAlbum,
	}
	if opts.StartAlbum != "" {
		m.album.album.ID = opts.StartAlbum
		m.album.from = PageHome
		m.album.loading = true
		m.page = PageAlbum
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		TickCmd(m.tick),
		WatchSession(m.sub),
		loadBrowseCmd(m.catalog, PageHome),
		loadBrowseCmd(m.catalog, PageLibrary),
	}
	if m.startAlbum != "" {
		cmds = append(cmds, loadAlbumCmd(m.catalog, m.startAlbum, m.snap.LikedIDs(), true, true))
	}
	return tea.Batch(cmds...)
}

// Page returns the visible page.
func (m Model) Page() Page {
	return m.page
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// refresh pulls the latest snapshot after a local mutation.
func (m *Model) refresh() {
	m.snap = m.transport.Snapshot()
}

func (m *Model) browse(p Page) *browsePage {
	if p == PageLibrary {
		return &m.library
	}
	return &m.home
}
