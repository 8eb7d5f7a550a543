package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/playerbar"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/songrow"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	sections := []string{
		headerbar.Render(m.activeTab(), m.queueInfo(), m.Width),
		m.renderBody(),
		playerbar.Render(m.snap, m.displayMode, m.Width),
		m.renderFooter(),
	}
	view := strings.Join(sections, "\n")

	if m.showHelp {
		view = render.Center(view, m.renderHelp(), m.Width, m.Height)
	}
	return view
}

func (m Model) activeTab() string {
	page := m.page
	if page == PageAlbum {
		page = m.album.from
	}
	if page == PageLibrary {
		return headerbar.TabLibrary
	}
	return headerbar.TabHome
}

// queueInfo shows the queue position, e.g. "3/12".
func (m Model) queueInfo() string {
	if !m.snap.HasTrack() {
		return ""
	}
	return fmt.Sprintf("%d/%d", m.snap.Cursor+1, m.snap.QueueLen())
}

// renderBody returns exactly bodyHeight lines.
func (m Model) renderBody() string {
	var lines []string
	if m.page == PageAlbum {
		lines = m.albumLines()
	} else {
		lines = m.browseLines()
	}

	height := m.bodyHeight()
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = render.TruncateAndPadEllipsis(line, m.Width)
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(m.Width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) browseLines() []string {
	s := styles.T().S()
	page := m.browse(m.page)
	title := s.Title.Render(" " + m.page.String())
	if !page.loaded {
		return []string{title, "", s.Muted.Render("  Loading…")}
	}
	title += s.Muted.Render("  " + english.Plural(len(page.entries), "album", ""))
	lines := []string{title, ""}

	start, end := page.cursor.VisibleRange(len(page.entries), m.browseHeight())
	for i := start; i < end; i++ {
		lines = append(lines, m.renderEntry(page.entries[i], i == page.cursor.Pos()))
	}
	return lines
}

func (m Model) renderEntry(e AlbumEntry, selected bool) string {
	s := styles.T().S()

	marker := "  "
	if t, ok := m.snap.Current(); ok && m.snap.State.IsActive() && t.AlbumID == e.ID {
		marker = s.Playing.Render(icons.Playing()) + " "
	}

	name := icons.FormatAlbum(e.Title)
	if e.Kind == catalog.KindPlaylist {
		name = icons.FormatPlaylist(e.Title)
	}

	count := e.Count
	if e.ID == catalog.LikedSongsID {
		count = len(m.snap.LikedIDs())
	}
	right := english.Plural(count, "song", "")
	if m.page == PageHome {
		right = sectionLabel(e.Section) + "  " + right
	}

	left := marker + s.Base.Render(render.Sanitize(name)) + s.Muted.Render("  "+render.Sanitize(e.Artist))
	row := render.Row(left, s.Muted.Render(right)+" ", m.Width)
	if selected {
		return s.Cursor.Render(render.Pad(row, m.Width))
	}
	return row
}

func sectionLabel(section string) string {
	switch section {
	case catalog.SectionRecent:
		return "Recently played"
	case catalog.SectionFeatured:
		return "Featured"
	default:
		return ""
	}
}

func (m Model) albumLines() []string {
	s := styles.T().S()
	a := m.album
	if a.loading && len(a.songs) == 0 {
		return []string{s.Muted.Render("  Loading…")}
	}

	name := icons.FormatAlbum(a.album.Title)
	if a.album.Kind == catalog.KindPlaylist {
		name = icons.FormatPlaylist(a.album.Title)
	}
	lines := []string{
		s.Title.Render(" " + render.Sanitize(name)),
		s.Muted.Render(" " + albumMeta(a.album, a.songs)),
		s.Subtle.Render(render.Separator(m.Width)),
	}

	if len(a.songs) == 0 {
		empty := "  No songs here yet"
		if a.album.ID == catalog.LikedSongsID {
			empty = "  Songs you like will appear here"
		}
		return append(lines, s.Muted.Render(empty))
	}

	opts := songrow.Options{
		ShowTrackNumber: a.album.Kind != catalog.KindPlaylist,
		ShowAlbum:       a.album.Kind == catalog.KindPlaylist,
	}
	start, end := a.cursor.VisibleRange(len(a.songs), m.albumHeight())
	for i := start; i < end; i++ {
		opts.Selected = i == a.cursor.Pos()
		song := a.songs[i]
		lines = append(lines, songrow.Render(song, i, songrow.StateFor(m.snap, song.ID), opts, m.Width))
	}
	return lines
}

// albumMeta reads "Artist · 2020 · 5 songs, 18 min".
func albumMeta(a catalog.Album, songs []playlist.Song) string {
	parts := []string{render.Sanitize(a.Artist)}
	if a.Year > 0 {
		parts = append(parts, fmt.Sprint(a.Year))
	}
	summary := english.Plural(len(songs), "song", "")
	if total := totalSeconds(songs); total > 0 {
		summary += ", " + formatTotal(total)
	}
	return strings.Join(append(parts, summary), " · ")
}

// totalSeconds sums the parseable song durations.
func totalSeconds(songs []playlist.Song) int {
	total := 0
	for _, s := range songs {
		if d, err := playlist.ParseDuration(s.Duration); err == nil {
			total += d
		}
	}
	return total
}

func formatTotal(seconds int) string {
	minutes := (seconds + 30) / 60
	if minutes < 60 {
		return fmt.Sprintf("%d min", max(minutes, 1))
	}
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

func (m Model) helpKeyMap() keymap.HelpKeyMap {
	contexts := append(m.page.keyContexts(), "playback", "global")
	return keymap.NewHelpKeyMap(contexts...)
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return render.TruncateAndPadEllipsis(styles.T().S().Error.Render(" "+m.status), m.Width)
	}
	return render.TruncateAndPadEllipsis(" "+m.help.View(m.helpKeyMap()), m.Width)
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	content := h.View(m.helpKeyMap())
	maxWidth := max(m.Width-4, 10)
	if lipgloss.Width(content) > maxWidth {
		content = lipgloss.NewStyle().MaxWidth(maxWidth).Render(content)
	}
	return styles.PopupStyle().Render(content)
}
