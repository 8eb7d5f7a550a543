// Package app is the terminal front-end: pages that browse the catalog and
// issue play requests, and a player bar that renders session snapshots.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
)

// Message category interfaces for type-based routing in Update().

// PlaybackMessage is implemented by messages coming from the session.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LoadingMessage is implemented by catalog query results.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// TickMsg drives the progress clock.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// SnapshotMsg carries a snapshot published by the session.
type SnapshotMsg struct {
	Snapshot playback.Snapshot
}

func (SnapshotMsg) playbackMessage() {}

// TrackChangedMsg is sent when a track starts from the top.
type TrackChangedMsg struct {
	Change playback.TrackChange
}

func (TrackChangedMsg) playbackMessage() {}

// SessionClosedMsg is sent when the subscription ends.
type SessionClosedMsg struct{}

func (SessionClosedMsg) playbackMessage() {}

// BrowseLoadedMsg carries the albums of a browse page.
type BrowseLoadedMsg struct {
	Page    Page
	Entries []AlbumEntry
	Err     error
}

func (BrowseLoadedMsg) loadingMessage() {}

// AlbumLoadedMsg carries an album and its songs. Open shows the album
// page; Play starts it from the first song.
type AlbumLoadedMsg struct {
	Album catalog.Album
	Songs []playlist.Song
	Open  bool
	Play  bool
	Err   error
}

func (AlbumLoadedMsg) loadingMessage() {}
