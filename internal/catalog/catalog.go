// Package catalog is the track resolution collaborator: it stores the
// album and song rows the pages browse and turns them into playable tracks.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/encore/internal/db"
	"github.com/llehouerou/encore/internal/playlist"
)

// ErrAlbumNotFound is returned when an album id is unknown.
var ErrAlbumNotFound = errors.New("album not found")

// Kind distinguishes albums from user playlists.
type Kind string

const (
	KindAlbum    Kind = "album"
	KindPlaylist Kind = "playlist"
)

// LikedSongsID is the pseudo-album listing the session's liked songs.
const LikedSongsID = "liked"

// Album is a browsable collection of songs.
type Album struct {
	ID       string
	Title    string
	Artist   string
	Year     int
	CoverURL string
	Kind     Kind
	Section  string
}

// Store is a read-only catalog backed by an in-memory SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates the catalog and seeds it.
func Open(ctx context.Context) (*Store, error) {
	conn, err := db.OpenMemory(ctx)
	if err != nil {
		return nil, err
	}

	if err := initSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	if err := seed(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return &Store{db: conn}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const albumColumns = `id, title, artist, year, cover_url, kind, section`

func scanAlbum(row interface{ Scan(...any) error }) (Album, error) {
	var a Album
	var year sql.NullInt64
	var coverURL sql.NullString
	var kind string
	if err := row.Scan(&a.ID, &a.Title, &a.Artist, &year, &coverURL, &kind, &a.Section); err != nil {
		return Album{}, err
	}
	a.Year = db.NullInt64Value(year)
	a.CoverURL = db.NullStringValue(coverURL)
	a.Kind = Kind(kind)
	return a, nil
}

// Albums returns every album in page order. An empty section returns all.
func (s *Store) Albums(ctx context.Context, section string) ([]Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums`
	var args []any
	if section != "" {
		query += ` WHERE section = ?`
		args = append(args, section)
	}
	query += ` ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// Album returns a single album.
func (s *Store) Album(ctx context.Context, id string) (Album, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+albumColumns+` FROM albums WHERE id = ?`, id)
	a, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Album{}, fmt.Errorf("%w: %s", ErrAlbumNotFound, id)
	}
	return a, err
}

const songColumns = `id, title, artist, album, album_id, art_url, duration, track_number`

func scanSongs(rows *sql.Rows) ([]playlist.Song, error) {
	defer rows.Close()

	var songs []playlist.Song
	for rows.Next() {
		var song playlist.Song
		var album, albumID, artURL sql.NullString
		var trackNumber sql.NullInt64
		if err := rows.Scan(
			&song.ID, &song.Title, &song.Artist, &album, &albumID,
			&artURL, &song.Duration, &trackNumber,
		); err != nil {
			return nil, err
		}
		song.Album = db.NullStringValue(album)
		song.AlbumID = db.NullStringValue(albumID)
		song.ArtURL = db.NullStringValue(artURL)
		song.TrackNumber = db.NullInt64Value(trackNumber)
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// Songs returns an album's songs in track order.
func (s *Store) Songs(ctx context.Context, albumID string) ([]playlist.Song, error) {
	if _, err := s.Album(ctx, albumID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+songColumns+` FROM songs
		WHERE album_id = ?
		ORDER BY track_number, id
	`, albumID)
	if err != nil {
		return nil, err
	}
	return scanSongs(rows)
}

// SongsByIDs returns the songs with the given ids in the order given.
// Unknown ids are skipped.
func (s *Store) SongsByIDs(ctx context.Context, ids []string) ([]playlist.Song, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+songColumns+` FROM songs WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	found, err := scanSongs(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]playlist.Song, len(found))
	for _, song := range found {
		byID[song.ID] = song
	}
	out := make([]playlist.Song, 0, len(found))
	for _, id := range ids {
		if song, ok := byID[id]; ok {
			out = append(out, song)
			delete(byID, id)
		}
	}
	return out, nil
}

// Tracks resolves an album into playable tracks.
func (s *Store) Tracks(ctx context.Context, albumID string) ([]playlist.Track, error) {
	songs, err := s.Songs(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return playlist.FromSongs(songs)
}

// SongCount returns the number of songs in an album.
func (s *Store) SongCount(ctx context.Context, albumID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs WHERE album_id = ?`, albumID).Scan(&n)
	return n, err
}

// LikedAlbum describes the "Liked Songs" pseudo-album. Its songs come from
// SongsByIDs with the session's liked ids.
func LikedAlbum() Album {
	return Album{
		ID:      LikedSongsID,
		Title:   "Liked Songs",
		Artist:  "You",
		Kind:    KindPlaylist,
		Section: SectionLibrary,
	}
}
