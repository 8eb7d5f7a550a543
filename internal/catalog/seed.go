package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/llehouerou/encore/internal/db"
)

// Sections group albums the way the pages list them.
const (
	SectionRecent   = "recent"
	SectionFeatured = "featured"
	SectionLibrary  = "library"
)

type seedAlbum struct {
	Album
	section string
	songs   []seedSong
}

type seedSong struct {
	id, title, duration string
}

const picsum = "https://picsum.photos/seed/"

func cover(seed string) string { return picsum + seed + "/400/400" }
func thumb(seed string) string { return picsum + seed + "/60/60" }

// Albums without a real track list get a single three-minute opener,
// matching what the home and library pages play for them.
var seedAlbums = []seedAlbum{
	{
		Album: Album{ID: "album1", Title: "Future Nostalgia", Artist: "Dua Lipa", Year: 2020, CoverURL: cover("futurenostalgia")},
		songs: []seedSong{
			{"s1-1", "Future Nostalgia", "3:04"},
			{"s1-2", "Don't Start Now", "3:03"},
			{"s1-3", "Cool", "3:29"},
			{"s1-4", "Physical", "3:13"},
			{"s1-5", "Levitating", "3:23"},
		},
		section: SectionRecent,
	},
	{Album: Album{ID: "album2", Title: "After Hours", Artist: "The Weeknd", Year: 2020, CoverURL: cover("afterhours")}, section: SectionRecent},
	{Album: Album{ID: "album3", Title: "Montero", Artist: "Lil Nas X", Year: 2021, CoverURL: cover("montero")}, section: SectionRecent},
	{Album: Album{ID: "album4", Title: "Sour", Artist: "Olivia Rodrigo", Year: 2021, CoverURL: cover("sour")}, section: SectionRecent},
	{Album: Album{ID: "album5", Title: "Planet Her", Artist: "Doja Cat", Year: 2021, CoverURL: cover("planether")}, section: SectionRecent},
	{Album: Album{ID: "album6", Title: "Happier Than Ever", Artist: "Billie Eilish", Year: 2021, CoverURL: cover("happier")}, section: SectionRecent},
	{
		Album: Album{ID: "feat1", Title: "Epic Soundscapes", Artist: "Cinematic Orchestra", Year: 2024, CoverURL: cover("epic")},
		songs: []seedSong{
			{"fs1", "The Awakening", "5:12"},
			{"fs2", "Journey to the Stars", "4:30"},
		},
		section: SectionFeatured,
	},
	{Album: Album{ID: "feat2", Title: "Lo-Fi Beats to Relax", Artist: "Chillhop Crew", Year: 2023, CoverURL: cover("lofi")}, section: SectionFeatured},
	{Album: Album{ID: "feat3", Title: "Summer Vibes Mix", Artist: "Various Artists", Year: 2024, CoverURL: cover("summer")}, section: SectionFeatured},
	{Album: Album{ID: "feat4", Title: "Indie Gems", Artist: "Hidden Talents", Year: 2023, CoverURL: cover("indie")}, section: SectionFeatured},
	{Album: Album{ID: "lib-pl1", Title: "Chill Vibes", Artist: "You", Year: 2023, CoverURL: cover("chillvibes"), Kind: KindPlaylist}, section: SectionLibrary},
	{Album: Album{ID: "lib-pl2", Title: "Workout Hits", Artist: "You", Year: 2022, CoverURL: cover("workout"), Kind: KindPlaylist}, section: SectionLibrary},
	{Album: Album{ID: "lib-album1", Title: "Currents", Artist: "Tame Impala", Year: 2015, CoverURL: cover("currents")}, section: SectionLibrary},
	{Album: Album{ID: "lib-album2", Title: "Discovery", Artist: "Daft Punk", Year: 2001, CoverURL: cover("discovery")}, section: SectionLibrary},
}

// Loose songs belong to no album; they back the initial liked list.
var seedLooseSongs = []struct {
	id, title, artist, album, duration, art string
}{
	{"liked-s1", "Bohemian Rhapsody", "Queen", "A Night at the Opera", "5:55", thumb("bohemian")},
	{"liked-s2", "Stairway to Heaven", "Led Zeppelin", "Led Zeppelin IV", "8:02", thumb("stairway")},
}

// InitialLikes are the song ids liked on a fresh start.
func InitialLikes() []string {
	ids := make([]string, len(seedLooseSongs))
	for i, s := range seedLooseSongs {
		ids[i] = s.id
	}
	return ids
}

func seed(ctx context.Context, conn *sql.DB) error {
	return db.WithTx(ctx, conn, func(tx *sql.Tx) error {
		albumStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO albums (id, title, artist, year, cover_url, kind, section, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer albumStmt.Close()

		songStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO songs (id, album_id, title, artist, album, duration, track_number, art_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer songStmt.Close()

		for i, a := range seedAlbums {
			kind := a.Kind
			if kind == "" {
				kind = KindAlbum
			}
			if _, err := albumStmt.ExecContext(ctx,
				a.ID, a.Title, a.Artist, db.NullInt64(a.Year), db.NullString(a.CoverURL),
				string(kind), a.section, i,
			); err != nil {
				return fmt.Errorf("album %s: %w", a.ID, err)
			}

			songs := a.songs
			if len(songs) == 0 {
				songs = []seedSong{{a.ID + "-track1", "First Track of " + a.Title, "3:00"}}
			}
			key, _, _ := strings.Cut(strings.TrimPrefix(a.CoverURL, picsum), "/")
			art := thumb(key)
			for n, s := range songs {
				if _, err := songStmt.ExecContext(ctx,
					s.id, a.ID, s.title, a.Artist, a.Title, s.duration, n+1, art,
				); err != nil {
					return fmt.Errorf("song %s: %w", s.id, err)
				}
			}
		}

		for _, s := range seedLooseSongs {
			if _, err := songStmt.ExecContext(ctx,
				s.id, nil, s.title, s.artist, db.NullString(s.album), s.duration, nil, db.NullString(s.art),
			); err != nil {
				return fmt.Errorf("song %s: %w", s.id, err)
			}
		}
		return nil
	})
}
