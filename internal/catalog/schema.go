package catalog

import (
	"context"
	"database/sql"
)

const schemaVersion = 1

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS albums (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			year INTEGER,
			cover_url TEXT,
			kind TEXT NOT NULL DEFAULT 'album',
			section TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_albums_section ON albums(section, position);

		CREATE TABLE IF NOT EXISTS songs (
			id TEXT PRIMARY KEY,
			album_id TEXT REFERENCES albums(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			album TEXT,
			duration TEXT NOT NULL,
			track_number INTEGER,
			art_url TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_songs_album ON songs(album_id, track_number);
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion)
	return err
}
