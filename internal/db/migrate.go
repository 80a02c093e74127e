package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. It is safe to run on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS maps (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		version       TEXT NOT NULL,
		document      TEXT NOT NULL,
		-- position of the current entry in map_history, -1 before the first
		history_index INTEGER NOT NULL DEFAULT -1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_maps_updated ON maps(updated_at)`,

	`CREATE TABLE IF NOT EXISTS map_history (
		map_id      TEXT NOT NULL REFERENCES maps(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL CHECK(position >= 0),
		snapshot    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		PRIMARY KEY (map_id, position)
	)`,
}
