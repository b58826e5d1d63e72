// Package store persists the two things playlift keeps between runs: OAuth
// tokens per service and transfer run summaries. Nothing track-level is ever
// stored; there is deliberately no mapping table between source tracks and
// destination videos.
package store

import (
	"database/sql"
	"fmt"
)

// Store wraps the SQLite database holding tokens and run history.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS tokens (
	service TEXT PRIMARY KEY,
	access_token TEXT NOT NULL,
	refresh_token TEXT NOT NULL DEFAULT '',
	token_type TEXT NOT NULL DEFAULT 'Bearer',
	expiry TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transfer_runs (
	id TEXT PRIMARY KEY,
	playlist_name TEXT NOT NULL,
	destination_id TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL,
	added INTEGER NOT NULL DEFAULT 0,
	not_found INTEGER NOT NULL DEFAULT 0,
	failed INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// New creates a Store and bootstraps its schema. Bootstrap is idempotent.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to bootstrap store schema: %w", err)
	}
	return &Store{db: db}, nil
}
