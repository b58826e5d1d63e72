package store

import (
	"fmt"
	"time"

	"github.com/hollowbeak/playlift/internal/shared"
)

// RunRecord is one persisted transfer summary row. Only the reconciliation
// counts survive a run; per-track outcomes are reported and discarded.
type RunRecord struct {
	ID            string
	PlaylistName  string
	DestinationID string
	State         string
	Added         int
	NotFound      int
	Failed        int
	CreatedAt     time.Time
}

// RecordRun persists the summary of one playlist transfer.
func (s *Store) RecordRun(rec RunRecord) error {
	if rec.ID == "" {
		rec.ID = shared.GenerateID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO transfer_runs (id, playlist_name, destination_id, state, added, not_found, failed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PlaylistName, rec.DestinationID, rec.State, rec.Added, rec.NotFound, rec.Failed, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record transfer run: %w", err)
	}

	return nil
}

// ListRuns returns the most recent transfer summaries, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, playlist_name, destination_id, state, added, not_found, failed, created_at
		FROM transfer_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.PlaylistName, &rec.DestinationID, &rec.State,
			&rec.Added, &rec.NotFound, &rec.Failed, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transfer run: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
