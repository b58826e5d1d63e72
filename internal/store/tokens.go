package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hollowbeak/playlift/internal/shared"
	"golang.org/x/oauth2"
)

// SaveToken upserts the OAuth token for a service ("spotify" or "youtube").
func (s *Store) SaveToken(service string, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: empty token for %s", shared.ErrInvalidInput, service)
	}

	_, err := s.db.Exec(`
		INSERT INTO tokens (service, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(service) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expiry = excluded.expiry,
			updated_at = excluded.updated_at`,
		service, token.AccessToken, token.RefreshToken, token.TokenType, token.Expiry, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save token for %s: %w", service, err)
	}

	return nil
}

// LoadToken returns the stored token for a service, or
// [shared.ErrNotAuthenticated] when none is stored.
func (s *Store) LoadToken(service string) (*oauth2.Token, error) {
	var token oauth2.Token
	var expiry sql.NullTime

	err := s.db.QueryRow(
		`SELECT access_token, refresh_token, token_type, expiry FROM tokens WHERE service = ?`,
		service,
	).Scan(&token.AccessToken, &token.RefreshToken, &token.TokenType, &expiry)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no stored token for %s", shared.ErrNotAuthenticated, service)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token for %s: %w", service, err)
	}

	if expiry.Valid {
		token.Expiry = expiry.Time
	}

	return &token, nil
}

// DeleteToken removes the stored token for a service. Removing a token that
// does not exist is not an error.
func (s *Store) DeleteToken(service string) error {
	if _, err := s.db.Exec(`DELETE FROM tokens WHERE service = ?`, service); err != nil {
		return fmt.Errorf("failed to delete token for %s: %w", service, err)
	}
	return nil
}
