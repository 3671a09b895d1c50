package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SaveAPIKeyBlob stores an encrypted credential blob for a provider. The
// blob is opaque here; encryption lives in the keystore package.
func (s *Store) SaveAPIKeyBlob(ctx context.Context, provider string, blob []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO api_keys (provider, blob, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (provider) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		provider, blob, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	return nil
}

// APIKeyBlob loads the encrypted credential blob for a provider
func (s *Store) APIKeyBlob(ctx context.Context, provider string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM api_keys WHERE provider = ?`, provider,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load API key: %w", err)
	}
	return blob, nil
}

// DeleteAPIKeyBlob removes the stored credential for a provider
func (s *Store) DeleteAPIKeyBlob(ctx context.Context, provider string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM api_keys WHERE provider = ?`, provider)
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	return requireRow(result)
}
