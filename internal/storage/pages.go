package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/resume-studio/internal/fetch"
)

// FreshPage returns the cached page for url when it is younger than ttl.
// A miss or an expired entry returns nil with no error.
func (s *Store) FreshPage(ctx context.Context, url string, ttl time.Duration) (*fetch.CachedPage, error) {
	var page fetch.CachedPage
	var fetchedStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT url, html, text, status, fetched_at FROM pages WHERE url = ?`, url,
	).Scan(&page.URL, &page.HTML, &page.Text, &page.StatusCode, &fetchedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached page: %w", err)
	}

	page.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cache timestamp: %w", err)
	}
	if time.Since(page.FetchedAt) > ttl {
		return nil, nil
	}
	return &page, nil
}

// SavePage upserts a fetched page into the cache
func (s *Store) SavePage(ctx context.Context, page *fetch.CachedPage) error {
	fetchedAt := page.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pages (url, html, text, status, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (url) DO UPDATE SET html = excluded.html, text = excluded.text,
			status = excluded.status, fetched_at = excluded.fetched_at`,
		page.URL, page.HTML, page.Text, page.StatusCode,
		fetchedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}
