package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/docatlas/docatlas"
)

// Compile-time interface verification.
var _ docatlas.FetchCache = (*CacheService)(nil)

// CacheService implements docatlas.FetchCache using SQLite.
// Entries are addressed by the fingerprint of the requested canonical URL;
// writes are last-write-wins upserts.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// Get returns the cached entry for a URL, or ENOTFOUND on a miss.
func (s *CacheService) Get(ctx context.Context, url string) (*docatlas.CacheEntry, error) {
	var entry docatlas.CacheEntry
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT url_hash, url, html, status_code, fetched_at
		FROM page_cache
		WHERE url_hash = ?
	`, docatlas.Fingerprint(url)).Scan(&entry.URLHash, &entry.URL, &entry.HTML, &entry.StatusCode, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, docatlas.Errorf(docatlas.ENOTFOUND, "no cache entry for %s", url)
	}
	if err != nil {
		return nil, err
	}

	entry.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &entry, nil
}

// Set stores an entry under the URL's fingerprint, replacing any previous
// entry wholesale. The write is durable when Set returns.
func (s *CacheService) Set(ctx context.Context, url string, entry *docatlas.CacheEntry) error {
	entry.URLHash = docatlas.Fingerprint(url)
	if entry.URL == "" {
		entry.URL = url
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_cache (url_hash, url, html, status_code, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET
			url = excluded.url,
			html = excluded.html,
			status_code = excluded.status_code,
			fetched_at = excluded.fetched_at
	`, entry.URLHash, entry.URL, entry.HTML, entry.StatusCode, entry.FetchedAt.Format(time.RFC3339))

	return err
}

// Clear removes all cached entries.
func (s *CacheService) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM page_cache`)
	return err
}

// Size returns the number of cached entries.
func (s *CacheService) Size(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM page_cache`).Scan(&n)
	return n, err
}
