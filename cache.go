package docatlas

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CacheEntry is one persisted fetch, keyed by the fingerprint of the
// requested canonical URL. Entries are never mutated, only overwritten
// wholesale on re-fetch.
type CacheEntry struct {
	URLHash    string    `json:"urlHash"`
	URL        string    `json:"url"`
	HTML       string    `json:"html"`
	StatusCode int       `json:"statusCode"`
	FetchedAt  time.Time `json:"fetchedAt"`
}

// FetchCache is a persistent content-addressed store for fetched pages.
// Implementations must tolerate concurrent readers and serialize writers.
type FetchCache interface {
	// Get returns the cached entry for a URL.
	// Returns ENOTFOUND on a cache miss.
	Get(ctx context.Context, url string) (*CacheEntry, error)

	// Set stores an entry under the URL's fingerprint, last-write-wins.
	// Set is synchronous: the entry is durable when it returns.
	Set(ctx context.Context, url string, entry *CacheEntry) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Size returns the number of stored entries.
	Size(ctx context.Context) (int, error)
}

// Fingerprint returns the cache key for a canonical URL: a fixed-length
// xxhash64 hex digest. Both cache implementations share this key so a cache
// directory and a cache database address entries identically.
func Fingerprint(canonicalURL string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(canonicalURL))
}
