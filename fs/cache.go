// Package fs provides a filesystem-backed implementation of
// docatlas.FetchCache: one JSON file per URL fingerprint.
package fs

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/docatlas/docatlas"
)

// Ensure CacheService implements docatlas.FetchCache at compile time.
var _ docatlas.FetchCache = (*CacheService)(nil)

// CacheService stores each cache entry as <dir>/<fingerprint>.json.
// Writes go through a temp file and rename, so a crash mid-write never
// corrupts a prior entry. Readers run concurrently; writers serialize.
type CacheService struct {
	mu  sync.RWMutex
	dir string
}

// NewCacheService creates a CacheService rooted at dir, creating it if
// needed.
func NewCacheService(dir string) (*CacheService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CacheService{dir: dir}, nil
}

func (s *CacheService) entryPath(url string) string {
	return filepath.Join(s.dir, docatlas.Fingerprint(url)+".json")
}

// Get returns the cached entry for a URL, or ENOTFOUND on a miss.
// A corrupt entry file is reported as a miss so a re-fetch repairs it.
func (s *CacheService) Get(ctx context.Context, url string) (*docatlas.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.entryPath(url))
	if os.IsNotExist(err) {
		return nil, docatlas.Errorf(docatlas.ENOTFOUND, "no cache entry for %s", url)
	}
	if err != nil {
		return nil, err
	}

	var entry docatlas.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, docatlas.Errorf(docatlas.ENOTFOUND, "corrupt cache entry for %s", url)
	}
	return &entry, nil
}

// Set stores an entry under the URL's fingerprint, last-write-wins.
// The entry is durable when Set returns.
func (s *CacheService) Set(ctx context.Context, url string, entry *docatlas.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.URLHash = docatlas.Fingerprint(url)
	if entry.URL == "" {
		entry.URL = url
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := s.entryPath(url)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Clear removes all entry files.
func (s *CacheService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Size returns the number of stored entries.
func (s *CacheService) Size(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			n++
		}
		return nil
	})
	return n, err
}
