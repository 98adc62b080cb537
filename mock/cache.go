package mock

import (
	"context"
	"sync"

	"github.com/docatlas/docatlas"
)

var _ docatlas.FetchCache = (*FetchCache)(nil)

// FetchCache is an in-memory mock implementation of docatlas.FetchCache.
// The zero value is usable; function fields override individual methods.
type FetchCache struct {
	GetFn   func(ctx context.Context, url string) (*docatlas.CacheEntry, error)
	SetFn   func(ctx context.Context, url string, entry *docatlas.CacheEntry) error
	ClearFn func(ctx context.Context) error
	SizeFn  func(ctx context.Context) (int, error)

	mu      sync.Mutex
	entries map[string]*docatlas.CacheEntry
}

func (c *FetchCache) Get(ctx context.Context, url string) (*docatlas.CacheEntry, error) {
	if c.GetFn != nil {
		return c.GetFn(ctx, url)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[docatlas.Fingerprint(url)]; ok {
		return entry, nil
	}
	return nil, docatlas.Errorf(docatlas.ENOTFOUND, "no cache entry for %s", url)
}

func (c *FetchCache) Set(ctx context.Context, url string, entry *docatlas.CacheEntry) error {
	if c.SetFn != nil {
		return c.SetFn(ctx, url, entry)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]*docatlas.CacheEntry)
	}
	entry.URLHash = docatlas.Fingerprint(url)
	c.entries[entry.URLHash] = entry
	return nil
}

func (c *FetchCache) Clear(ctx context.Context) error {
	if c.ClearFn != nil {
		return c.ClearFn(ctx)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	return nil
}

func (c *FetchCache) Size(ctx context.Context) (int, error) {
	if c.SizeFn != nil {
		return c.SizeFn(ctx)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), nil
}
