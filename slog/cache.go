package slog

import (
	"context"
	"log/slog"

	"github.com/docatlas/docatlas"
)

// Ensure LoggingCache implements docatlas.FetchCache.
var _ docatlas.FetchCache = (*LoggingCache)(nil)

// LoggingCache wraps a docatlas.FetchCache with hit/miss logging.
type LoggingCache struct {
	next   docatlas.FetchCache
	logger *slog.Logger
}

// NewLoggingCache creates a new logging cache.
func NewLoggingCache(next docatlas.FetchCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache, logging hits and misses at debug level.
func (c *LoggingCache) Get(ctx context.Context, url string) (*docatlas.CacheEntry, error) {
	entry, err := c.next.Get(ctx, url)
	if err != nil {
		if docatlas.ErrorCode(err) == docatlas.ENOTFOUND {
			c.logger.Debug("cache miss", "url", url)
		} else {
			c.logger.Warn("cache read failed", "url", url, "code", docatlas.ErrorCode(err))
		}
		return nil, err
	}
	c.logger.Debug("cache hit", "url", url, "fetched_at", entry.FetchedAt)
	return entry, nil
}

// Set delegates to the wrapped cache, logging writes at debug level.
func (c *LoggingCache) Set(ctx context.Context, url string, entry *docatlas.CacheEntry) error {
	if err := c.next.Set(ctx, url, entry); err != nil {
		c.logger.Warn("cache write failed", "url", url, "code", docatlas.ErrorCode(err))
		return err
	}
	c.logger.Debug("cache write", "url", url, "bytes", len(entry.HTML))
	return nil
}

// Clear delegates to the wrapped cache.
func (c *LoggingCache) Clear(ctx context.Context) error {
	if err := c.next.Clear(ctx); err != nil {
		return err
	}
	c.logger.Info("cache cleared")
	return nil
}

// Size delegates to the wrapped cache.
func (c *LoggingCache) Size(ctx context.Context) (int, error) {
	return c.next.Size(ctx)
}
