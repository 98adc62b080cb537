// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docatlas/docatlas"
)

// Ensure LoggingFetcher implements docatlas.Fetcher.
var _ docatlas.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a docatlas.Fetcher with per-request logging.
type LoggingFetcher struct {
	next   docatlas.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new logging fetcher.
func NewLoggingFetcher(next docatlas.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the outcome and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*docatlas.FetchResult, error) {
	begin := time.Now()
	res, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", docatlas.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"status", res.StatusCode,
		"content_type", res.ContentType,
		"bytes", len(res.HTML),
		"duration", time.Since(begin),
	)
	return res, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
