package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/docatlas/docatlas"
	"github.com/docatlas/docatlas/mock"
	docslog "github.com/docatlas/docatlas/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCache(t *testing.T) {
	t.Parallel()

	t.Run("logs hit and miss at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		cache := docslog.NewLoggingCache(&mock.FetchCache{}, logger)
		ctx := context.Background()

		_, err := cache.Get(ctx, "https://example.com/docs")
		require.Equal(t, docatlas.ENOTFOUND, docatlas.ErrorCode(err))
		assert.Contains(t, buf.String(), "cache miss")

		buf.Reset()
		entry := &docatlas.CacheEntry{URL: "https://example.com/docs", HTML: "<html></html>", StatusCode: 200}
		require.NoError(t, cache.Set(ctx, "https://example.com/docs", entry))
		assert.Contains(t, buf.String(), "cache write")

		buf.Reset()
		_, err = cache.Get(ctx, "https://example.com/docs")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "cache hit")
	})

	t.Run("logs clear", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cache := docslog.NewLoggingCache(&mock.FetchCache{}, logger)

		require.NoError(t, cache.Clear(context.Background()))
		assert.Contains(t, buf.String(), "cache cleared")
	})

	t.Run("size passes through without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cache := docslog.NewLoggingCache(&mock.FetchCache{}, logger)

		n, err := cache.Size(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Empty(t, buf.String())
	})
}
