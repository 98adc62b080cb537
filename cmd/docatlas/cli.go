package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/docatlas/docatlas"
	"github.com/docatlas/docatlas/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Cache  docatlas.FetchCache
	Runner *pipeline.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Crawl documentation URLs and infer a module catalog"`
	Cache   CacheCmd   `cmd:"" help:"Inspect or clear the persistent fetch cache"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs []string `arg:"" help:"Root documentation URLs"`

	MaxPages int      `default:"40" help:"Maximum pages to fetch across all roots"`
	MaxDepth int      `default:"3" help:"Maximum link-following depth"`
	Timeout  int      `default:"12" help:"Per-request timeout in seconds"`
	Output   string   `short:"o" help:"Write the JSON catalog to a file instead of stdout"`
	NoCache  bool     `help:"Bypass the fetch cache entirely"`
	FsCache  bool     `help:"Use a JSON file cache instead of SQLite"`
	Sitemap  bool     `help:"Seed the crawl from each root's sitemap.xml"`
	Domain   []string `help:"Restrict the crawl to these domains (repeatable)"`
	RPS      float64  `default:"4" help:"Per-domain requests per second"`
}

// CacheCmd groups the cache maintenance subcommands.
type CacheCmd struct {
	Stats CacheStatsCmd `cmd:"" help:"Show cache entry count"`
	Clear CacheClearCmd `cmd:"" help:"Remove all cache entries"`
}

// CacheStatsCmd is the "cache stats" subcommand.
type CacheStatsCmd struct{}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
