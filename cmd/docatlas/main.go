package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/docatlas/docatlas"
	"github.com/docatlas/docatlas/crawl"
	"github.com/docatlas/docatlas/fs"
	"github.com/docatlas/docatlas/goquery"
	dochttp "github.com/docatlas/docatlas/http"
	"github.com/docatlas/docatlas/infer"
	"github.com/docatlas/docatlas/pipeline"
	docslog "github.com/docatlas/docatlas/slog"
	"github.com/docatlas/docatlas/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache database path. Set before calling Run().
	CachePath string

	// SQLite database backing the default fetch cache.
	DB *sqlite.DB

	// Cache service for end-to-end testing.
	Cache docatlas.FetchCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docatlas"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docatlas --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch {
	case cmd == "extract" && cli.Extract.FsCache:
		cache, err := fs.NewCacheService(defaultFsCacheDir())
		if err != nil {
			return fmt.Errorf("failed to open cache directory: %w", err)
		}
		m.Cache = cache
	case cmd == "extract" && cli.Extract.NoCache:
		// Leave m.Cache nil; the crawler fetches everything fresh.
	default:
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCATLAS_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", m.CachePath, err)
		}
		defer m.Close()
		m.Cache = sqlite.NewCacheService(m.DB)
	}
	deps.Cache = m.Cache

	if cmd == "extract" {
		var fetcher docatlas.Fetcher = dochttp.NewFetcher(
			dochttp.WithTimeout(time.Duration(cli.Extract.Timeout) * time.Second),
		)
		defer fetcher.Close()

		cache := m.Cache
		if cli.Verbose {
			fetcher = docslog.NewLoggingFetcher(fetcher, deps.Logger)
			if cache != nil {
				cache = docslog.NewLoggingCache(cache, deps.Logger)
			}
		}

		var sitemaps docatlas.SitemapService
		if cli.Extract.Sitemap {
			sitemaps = dochttp.NewSitemapService(nil)
		}

		deps.Runner = &pipeline.Runner{
			Crawler: &crawl.Crawler{
				Fetcher:  fetcher,
				Links:    goquery.NewLinkExtractor(),
				Cache:    cache,
				Sitemaps: sitemaps,
				Limiter:  crawl.NewDomainLimiter(cli.Extract.RPS),
			},
			Cleaner: goquery.NewCleaner(),
			Engine:  infer.NewEngine(),
			Logger:  deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("DOCATLAS_CACHE"); path != "" {
		return path
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "docatlas.db"
	}
	dir := filepath.Join(base, "docatlas")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}

func defaultFsCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "docatlas-pages"
	}
	return filepath.Join(base, "docatlas", "pages")
}
