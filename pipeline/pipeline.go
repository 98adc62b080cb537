// Package pipeline sequences the crawl, clean, and inference stages into
// one run producing the serialized module catalog.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/docatlas/docatlas"
	"github.com/docatlas/docatlas/crawl"
	"github.com/docatlas/docatlas/infer"
	"github.com/google/uuid"
)

// Options bound one pipeline run.
type Options struct {
	Roots          []string
	MaxPages       int
	MaxDepth       int
	AllowedDomains []string
	UseSitemap     bool
}

// Result is the outcome of one pipeline run. Skipped and Failed cover both
// crawl-stage and clean-stage casualties so callers can see every URL that
// contributed nothing to the catalog.
type Result struct {
	// RunID correlates log lines and artifacts from one run.
	RunID string

	Modules []*docatlas.Module
	Pages   int
	Skipped []string
	Failed  []string
	Elapsed time.Duration
}

// Catalog returns the serializable catalog for the run.
func (r *Result) Catalog() *docatlas.Catalog {
	return &docatlas.Catalog{Modules: r.Modules}
}

// Runner executes the pipeline stages sequentially. Every stage failure
// below the run level degrades to a skipped or failed URL; the only fatal
// condition is an empty root set.
type Runner struct {
	Crawler *crawl.Crawler
	Cleaner docatlas.Cleaner
	Engine  *infer.Engine

	// Logger defaults to slog.Default when nil.
	Logger *slog.Logger
}

// Run crawls the roots, rebuilds each page's section forest, and infers the
// module catalog. Always returns a (possibly empty) catalog plus the
// skipped/failed report unless the root set itself is invalid.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if len(opts.Roots) == 0 {
		return nil, docatlas.Errorf(docatlas.EINVALID, "at least one root URL is required")
	}

	begin := time.Now()
	result := &Result{RunID: uuid.New().String()}

	logger.Info("pipeline run started",
		"run_id", result.RunID,
		"roots", len(opts.Roots),
		"max_pages", opts.MaxPages,
		"max_depth", opts.MaxDepth,
	)

	crawled, err := r.Crawler.Crawl(ctx, crawl.Options{
		Roots:          docatlas.DedupePreserveOrder(opts.Roots),
		MaxPages:       opts.MaxPages,
		MaxDepth:       opts.MaxDepth,
		AllowedDomains: opts.AllowedDomains,
		UseSitemap:     opts.UseSitemap,
	})
	if err != nil {
		return nil, err
	}
	result.Pages = len(crawled.Pages)
	result.Skipped = crawled.Skipped
	result.Failed = crawled.Failed

	var forests []docatlas.PageSections
	for _, page := range crawled.Pages {
		blocks, err := r.Cleaner.Clean(page.HTML)
		if err != nil {
			logger.Warn("page cleaning failed",
				"run_id", result.RunID,
				"url", page.RequestedURL,
				"error", err,
			)
			result.Failed = append(result.Failed, page.RequestedURL)
			continue
		}
		forests = append(forests, docatlas.PageSections{
			SourceURL: page.FinalURL,
			Sections:  docatlas.BuildSections(blocks, page.FinalURL),
		})
	}

	engine := r.Engine
	if engine == nil {
		engine = infer.NewEngine()
	}
	result.Modules = engine.Infer(forests)
	result.Elapsed = time.Since(begin)

	logger.Info("pipeline run finished",
		"run_id", result.RunID,
		"pages", result.Pages,
		"skipped", len(result.Skipped),
		"failed", len(result.Failed),
		"modules", len(result.Modules),
		"elapsed", result.Elapsed,
	)

	return result, nil
}
