// Package crawl implements the bounded breadth-first documentation crawler.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/docatlas/docatlas"
)

// Default crawl bounds.
const (
	DefaultMaxPages = 40
	DefaultMaxDepth = 3
)

// minPageBytes rejects pages too short to carry any real content.
const minPageBytes = 100

// Options bound one crawl invocation.
type Options struct {
	// Roots are the starting URLs. At least one is required.
	Roots []string

	// MaxPages caps the total number of fetched pages across all roots.
	MaxPages int

	// MaxDepth bounds link-following depth relative to each page's root.
	MaxDepth int

	// AllowedDomains overrides the scope domain set.
	// Derived from Roots when empty.
	AllowedDomains []string

	// UseSitemap seeds the frontier from each root's sitemap.xml.
	UseSitemap bool
}

// Crawler drives a bounded BFS traversal over one or more root URLs.
// Fetching is strictly sequential: one in-flight request at a time, with
// FIFO ordering preserving the breadth-first level guarantee.
type Crawler struct {
	Fetcher docatlas.Fetcher
	Links   docatlas.LinkExtractor

	// Cache, Sitemaps, and Limiter are optional.
	Cache    docatlas.FetchCache
	Sitemaps docatlas.SitemapService
	Limiter  docatlas.DomainLimiter
}

// Crawl visits pages breadth-first from the roots and returns the fetched
// pages plus the URLs that were skipped (unusable content) or failed
// (unreachable). Page-level failures never abort the crawl; the only fatal
// precondition is an empty root set.
func (c *Crawler) Crawl(ctx context.Context, opts Options) (*docatlas.CrawlResult, error) {
	if len(opts.Roots) == 0 {
		return nil, docatlas.Errorf(docatlas.EINVALID, "at least one root URL is required")
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.MaxDepth < 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	roots := make([]string, 0, len(opts.Roots))
	for _, raw := range opts.Roots {
		canonical, err := docatlas.CanonicalURL(raw)
		if err != nil {
			return nil, docatlas.Errorf(docatlas.EINVALID, "invalid root URL %q: %s", raw, docatlas.ErrorMessage(err))
		}
		roots = append(roots, canonical)
	}

	allowed := opts.AllowedDomains
	if len(allowed) == 0 {
		allowed = docatlas.AllowedDomains(roots)
	}

	frontier := NewFrontier()
	for _, root := range roots {
		frontier.Push(root, 0)
	}
	if opts.UseSitemap && c.Sitemaps != nil {
		c.seedFromSitemaps(ctx, roots, allowed, frontier)
	}

	result := &docatlas.CrawlResult{}

	for frontier.Len() > 0 && len(result.Pages) < opts.MaxPages {
		if ctx.Err() != nil {
			break
		}

		current, depth, ok := frontier.Pop()
		if !ok {
			break
		}
		if depth > opts.MaxDepth {
			continue
		}

		page, err := c.fetchPage(ctx, current, depth)
		if err != nil {
			switch docatlas.ErrorCode(err) {
			case docatlas.EUNSUPPORTED:
				result.Skipped = append(result.Skipped, current)
			default:
				result.Failed = append(result.Failed, current)
			}
			continue
		}
		result.Pages = append(result.Pages, page)

		// Mark the post-redirect URL visited so another path to the same
		// destination is not fetched again.
		if final, err := docatlas.CanonicalURL(page.FinalURL); err == nil && final != current {
			frontier.Mark(final)
		}

		if depth >= opts.MaxDepth {
			continue
		}

		links, err := c.Links.ExtractLinks(page.HTML, page.FinalURL)
		if err != nil {
			continue
		}
		for _, link := range links {
			u, err := url.Parse(link)
			if err != nil || !docatlas.HostInScope(u.Hostname(), allowed) {
				// Cross-domain links are dropped silently.
				continue
			}
			frontier.Push(link, depth+1)
		}
	}

	return result, nil
}

// seedFromSitemaps enqueues sitemap-discovered URLs at depth 1. Sitemap
// failures are ignored; the crawl proceeds by link-following alone.
func (c *Crawler) seedFromSitemaps(ctx context.Context, roots []string, allowed []string, frontier *Frontier) {
	for _, root := range roots {
		urls, err := c.Sitemaps.DiscoverURLs(ctx, root)
		if err != nil {
			continue
		}
		for _, raw := range urls {
			canonical, err := docatlas.CanonicalURL(raw)
			if err != nil || docatlas.HasBinaryExtension(canonical) || docatlas.SkippableLink(canonical) {
				continue
			}
			u, err := url.Parse(canonical)
			if err != nil || !docatlas.HostInScope(u.Hostname(), allowed) {
				continue
			}
			frontier.Push(canonical, 1)
		}
	}
}

// fetchPage resolves one canonical URL to a FetchedPage, consulting the
// cache before the network and writing back after a successful fetch.
func (c *Crawler) fetchPage(ctx context.Context, canonical string, depth int) (*docatlas.FetchedPage, error) {
	if c.Cache != nil {
		if entry, err := c.Cache.Get(ctx, canonical); err == nil {
			return &docatlas.FetchedPage{
				RequestedURL: canonical,
				FinalURL:     entry.URL,
				StatusCode:   entry.StatusCode,
				HTML:         entry.HTML,
				ContentType:  "text/html",
				Depth:        depth,
			}, nil
		}
	}

	if docatlas.HasBinaryExtension(canonical) {
		return nil, docatlas.Errorf(docatlas.EUNSUPPORTED, "binary asset %s", canonical)
	}

	if c.Limiter != nil {
		u, err := url.Parse(canonical)
		if err == nil {
			if err := c.Limiter.Wait(ctx, u.Hostname()); err != nil {
				return nil, docatlas.Errorf(docatlas.EUNAVAILABLE, "rate limit wait canceled for %s", canonical)
			}
		}
	}

	res, err := c.Fetcher.Fetch(ctx, canonical)
	if err != nil {
		return nil, err
	}

	if docatlas.LooksLikeBinary(res.ContentType) || !docatlas.IsHTML(res.ContentType) {
		return nil, docatlas.Errorf(docatlas.EUNSUPPORTED, "non-HTML content %q at %s", res.ContentType, canonical)
	}
	if len(res.HTML) < minPageBytes {
		return nil, docatlas.Errorf(docatlas.EUNSUPPORTED, "page too short at %s (%d bytes)", canonical, len(res.HTML))
	}

	if c.Cache != nil {
		// Cached under the requested URL so redirect chains never refetch.
		_ = c.Cache.Set(ctx, canonical, &docatlas.CacheEntry{
			URL:        res.FinalURL,
			HTML:       res.HTML,
			StatusCode: res.StatusCode,
			FetchedAt:  time.Now().UTC(),
		})
	}

	return &docatlas.FetchedPage{
		RequestedURL: canonical,
		FinalURL:     res.FinalURL,
		StatusCode:   res.StatusCode,
		HTML:         res.HTML,
		ContentType:  res.ContentType,
		Depth:        depth,
	}, nil
}
