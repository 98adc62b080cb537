package docatlas

import "context"

// FetchedPage represents one page retrieved during a crawl.
// Immutable after creation; owned by the crawl result for one pipeline run.
type FetchedPage struct {
	RequestedURL string `json:"requestedUrl"`
	FinalURL     string `json:"finalUrl"`
	StatusCode   int    `json:"statusCode"`
	HTML         string `json:"-"`
	ContentType  string `json:"contentType"`
	Depth        int    `json:"depth"`
}

// CrawlResult is the outcome of one bounded crawl.
// Skipped holds URLs that were reached but are unusable as pages (binary,
// non-HTML, empty); Failed holds URLs that could not be fetched at all.
type CrawlResult struct {
	Pages   []*FetchedPage
	Skipped []string
	Failed  []string
}

// FetchResult holds a single HTTP response body with its metadata.
type FetchResult struct {
	// FinalURL is the URL after following redirects.
	FinalURL string

	StatusCode  int
	ContentType string
	HTML        string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response.
	// Non-2xx statuses are EHTTPSTATUS errors; network failures are
	// EUNAVAILABLE. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// LinkExtractor extracts outbound link URLs from an HTML page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns resolved, canonical link URLs
	// in document order. The baseURL resolves relative hrefs.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// SitemapService discovers URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs returns the URLs listed in the site's sitemap.
	// A site without a sitemap yields an empty slice, not an error.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain request pacing.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
