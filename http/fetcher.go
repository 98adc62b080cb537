// Package http provides HTTP-based implementations of docatlas.Fetcher and
// docatlas.SitemapService for fetching static documentation pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/docatlas/docatlas"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 12 * time.Second

// DefaultUserAgent identifies the crawler to servers.
const DefaultUserAgent = "docatlas/1.0 (+https://github.com/docatlas/docatlas)"

// maxRedirectHops caps redirect chains; longer chains are treated as
// unreachable.
const maxRedirectHops = 5

// maxBodyBytes caps response bodies to keep a single oversized page from
// exhausting memory.
const maxBodyBytes = 8 << 20

// Ensure Fetcher implements docatlas.Fetcher at compile time.
var _ docatlas.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirectHops {
				return docatlas.Errorf(docatlas.EUNAVAILABLE, "too many redirects for %s", via[0].URL)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the content at url. The returned FetchResult records the
// final post-redirect URL, the status code, and the Content-Type. Non-2xx
// statuses are EHTTPSTATUS errors; transport failures are EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*docatlas.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docatlas.Errorf(docatlas.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, docatlas.Errorf(docatlas.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docatlas.Errorf(docatlas.EHTTPSTATUS, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, docatlas.Errorf(docatlas.EUNAVAILABLE, "read body of %s: %v", url, err)
	}

	return &docatlas.FetchResult{
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		HTML:        string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
