package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/docatlas/docatlas"
)

// maxSitemapDepth bounds recursion through nested sitemap index files.
const maxSitemapDepth = 2

// Ensure SitemapService implements docatlas.SitemapService.
var _ docatlas.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from a site's sitemap.xml.
// Discovered URLs seed the crawl frontier; the crawler still applies its
// own scope, dedup, and page caps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches <host>/sitemap.xml for the baseURL's host and returns
// the page URLs it lists, following sitemap index files one level deep.
// A missing sitemap yields an empty slice, not an error.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docatlas.Errorf(docatlas.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	sitemapURL := fmt.Sprintf("%s://%s/sitemap.xml", base.Scheme, base.Host)

	seen := make(map[string]bool)
	urls, err := s.collect(ctx, sitemapURL, seen, 0)
	if err != nil {
		return nil, err
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// collect fetches one sitemap document and gathers its <loc> entries,
// recursing into <sitemap> children of index files.
func (s *SitemapService) collect(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, ok, err := s.fetch(ctx, sitemapURL)
	if err != nil || !ok {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		// A malformed sitemap is treated like a missing one.
		return nil, nil
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	var urls []string
	switch root.Tag {
	case "urlset":
		for _, el := range root.SelectElements("url") {
			if loc := el.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					urls = append(urls, u)
				}
			}
		}
	case "sitemapindex":
		for _, el := range root.SelectElements("sitemap") {
			loc := el.SelectElement("loc")
			if loc == nil {
				continue
			}
			child, err := s.collect(ctx, strings.TrimSpace(loc.Text()), seen, depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, child...)
		}
	}
	return urls, nil
}

// fetch retrieves a sitemap document. The ok result is false when the
// document does not exist; only transport-level surprises are errors.
func (s *SitemapService) fetch(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, docatlas.Errorf(docatlas.EINVALID, "invalid sitemap URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		// No sitemap reachable; the crawler falls back to link-following.
		return nil, false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, false, nil
	}
	return body, true, nil
}
