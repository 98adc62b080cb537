package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docatlas/docatlas"
)

// Compile-time interface verification.
var _ docatlas.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts outbound page links from HTML.
// Non-content links (auth flows, downloads, fragments, mailto/javascript)
// are filtered here; domain scoping stays with the crawler, which knows the
// allowed root set.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns resolved canonical link URLs in
// document order, deduplicated by first occurrence.
func (e *LinkExtractor) ExtractLinks(rawHTML string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docatlas.Errorf(docatlas.EUNSUPPORTED, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || docatlas.SkippableLink(href) {
			return
		}

		resolved := docatlas.ResolveURL(baseURL, href)
		if resolved == "" || seen[resolved] {
			return
		}
		if docatlas.HasBinaryExtension(resolved) || docatlas.SkippableLink(resolved) {
			return
		}

		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}
