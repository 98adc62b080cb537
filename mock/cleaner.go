package mock

import (
	"context"

	"github.com/docatlas/docatlas"
)

var _ docatlas.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of docatlas.Cleaner.
type Cleaner struct {
	CleanFn func(html string) ([]docatlas.TextBlock, error)
}

func (c *Cleaner) Clean(html string) ([]docatlas.TextBlock, error) {
	return c.CleanFn(html)
}

var _ docatlas.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docatlas.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ docatlas.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docatlas.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ docatlas.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docatlas.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
