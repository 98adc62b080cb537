// Package mock provides function-field mock implementations of the domain
// interfaces for tests.
package mock

import (
	"context"

	"github.com/docatlas/docatlas"
)

var _ docatlas.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docatlas.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*docatlas.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*docatlas.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
