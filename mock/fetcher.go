// Package mock provides function-field mock implementations of the
// brandsight interfaces for use in tests.
package mock

import (
	"context"

	"brandsight"
)

var _ brandsight.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of brandsight.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ brandsight.CatalogFetcher = (*CatalogFetcher)(nil)

// CatalogFetcher is a mock implementation of brandsight.CatalogFetcher.
type CatalogFetcher struct {
	FetchCatalogFn func(ctx context.Context, baseURL string) ([]brandsight.Product, error)
}

func (f *CatalogFetcher) FetchCatalog(ctx context.Context, baseURL string) ([]brandsight.Product, error) {
	return f.FetchCatalogFn(ctx, baseURL)
}
