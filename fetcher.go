package brandsight

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the page HTML.
	// The context controls timeout and cancellation. Callers treat a
	// failed fetch as an absent page, not a fatal condition.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// CatalogFetcher retrieves a store's product catalog from its conventional
// JSON endpoint.
type CatalogFetcher interface {
	// FetchCatalog requests <baseURL>/products.json and returns the
	// decoded product list. Only declared Product fields are decoded.
	FetchCatalog(ctx context.Context, baseURL string) ([]Product, error)
}
