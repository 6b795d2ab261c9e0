package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"brandsight"
)

// DefaultCatalogTimeout is the default timeout for catalog requests.
const DefaultCatalogTimeout = 10 * time.Second

// Ensure CatalogFetcher implements brandsight.CatalogFetcher at compile time.
var _ brandsight.CatalogFetcher = (*CatalogFetcher)(nil)

// CatalogFetcher retrieves a store's product catalog from the
// conventional /products.json endpoint.
type CatalogFetcher struct {
	client *http.Client
}

// NewCatalogFetcher creates a new CatalogFetcher.
func NewCatalogFetcher() *CatalogFetcher {
	return &CatalogFetcher{
		client: &http.Client{Timeout: DefaultCatalogTimeout},
	}
}

// FetchCatalog requests <baseURL>/products.json and decodes the product
// list. Only declared brandsight.Product fields are decoded; everything
// else the endpoint returns is dropped.
func (f *CatalogFetcher) FetchCatalog(ctx context.Context, baseURL string) ([]brandsight.Product, error) {
	url := brandsight.NormalizeBaseURL(baseURL) + "/products.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, brandsight.Errorf(brandsight.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	var payload struct {
		Products []brandsight.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, brandsight.Errorf(brandsight.EINVALID, "malformed catalog JSON from %s: %v", url, err)
	}

	return payload.Products, nil
}
