package brandsight

import "context"

// SearchResult is a single result from a web search.
type SearchResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Searcher performs web searches against an external provider.
type Searcher interface {
	// Search runs one query and returns up to maxResults results.
	// Depth selects the provider's search mode (e.g., "basic").
	Search(ctx context.Context, query string, depth string, maxResults int) ([]SearchResult, error)
}

// CompetitorFinder discovers candidate competitor domains for a brand.
type CompetitorFinder interface {
	// FindCompetitors searches the web for competitors of brandName,
	// optionally narrowed by product type phrases, and returns up to 5
	// root domains. An empty brand name yields an empty list, not an
	// error.
	FindCompetitors(ctx context.Context, brandName string, productTypes []string) ([]string, error)
}
