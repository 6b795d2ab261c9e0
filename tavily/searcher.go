// Package tavily implements the brandsight.Searcher interface against
// the Tavily web search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"brandsight"
)

// DefaultBaseURL is the production Tavily API endpoint.
const DefaultBaseURL = "https://api.tavily.com"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 30 * time.Second

// Ensure Searcher implements brandsight.Searcher at compile time.
var _ brandsight.Searcher = (*Searcher)(nil)

// Searcher performs web searches using the Tavily API.
type Searcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(url string) Option {
	return func(s *Searcher) {
		s.baseURL = url
	}
}

// WithTimeout sets the timeout for search requests.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.client.Timeout = d
	}
}

// NewSearcher creates a new Searcher with the given API key.
func NewSearcher(apiKey string, opts ...Option) *Searcher {
	s := &Searcher{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// searchRequest is the Tavily /search request body.
type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

// searchResponse is the subset of the Tavily /search response we use.
type searchResponse struct {
	Results []brandsight.SearchResult `json:"results"`
}

// Search runs one query and returns up to maxResults results.
func (s *Searcher) Search(ctx context.Context, query string, depth string, maxResults int) ([]brandsight.SearchResult, error) {
	if s.apiKey == "" {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "tavily API key not configured")
	}
	if query == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "query required")
	}

	body, err := json.Marshal(searchRequest{
		APIKey:      s.apiKey,
		Query:       query,
		SearchDepth: depth,
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "tavily request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "tavily returned HTTP %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, brandsight.Errorf(brandsight.EINTERNAL, "malformed tavily response: %v", err)
	}

	return payload.Results, nil
}
