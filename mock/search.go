package mock

import (
	"context"

	"brandsight"
)

var _ brandsight.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of brandsight.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, depth string, maxResults int) ([]brandsight.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, depth string, maxResults int) ([]brandsight.SearchResult, error) {
	return s.SearchFn(ctx, query, depth, maxResults)
}

var _ brandsight.CompetitorFinder = (*CompetitorFinder)(nil)

// CompetitorFinder is a mock implementation of brandsight.CompetitorFinder.
type CompetitorFinder struct {
	FindCompetitorsFn func(ctx context.Context, brandName string, productTypes []string) ([]string, error)
}

func (f *CompetitorFinder) FindCompetitors(ctx context.Context, brandName string, productTypes []string) ([]string, error) {
	return f.FindCompetitorsFn(ctx, brandName, productTypes)
}
