package mock

import (
	"context"

	"brandsight"
)

var _ brandsight.InsightService = (*InsightService)(nil)

// InsightService is a mock implementation of brandsight.InsightService.
type InsightService struct {
	FetchInsightsFn func(ctx context.Context, websiteURL string) (*brandsight.BrandInsights, error)
}

func (s *InsightService) FetchInsights(ctx context.Context, websiteURL string) (*brandsight.BrandInsights, error) {
	return s.FetchInsightsFn(ctx, websiteURL)
}

var _ brandsight.InsightStore = (*InsightStore)(nil)

// InsightStore is a mock implementation of brandsight.InsightStore.
type InsightStore struct {
	CreateInsightFn   func(ctx context.Context, insight *brandsight.Insight) error
	FindInsightByIDFn func(ctx context.Context, id string) (*brandsight.Insight, error)
	FindInsightsFn    func(ctx context.Context, filter brandsight.InsightFilter) ([]*brandsight.Insight, error)
	DeleteInsightFn   func(ctx context.Context, id string) error
}

func (s *InsightStore) CreateInsight(ctx context.Context, insight *brandsight.Insight) error {
	return s.CreateInsightFn(ctx, insight)
}

func (s *InsightStore) FindInsightByID(ctx context.Context, id string) (*brandsight.Insight, error) {
	return s.FindInsightByIDFn(ctx, id)
}

func (s *InsightStore) FindInsights(ctx context.Context, filter brandsight.InsightFilter) ([]*brandsight.Insight, error) {
	return s.FindInsightsFn(ctx, filter)
}

func (s *InsightStore) DeleteInsight(ctx context.Context, id string) error {
	return s.DeleteInsightFn(ctx, id)
}
