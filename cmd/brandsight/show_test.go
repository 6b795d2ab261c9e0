package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"brandsight"
	main "brandsight/cmd/brandsight"
	"brandsight/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the snapshot as JSON", func(t *testing.T) {
		t.Parallel()

		store := &mock.InsightStore{
			FindInsightByIDFn: func(_ context.Context, id string) (*brandsight.Insight, error) {
				return &brandsight.Insight{
					ID:         id,
					WebsiteURL: "https://brandx.com",
					BrandName:  "BrandX",
					Record: &brandsight.BrandInsights{
						BrandName:    "BrandX",
						HeroProducts: []string{"https://brandx.com/products/candle"},
					},
					FetchedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Insights: store,
		}

		cmd := &main.ShowCmd{ID: "snap-123"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, `"id": "snap-123"`)
		assert.Contains(t, output, `"brand_name": "BrandX"`)
		assert.Contains(t, output, "https://brandx.com/products/candle")
	})

	t.Run("reports unknown ID", func(t *testing.T) {
		t.Parallel()

		store := &mock.InsightStore{
			FindInsightByIDFn: func(_ context.Context, id string) (*brandsight.Insight, error) {
				return nil, brandsight.Errorf(brandsight.ENOTFOUND, "insight not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Insights: store,
		}

		cmd := &main.ShowCmd{ID: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, brandsight.ENOTFOUND, brandsight.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
