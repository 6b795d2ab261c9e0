package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"brandsight"
	"brandsight/mock"
	bslog "brandsight/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query, depth string, maxResults int) ([]brandsight.SearchResult, error) {
				return []brandsight.SearchResult{
					{URL: "https://rival.com", Title: "Rival"},
					{URL: "https://other.com", Title: "Other"},
				}, nil
			},
		}

		searcher := bslog.NewLoggingSearcher(inner, logger)
		results, err := searcher.Search(context.Background(), "brands like BrandX", "basic", 8)

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query, depth string, maxResults int) ([]brandsight.SearchResult, error) {
				return nil, errors.New("provider down")
			},
		}

		searcher := bslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "brands like BrandX", "basic", 8)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"provider down\"")
	})
}
