package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"brandsight"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ brandsight.InsightStore = (*InsightStore)(nil)

// InsightStore implements brandsight.InsightStore using SQLite. The
// BrandInsights record is stored as a JSON column; a content hash over
// the encoded record makes repeat fetches of an unchanged site cheap to
// detect.
type InsightStore struct {
	db *DB
}

// NewInsightStore creates a new InsightStore.
func NewInsightStore(db *DB) *InsightStore {
	return &InsightStore{db: db}
}

// CreateInsight stores a new insight snapshot. The ID, content hash,
// and fetch time are assigned here.
func (s *InsightStore) CreateInsight(ctx context.Context, insight *brandsight.Insight) error {
	if err := insight.Validate(); err != nil {
		return err
	}

	record, err := json.Marshal(insight.Record)
	if err != nil {
		return fmt.Errorf("failed to encode insight record: %w", err)
	}

	insight.ID = uuid.New().String()
	insight.ContentHash = hashContent(record)
	insight.FetchedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO insights (id, website_url, brand_name, record, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, insight.ID, insight.WebsiteURL, insight.BrandName, string(record),
		insight.ContentHash, insight.FetchedAt.Format(time.RFC3339))

	return err
}

// FindInsightByID retrieves an insight by ID.
func (s *InsightStore) FindInsightByID(ctx context.Context, id string) (*brandsight.Insight, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, website_url, brand_name, record, content_hash, fetched_at
		FROM insights
		WHERE id = ?
	`, id)

	insight, err := scanInsight(row.Scan)
	if err == sql.ErrNoRows {
		return nil, brandsight.Errorf(brandsight.ENOTFOUND, "insight not found")
	}
	if err != nil {
		return nil, err
	}

	return insight, nil
}

// FindInsights retrieves insights matching the filter, newest first.
func (s *InsightStore) FindInsights(ctx context.Context, filter brandsight.InsightFilter) ([]*brandsight.Insight, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, website_url, brand_name, record, content_hash, fetched_at FROM insights WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.WebsiteURL != nil {
		query.WriteString(" AND website_url = ?")
		args = append(args, *filter.WebsiteURL)
	}
	if filter.BrandName != nil {
		query.WriteString(" AND brand_name = ?")
		args = append(args, *filter.BrandName)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []*brandsight.Insight
	for rows.Next() {
		insight, err := scanInsight(rows.Scan)
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	return insights, rows.Err()
}

// DeleteInsight permanently removes an insight.
func (s *InsightStore) DeleteInsight(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM insights WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return brandsight.Errorf(brandsight.ENOTFOUND, "insight not found")
	}

	return nil
}

// scanInsight reads one insights row using the provided scan function.
func scanInsight(scan func(dest ...any) error) (*brandsight.Insight, error) {
	var insight brandsight.Insight
	var record, fetchedAt string

	if err := scan(&insight.ID, &insight.WebsiteURL, &insight.BrandName,
		&record, &insight.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(record), &insight.Record); err != nil {
		return nil, fmt.Errorf("failed to decode insight record: %w", err)
	}

	var err error
	insight.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &insight, nil
}

// hashContent computes a hash of the encoded record using xxhash.
func hashContent(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(content))
}
