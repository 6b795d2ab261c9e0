package mock

import (
	"context"

	"brandsight"
)

var _ brandsight.Structurer = (*Structurer)(nil)

// Structurer is a mock implementation of brandsight.Structurer.
type Structurer struct {
	StructureFn func(ctx context.Context, text string, schema string) (map[string]any, error)
}

func (s *Structurer) Structure(ctx context.Context, text string, schema string) (map[string]any, error) {
	return s.StructureFn(ctx, text, schema)
}
