package slog

import (
	"context"
	"log/slog"
	"time"

	"brandsight"
)

// Ensure LoggingStructurer implements brandsight.Structurer.
var _ brandsight.Structurer = (*LoggingStructurer)(nil)

// LoggingStructurer wraps a Structurer with logging.
type LoggingStructurer struct {
	next   brandsight.Structurer
	logger *slog.Logger
}

// NewLoggingStructurer creates a new LoggingStructurer.
func NewLoggingStructurer(next brandsight.Structurer, logger *slog.Logger) *LoggingStructurer {
	return &LoggingStructurer{next: next, logger: logger}
}

// Structure delegates to the wrapped structurer and logs the operation.
func (s *LoggingStructurer) Structure(ctx context.Context, text string, schema string) (data map[string]any, err error) {
	defer func(begin time.Time) {
		s.logger.Info("structure",
			"chars", len(text),
			"keys", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Structure(ctx, text, schema)
}
