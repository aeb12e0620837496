package slugkit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogEventSink writes slug lifecycle events to a structured logger. It is the
// sink wired in by config when event logging is enabled.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates an event sink logging through the given logger.
// A nil logger falls back to slog.Default().
func NewLogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

func (l *LogEventSink) SlugAssigned(ctx context.Context, entityID uuid.UUID, contentType ContentType, slug string) error {
	l.logger.InfoContext(ctx, "slug assigned",
		"entity_id", entityID,
		"content_type", contentType,
		"slug", slug)
	return nil
}

func (l *LogEventSink) SlugRegenerated(ctx context.Context, entityID uuid.UUID, contentType ContentType, oldSlug, newSlug string) error {
	l.logger.InfoContext(ctx, "slug regenerated",
		"entity_id", entityID,
		"content_type", contentType,
		"old_slug", oldSlug,
		"new_slug", newSlug)
	return nil
}

func (l *LogEventSink) BatchCompleted(ctx context.Context, contentType ContentType, result *BatchResult) error {
	l.logger.InfoContext(ctx, "batch slug run completed",
		"content_type", contentType,
		"total", result.TotalProcessed,
		"updated", result.UpdatedCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
		"duration", result.ProcessingTime)
	return nil
}
