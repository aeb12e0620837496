package slugkit

import (
	"context"

	"github.com/google/uuid"
)

// NoopEventSink is a no-operation implementation of EventSink
// Useful for production when you don't need event handling or for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// SlugAssigned does nothing and returns nil
func (n *NoopEventSink) SlugAssigned(ctx context.Context, entityID uuid.UUID, contentType ContentType, slug string) error {
	return nil
}

// SlugRegenerated does nothing and returns nil
func (n *NoopEventSink) SlugRegenerated(ctx context.Context, entityID uuid.UUID, contentType ContentType, oldSlug, newSlug string) error {
	return nil
}

// BatchCompleted does nothing and returns nil
func (n *NoopEventSink) BatchCompleted(ctx context.Context, contentType ContentType, result *BatchResult) error {
	return nil
}
