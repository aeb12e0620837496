package slugkit

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence collaborator contract required by the
// slug service. Implementations must scope slug uniqueness by content type
// and are expected to enforce a unique constraint on (content_type, slug) so
// that concurrent SaveSlug calls for the same value surface ErrSlugConflict
// instead of silently duplicating.
type Repository interface {
	// ExistsSlug reports whether slug is already taken within the content
	// type's namespace. When excludeID is non-nil, the entity with that ID is
	// ignored so a re-save of an unchanged slug stays a no-op.
	ExistsSlug(ctx context.Context, contentType ContentType, slug string, excludeID *uuid.UUID) (bool, error)

	// SaveSlug writes the resolved slug onto the entity. It returns
	// ErrSlugConflict when a concurrent writer claimed the value first and
	// ErrItemNotFound when the entity does not exist.
	SaveSlug(ctx context.Context, entityID uuid.UUID, contentType ContentType, slug string) error

	// Item operations
	CreateItem(ctx context.Context, item *ContentItem) error
	GetItem(ctx context.Context, id uuid.UUID) (*ContentItem, error)

	// ListItems returns items of the given content type ordered by creation
	// time, oldest first. limit <= 0 means no limit.
	ListItems(ctx context.Context, contentType ContentType, limit int) ([]*ContentItem, error)
}

// EventSink defines the interface for slug lifecycle event handling. Sink
// failures are logged by callers and never fail the triggering operation.
type EventSink interface {
	// SlugAssigned is fired when an entity receives its first slug
	SlugAssigned(ctx context.Context, entityID uuid.UUID, contentType ContentType, slug string) error

	// SlugRegenerated is fired when an existing slug is replaced
	SlugRegenerated(ctx context.Context, entityID uuid.UUID, contentType ContentType, oldSlug, newSlug string) error

	// BatchCompleted is fired after a batch run finishes, including partial runs
	BatchCompleted(ctx context.Context, contentType ContentType, result *BatchResult) error
}
