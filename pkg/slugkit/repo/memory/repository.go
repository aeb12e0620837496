package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-slug/pkg/slugkit"
)

// slugKey addresses one slug inside its content-type namespace.
type slugKey struct {
	contentType slugkit.ContentType
	slug        string
}

// Repository implements slugkit.Repository using in-memory storage. The
// mutex serializes check-then-write, standing in for the unique index a real
// store would carry on (content_type, slug).
type Repository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*slugkit.ContentItem
	slugs map[slugKey]uuid.UUID // (content_type, slug) -> item_id
}

// New creates a new in-memory repository
func New() slugkit.Repository {
	return &Repository{
		items: make(map[uuid.UUID]*slugkit.ContentItem),
		slugs: make(map[slugKey]uuid.UUID),
	}
}

func (r *Repository) ExistsSlug(ctx context.Context, contentType slugkit.ContentType, slug string, excludeID *uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, exists := r.slugs[slugKey{contentType, slug}]
	if !exists {
		return false, nil
	}
	if excludeID != nil && owner == *excludeID {
		return false, nil
	}
	return true, nil
}

func (r *Repository) SaveSlug(ctx context.Context, entityID uuid.UUID, contentType slugkit.ContentType, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[entityID]
	if !exists || item.ContentType != contentType {
		return slugkit.ErrItemNotFound
	}

	// Re-check under the write lock; a reader-side Exists result may be stale
	// by the time the save runs.
	key := slugKey{contentType, slug}
	if owner, taken := r.slugs[key]; taken && owner != entityID {
		return slugkit.ErrSlugConflict
	}

	if item.Slug != "" {
		delete(r.slugs, slugKey{contentType, item.Slug})
	}
	item.Slug = slug
	item.UpdatedAt = time.Now().UTC()
	r.slugs[key] = entityID

	return nil
}

func (r *Repository) CreateItem(ctx context.Context, item *slugkit.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.Slug != "" {
		key := slugKey{item.ContentType, item.Slug}
		if owner, taken := r.slugs[key]; taken && owner != item.ID {
			return slugkit.ErrSlugConflict
		}
		r.slugs[key] = item.ID
	}

	// Store a copy to avoid external modifications
	itemCopy := *item
	r.items[item.ID] = &itemCopy

	return nil
}

func (r *Repository) GetItem(ctx context.Context, id uuid.UUID) (*slugkit.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, slugkit.ErrItemNotFound
	}
	// Return a copy to prevent external modifications
	itemCopy := *item
	return &itemCopy, nil
}

func (r *Repository) ListItems(ctx context.Context, contentType slugkit.ContentType, limit int) ([]*slugkit.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*slugkit.ContentItem
	for _, item := range r.items {
		if item.ContentType == contentType {
			itemCopy := *item
			result = append(result, &itemCopy)
		}
	}

	// Oldest first so batch runs walk items in creation order; break ties by
	// ID for deterministic iteration.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}
