package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-slug/pkg/slugkit"
	"github.com/tendant/simple-slug/pkg/slugkit/repo/memory"
)

func newItem(contentType slugkit.ContentType, title, slug string) *slugkit.ContentItem {
	now := time.Now().UTC()
	return &slugkit.ContentItem{
		ID:          uuid.New(),
		ContentType: contentType,
		Title:       title,
		Slug:        slug,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestExistsSlug(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	item := newItem(slugkit.ContentTypePost, "Hello", "hello")
	require.NoError(t, repo.CreateItem(ctx, item))

	exists, err := repo.ExistsSlug(ctx, slugkit.ContentTypePost, "hello", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	// Scoped by content type.
	exists, err = repo.ExistsSlug(ctx, slugkit.ContentTypePage, "hello", nil)
	require.NoError(t, err)
	assert.False(t, exists)

	// Excluding the owner makes its own slug available.
	exists, err = repo.ExistsSlug(ctx, slugkit.ContentTypePost, "hello", &item.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsSlug(ctx, slugkit.ContentTypePost, "missing", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveSlug(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	item := newItem(slugkit.ContentTypePost, "Hello", "")
	require.NoError(t, repo.CreateItem(ctx, item))

	require.NoError(t, repo.SaveSlug(ctx, item.ID, slugkit.ContentTypePost, "hello"))

	stored, err := repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Slug)

	// Saving a new slug releases the old one.
	require.NoError(t, repo.SaveSlug(ctx, item.ID, slugkit.ContentTypePost, "hello-again"))
	exists, err := repo.ExistsSlug(ctx, slugkit.ContentTypePost, "hello", nil)
	require.NoError(t, err)
	assert.False(t, exists)

	// Re-saving the same slug is a no-op, not a conflict.
	require.NoError(t, repo.SaveSlug(ctx, item.ID, slugkit.ContentTypePost, "hello-again"))
}

func TestSaveSlugConflict(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	first := newItem(slugkit.ContentTypePost, "First", "taken")
	second := newItem(slugkit.ContentTypePost, "Second", "")
	require.NoError(t, repo.CreateItem(ctx, first))
	require.NoError(t, repo.CreateItem(ctx, second))

	err := repo.SaveSlug(ctx, second.ID, slugkit.ContentTypePost, "taken")
	assert.ErrorIs(t, err, slugkit.ErrSlugConflict)
}

func TestSaveSlugUnknownItem(t *testing.T) {
	repo := memory.New()

	err := repo.SaveSlug(context.Background(), uuid.New(), slugkit.ContentTypePost, "ghost")
	assert.ErrorIs(t, err, slugkit.ErrItemNotFound)
}

func TestSaveSlugConcurrent(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	items := make([]*slugkit.ContentItem, 20)
	for i := range items {
		items[i] = newItem(slugkit.ContentTypePost, "Racer", "")
		require.NoError(t, repo.CreateItem(ctx, items[i]))
	}

	// All racers want the same slug; exactly one may win.
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for _, item := range items {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			if err := repo.SaveSlug(ctx, id, slugkit.ContentTypePost, "racer"); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(item.ID)
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestListItems(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	older := newItem(slugkit.ContentTypePost, "Older", "")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newItem(slugkit.ContentTypePost, "Newer", "")
	page := newItem(slugkit.ContentTypePage, "Page", "")

	require.NoError(t, repo.CreateItem(ctx, newer))
	require.NoError(t, repo.CreateItem(ctx, older))
	require.NoError(t, repo.CreateItem(ctx, page))

	items, err := repo.ListItems(ctx, slugkit.ContentTypePost, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Older", items[0].Title)
	assert.Equal(t, "Newer", items[1].Title)

	limited, err := repo.ListItems(ctx, slugkit.ContentTypePost, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Older", limited[0].Title)
}

func TestGetItemReturnsCopy(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	item := newItem(slugkit.ContentTypeTag, "Tag", "tag")
	require.NoError(t, repo.CreateItem(ctx, item))

	got, err := repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	got.Slug = "mutated"

	again, err := repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "tag", again.Slug)
}
