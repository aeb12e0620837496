package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-slug/pkg/slugkit"
	"github.com/tendant/simple-slug/pkg/slugkit/api"
	"github.com/tendant/simple-slug/pkg/slugkit/repo/memory"
)

func setupHandler(t *testing.T) (*api.SlugHandler, slugkit.Repository) {
	t.Helper()

	repo := memory.New()
	svc, err := slugkit.New(slugkit.WithRepository(repo))
	require.NoError(t, err)

	return api.NewSlugHandler(svc, repo), repo
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateSlugEndpoint(t *testing.T) {
	handler, _ := setupHandler(t)
	router := handler.Routes()

	rec := postJSON(t, router, "/generate", api.GenerateSlugRequest{
		Title:       "Hello World",
		ContentType: "post",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result slugkit.GenerateSlugResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "hello-world", result.GeneratedSlug)
	assert.Equal(t, "hello-world", result.UniqueSlug)
	assert.True(t, result.IsUnique)
	assert.True(t, result.Validation.IsValid)
}

func TestGenerateSlugEndpoint_BadRequests(t *testing.T) {
	handler, _ := setupHandler(t)
	router := handler.Routes()

	tests := []struct {
		name string
		req  api.GenerateSlugRequest
	}{
		{
			name: "unknown method",
			req:  api.GenerateSlugRequest{Title: "Hi There", Method: "fancy", ContentType: "post"},
		},
		{
			name: "unknown content type",
			req:  api.GenerateSlugRequest{Title: "Hi There", ContentType: "widget"},
		},
		{
			name: "bad separator",
			req:  api.GenerateSlugRequest{Title: "Hi There", Separator: ".", ContentType: "post"},
		},
		{
			name: "malformed exclude id",
			req:  api.GenerateSlugRequest{Title: "Hi There", ContentType: "post", ExcludeID: "not-a-uuid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/generate", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestValidateSlugEndpoint(t *testing.T) {
	handler, repo := setupHandler(t)
	router := handler.Routes()

	now := time.Now().UTC()
	require.NoError(t, repo.CreateItem(context.Background(), &slugkit.ContentItem{
		ID:          uuid.New(),
		ContentType: slugkit.ContentTypePost,
		Title:       "Taken",
		Slug:        "taken",
		CreatedAt:   now,
		UpdatedAt:   now,
	}))

	rec := postJSON(t, router, "/validate", api.ValidateSlugRequest{
		Slug:        "taken",
		ContentType: "post",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result slugkit.ValidateSlugResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsValid)
	assert.False(t, result.IsUnique)
	assert.Equal(t, "taken-1", result.SuggestedSlug)
}

func TestBatchEndpoint(t *testing.T) {
	handler, repo := setupHandler(t)
	router := handler.BatchRoutes()

	now := time.Now().UTC()
	for _, title := range []string{"First Post", "Second Post"} {
		require.NoError(t, repo.CreateItem(context.Background(), &slugkit.ContentItem{
			ID:          uuid.New(),
			ContentType: slugkit.ContentTypePost,
			Title:       title,
			CreatedAt:   now,
			UpdatedAt:   now,
		}))
	}

	rec := postJSON(t, router, "/batch", api.BatchGenerateRequest{
		ContentType: "post",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result slugkit.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, 0, result.FailedCount)
}

func TestCreateAndGetItem(t *testing.T) {
	handler, _ := setupHandler(t)
	router := handler.Routes()

	rec := postJSON(t, router, "/items", api.CreateItemRequest{
		ContentType: "page",
		Title:       "About Us",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created slugkit.ContentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, slugkit.ContentTypePage, created.ContentType)

	req := httptest.NewRequest(http.MethodGet, "/items/"+created.ID.String(), nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched slugkit.ContentItem
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "About Us", fetched.Title)
}

func TestGetItemNotFound(t *testing.T) {
	handler, _ := setupHandler(t)
	router := handler.Routes()

	req := httptest.NewRequest(http.MethodGet, "/items/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
