package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-slug/pkg/slugkit"
)

// SlugHandler handles HTTP requests for slug operations using pkg/slugkit
type SlugHandler struct {
	service    slugkit.Service
	repository slugkit.Repository
}

// NewSlugHandler creates a new slug handler
func NewSlugHandler(service slugkit.Service, repository slugkit.Repository) *SlugHandler {
	return &SlugHandler{
		service:    service,
		repository: repository,
	}
}

// Routes returns the routes for slug generation and validation. The batch
// route is intentionally not included here; mount BatchRoutes behind an
// admin guard.
func (h *SlugHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateSlug)
	r.Post("/validate", h.ValidateSlug)

	r.Post("/items", h.CreateItem)
	r.Get("/items/{id}", h.GetItem)

	return r
}

// BatchRoutes returns the privileged batch-regeneration routes. Callers must
// mount these behind admin authorization.
func (h *SlugHandler) BatchRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/batch", h.BatchGenerate)

	return r
}

// GenerateSlugRequest is the request body for generating a slug
type GenerateSlugRequest struct {
	Title       string `json:"title"`
	Method      string `json:"method,omitempty"`
	Separator   string `json:"separator,omitempty"`
	ContentType string `json:"content_type"`
	ExcludeID   string `json:"exclude_id,omitempty"`
	EntityID    string `json:"entity_id,omitempty"`
	Persist     bool   `json:"persist,omitempty"`
}

// ValidateSlugRequest is the request body for validating a slug
type ValidateSlugRequest struct {
	Slug        string `json:"slug"`
	ContentType string `json:"content_type"`
	ExcludeID   string `json:"exclude_id,omitempty"`
}

// BatchGenerateRequest is the request body for a batch regeneration run
type BatchGenerateRequest struct {
	ContentType string `json:"content_type"`
	Method      string `json:"method,omitempty"`
	Separator   string `json:"separator,omitempty"`
	ForceUpdate bool   `json:"force_update,omitempty"`
	MaxItems    int    `json:"max_items,omitempty"`
}

// CreateItemRequest is the request body for registering a content item
type CreateItemRequest struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
}

// ErrorResponse is the structured error body returned on failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateSlug generates a slug for a title
func (h *SlugHandler) GenerateSlug(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	domainReq := slugkit.GenerateSlugRequest{
		Title:       req.Title,
		Method:      slugkit.GenerateMethod(req.Method),
		Separator:   req.Separator,
		ContentType: slugkit.ContentType(req.ContentType),
		Persist:     req.Persist,
	}
	var err error
	if domainReq.ExcludeID, err = parseOptionalID(req.ExcludeID); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if domainReq.EntityID, err = parseOptionalID(req.EntityID); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.GenerateSlug(r.Context(), domainReq)
	if err != nil {
		slog.Error("Failed to generate slug", "content_type", req.ContentType, "error", err)
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// ValidateSlug validates a slug's format and availability
func (h *SlugHandler) ValidateSlug(w http.ResponseWriter, r *http.Request) {
	var req ValidateSlugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	domainReq := slugkit.ValidateSlugRequest{
		Slug:        req.Slug,
		ContentType: slugkit.ContentType(req.ContentType),
	}
	var err error
	if domainReq.ExcludeID, err = parseOptionalID(req.ExcludeID); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ValidateSlug(r.Context(), domainReq)
	if err != nil {
		slog.Error("Failed to validate slug", "slug", req.Slug, "error", err)
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// BatchGenerate runs a bulk regeneration for a content type. Authorization
// has already happened in the middleware chain this handler is mounted under.
func (h *SlugHandler) BatchGenerate(w http.ResponseWriter, r *http.Request) {
	var req BatchGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.BatchGenerate(r.Context(), slugkit.BatchGenerateRequest{
		ContentType: slugkit.ContentType(req.ContentType),
		Method:      slugkit.GenerateMethod(req.Method),
		Separator:   req.Separator,
		ForceUpdate: req.ForceUpdate,
		MaxItems:    req.MaxItems,
	})
	if err != nil {
		slog.Error("Batch slug run failed", "content_type", req.ContentType, "error", err)
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// CreateItem registers a content item so it participates in slug resolution
func (h *SlugHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	contentType := slugkit.ContentType(req.ContentType)
	if !contentType.Valid() {
		renderError(w, r, http.StatusBadRequest, slugkit.ErrInvalidContentType)
		return
	}

	now := time.Now().UTC()
	item := &slugkit.ContentItem{
		ID:          uuid.New(),
		ContentType: contentType,
		Title:       req.Title,
		Slug:        req.Slug,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repository.CreateItem(r.Context(), item); err != nil {
		slog.Error("Failed to create item", "content_type", req.ContentType, "error", err)
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// GetItem returns one content item by ID
func (h *SlugHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	item, err := h.repository.GetItem(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, item)
}

func parseOptionalID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// renderServiceError maps domain errors onto HTTP status codes.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, slugkit.ErrInvalidMethod),
		errors.Is(err, slugkit.ErrInvalidContentType),
		errors.Is(err, slugkit.ErrInvalidSeparator):
		renderError(w, r, http.StatusBadRequest, err)
	case errors.Is(err, slugkit.ErrItemNotFound):
		renderError(w, r, http.StatusNotFound, err)
	case errors.Is(err, slugkit.ErrSlugConflict), errors.Is(err, slugkit.ErrSlugExhausted):
		renderError(w, r, http.StatusConflict, err)
	default:
		renderError(w, r, http.StatusInternalServerError, err)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}
