package slugkit

import "github.com/google/uuid"

// Request/Response DTOs

// GenerateSlugRequest contains parameters for generating one slug.
//
// An empty Method or Separator falls back to the service's configured
// defaults (MethodAuto and SeparatorDash unless overridden).
// ExcludeID marks the entity currently being edited so its own stored slug
// does not count as a collision. When Persist is set, EntityID names the
// entity the resolved slug is written to.
type GenerateSlugRequest struct {
	Title       string
	Method      GenerateMethod
	Separator   string
	ContentType ContentType
	ExcludeID   *uuid.UUID
	EntityID    *uuid.UUID
	Persist     bool
}

// SlugSuggestions offers alternative renderings for caller convenience. They
// are computed without touching persistence.
type SlugSuggestions struct {
	Korean     string `json:"korean"`
	Underscore string `json:"underscore"`
}

// GenerateSlugResult is the structured outcome of one generation request.
type GenerateSlugResult struct {
	OriginalTitle  string           `json:"original_title"`
	GeneratedSlug  string           `json:"generated_slug"`
	UniqueSlug     string           `json:"unique_slug"`
	MethodUsed     GenerateMethod   `json:"method_used"`
	Separator      string           `json:"separator"`
	IsUnique       bool             `json:"is_unique"`
	Validation     ValidationResult `json:"validation"`
	CharacterCount int              `json:"character_count"`
	ContainsKorean bool             `json:"contains_korean"`
	ContentType    ContentType      `json:"content_type"`
	Suggestions    SlugSuggestions  `json:"suggestions"`
}

// ValidateSlugRequest contains parameters for validating a slug.
type ValidateSlugRequest struct {
	Slug        string
	ContentType ContentType
	ExcludeID   *uuid.UUID
}

// ValidateSlugResult reports format validity and namespace availability.
// SuggestedSlug is populated only when the slug is valid but already taken.
type ValidateSlugResult struct {
	Slug             string   `json:"slug"`
	IsValid          bool     `json:"is_valid"`
	IsUnique         bool     `json:"is_unique"`
	ValidationErrors []string `json:"validation_errors"`
	SuggestedSlug    string   `json:"suggested_slug,omitempty"`
}

// BatchGenerateRequest contains parameters for a bulk regeneration run.
//
// The operation is privileged: callers are expected to have verified elevated
// access before invoking it; the service itself performs no authorization.
// MaxItems caps how many items one run touches (0 means unbounded); a context
// deadline is honored between items and yields a partial, reportable result.
type BatchGenerateRequest struct {
	ContentType ContentType
	Method      GenerateMethod
	Separator   string
	ForceUpdate bool
	MaxItems    int
}
