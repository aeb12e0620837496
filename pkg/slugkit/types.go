package slugkit

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the domain type for slug namespaces. Slugs are unique per
// content type, not globally.
type ContentType string

// Content type constants (typed).
const (
	ContentTypePost     ContentType = "post"
	ContentTypePage     ContentType = "page"
	ContentTypeCategory ContentType = "category"
	ContentTypeTag      ContentType = "tag"
)

// Valid reports whether the content type is one of the known namespaces.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypePost, ContentTypePage, ContentTypeCategory, ContentTypeTag:
		return true
	}
	return false
}

// GenerateMethod selects how a title is turned into a slug candidate.
type GenerateMethod string

// Generation method constants (typed).
const (
	// MethodAuto keeps whatever mix of ASCII and Hangul the title has.
	MethodAuto GenerateMethod = "auto"
	// MethodKorean forces retention of Hangul; Latin substrings are still
	// lowercased and kept.
	MethodKorean GenerateMethod = "korean"
	// MethodEnglish strips all non-ASCII content before normalizing.
	MethodEnglish GenerateMethod = "english"
)

// Valid reports whether the method is supported.
func (m GenerateMethod) Valid() bool {
	switch m {
	case MethodAuto, MethodKorean, MethodEnglish:
		return true
	}
	return false
}

// Separator constants. Only dash and underscore are URL-safe word separators.
const (
	SeparatorDash       = "-"
	SeparatorUnderscore = "_"
)

// ValidSeparator reports whether s is an allowed separator.
func ValidSeparator(s string) bool {
	return s == SeparatorDash || s == SeparatorUnderscore
}

// SlugCandidate is the immutable intermediate produced for one generation
// request. It is never persisted itself; only the resolved unique slug is.
type SlugCandidate struct {
	OriginalTitle string         `json:"original_title"`
	Normalized    string         `json:"normalized"`
	Separator     string         `json:"separator"`
	Method        GenerateMethod `json:"method"`
}

// ContentItem is the slug-bearing view of a content entity (post, page,
// category or tag). The owning CMS holds the full entity; this library only
// reads titles and writes slugs.
type ContentItem struct {
	ID          uuid.UUID   `json:"id"`
	ContentType ContentType `json:"content_type"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ValidationResult itemizes format-rule violations for one slug. IsValid is
// true iff Errors is empty.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// BatchResult aggregates the outcome of one batch regeneration run. It is
// built incrementally and returned to the caller; it is not persisted.
type BatchResult struct {
	TotalProcessed int           `json:"total_processed"`
	UpdatedCount   int           `json:"updated_count"`
	SkippedCount   int           `json:"skipped_count"`
	FailedCount    int           `json:"failed_count"`
	ProcessingTime time.Duration `json:"processing_time"`

	// Errors holds per-item failure details, capped so a pathological run
	// cannot balloon the response.
	Errors []string `json:"errors,omitempty"`
}
