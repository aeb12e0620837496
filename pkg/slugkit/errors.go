package slugkit

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrInvalidMethod indicates an unsupported generation method was requested
	ErrInvalidMethod = errors.New("invalid generation method")

	// ErrInvalidContentType indicates an unknown content type namespace
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidSeparator indicates a separator other than '-' or '_'
	ErrInvalidSeparator = errors.New("invalid separator")

	// ErrSlugExhausted indicates uniqueness probing exceeded its bound
	ErrSlugExhausted = errors.New("slug namespace exhausted")

	// ErrSlugConflict indicates a concurrent write claimed the slug first
	ErrSlugConflict = errors.New("slug already taken")

	// ErrItemNotFound indicates a content item was not found
	ErrItemNotFound = errors.New("content item not found")

	// ErrRepositoryUnavailable indicates the persistence collaborator is unreachable
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// SlugError represents an error related to slug operations
type SlugError struct {
	ContentType ContentType
	Slug        string
	Op          string
	Err         error
}

func (e *SlugError) Error() string {
	return fmt.Sprintf("slug operation %s failed for %q in %s namespace: %v", e.Op, e.Slug, e.ContentType, e.Err)
}

func (e *SlugError) Unwrap() error {
	return e.Err
}
