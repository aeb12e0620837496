package slugkit

import "context"

// Service defines the main interface for the simple-slug library
type Service interface {
	// GenerateSlug runs the full pipeline for one title: normalize, apply the
	// generation method, fall back for empty candidates, validate, resolve
	// uniqueness, and optionally persist.
	GenerateSlug(ctx context.Context, req GenerateSlugRequest) (*GenerateSlugResult, error)

	// ValidateSlug checks a slug against format rules and namespace
	// availability without modifying anything.
	ValidateSlug(ctx context.Context, req ValidateSlugRequest) (*ValidateSlugResult, error)

	// BatchGenerate regenerates slugs for every item of a content type,
	// isolating per-item failures and returning aggregate counters.
	BatchGenerate(ctx context.Context, req BatchGenerateRequest) (*BatchResult, error)
}
