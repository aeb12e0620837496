// Package slugkit provides a reusable library for URL slug generation and
// uniqueness resolution with pluggable repository backends.
//
// It exposes a single Service interface that orchestrates title normalization
// (ASCII and Korean Hangul), generation strategy selection, fallback slugs for
// untitleable input, format validation, per-content-type uniqueness probing,
// and bulk regeneration with per-item failure isolation. Implementations of
// repositories (e.g., memory, Postgres) are provided under subpackages.
//
// Uniqueness Strategy
//
// Slugs only need to be unique within their content type (post, page,
// category, tag), never globally. The resolver probes candidate, candidate-1,
// candidate-2, ... against the repository; the repository is expected to back
// SaveSlug with a unique index on (content_type, slug) and report conflicts,
// which the service recovers from by re-running resolution. Numeric suffixes
// are always appended to the unsuffixed base, so repeated regeneration never
// stacks suffixes.
package slugkit
