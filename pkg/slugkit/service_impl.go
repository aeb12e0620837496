package slugkit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// defaultMaxProbes bounds sequential uniqueness probing. Exceeding it fails
// the item with ErrSlugExhausted rather than scanning forever.
const defaultMaxProbes = 2000

// conflictRetries is how many times a SaveSlug conflict triggers fresh
// resolution before the operation fails.
const conflictRetries = 2

// service implements the Service interface
type service struct {
	repository Repository
	random     RandomSource
	events     EventSink
	maxProbes  int

	// Applied when a request omits the method or separator.
	defaultMethod    GenerateMethod
	defaultSeparator string
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the persistence collaborator for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithRandomSource overrides the randomness source used for fallback slugs
func WithRandomSource(random RandomSource) Option {
	return func(s *service) {
		s.random = random
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.events = sink
	}
}

// WithMaxProbes overrides the uniqueness probing bound
func WithMaxProbes(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxProbes = n
		}
	}
}

// WithDefaultMethod sets the generation method used when requests omit one
func WithDefaultMethod(method GenerateMethod) Option {
	return func(s *service) {
		if method != "" {
			s.defaultMethod = method
		}
	}
}

// WithDefaultSeparator sets the separator used when requests omit one
func WithDefaultSeparator(separator string) Option {
	return func(s *service) {
		if separator != "" {
			s.defaultSeparator = separator
		}
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		random:           NewCryptoRandomSource(),
		events:           NewNoopEventSink(),
		maxProbes:        defaultMaxProbes,
		defaultMethod:    MethodAuto,
		defaultSeparator: SeparatorDash,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if !s.defaultMethod.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, s.defaultMethod)
	}
	if !ValidSeparator(s.defaultSeparator) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, s.defaultSeparator)
	}

	return s, nil
}

func (s *service) GenerateSlug(ctx context.Context, req GenerateSlugRequest) (*GenerateSlugResult, error) {
	method := req.Method
	if method == "" {
		method = s.defaultMethod
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
	}
	separator := req.Separator
	if separator == "" {
		separator = s.defaultSeparator
	}
	if !ValidSeparator(separator) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, req.Separator)
	}
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContentType, req.ContentType)
	}

	candidate, err := applyMethod(req.Title, method, separator)
	if err != nil {
		return nil, err
	}
	// Only a fully empty candidate (pure punctuation, no usable characters
	// under the method) gets the opaque fallback. A short but non-empty
	// candidate keeps its text and surfaces the min-length validation error.
	if candidate == "" {
		candidate, err = fallbackSlug(s.random)
		if err != nil {
			return nil, err
		}
	}
	candidate = TruncateSlug(candidate, separator, MaxSlugLength)

	result := &GenerateSlugResult{
		OriginalTitle:  req.Title,
		GeneratedSlug:  candidate,
		MethodUsed:     method,
		Separator:      separator,
		Validation:     ValidateSlugFormat(candidate),
		CharacterCount: utf8.RuneCountInString(req.Title),
		ContainsKorean: ContainsHangul(candidate),
		ContentType:    req.ContentType,
		Suggestions:    s.buildSuggestions(req.Title, method),
	}
	if !result.Validation.IsValid {
		return result, nil
	}

	unique, wasUnique, err := s.resolveUnique(ctx, candidate, req.ContentType, separator, req.ExcludeID)
	if err != nil {
		return nil, err
	}
	result.UniqueSlug = unique
	result.IsUnique = wasUnique

	if req.Persist {
		if req.EntityID == nil {
			return nil, fmt.Errorf("entity id is required to persist a slug")
		}
		if err := s.persistResolved(ctx, req, separator, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *service) ValidateSlug(ctx context.Context, req ValidateSlugRequest) (*ValidateSlugResult, error) {
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContentType, req.ContentType)
	}

	validation := ValidateSlugFormat(req.Slug)
	result := &ValidateSlugResult{
		Slug:             req.Slug,
		IsValid:          validation.IsValid,
		ValidationErrors: validation.Errors,
	}
	if !validation.IsValid {
		return result, nil
	}

	exists, err := s.repository.ExistsSlug(ctx, req.ContentType, req.Slug, req.ExcludeID)
	if err != nil {
		return nil, &SlugError{ContentType: req.ContentType, Slug: req.Slug, Op: "exists", Err: err}
	}
	result.IsUnique = !exists
	if exists {
		suggested, _, err := s.resolveUnique(ctx, req.Slug, req.ContentType, detectSeparator(req.Slug), req.ExcludeID)
		if err != nil {
			return nil, err
		}
		result.SuggestedSlug = suggested
	}

	return result, nil
}

// buildSuggestions renders the forced-korean and underscore alternatives.
// Neither touches persistence; untitleable input yields empty suggestions.
func (s *service) buildSuggestions(title string, method GenerateMethod) SlugSuggestions {
	korean, _ := applyMethod(title, MethodKorean, SeparatorDash)
	underscore, _ := applyMethod(title, method, SeparatorUnderscore)
	return SlugSuggestions{
		Korean:     TruncateSlug(korean, SeparatorDash, MaxSlugLength),
		Underscore: TruncateSlug(underscore, SeparatorUnderscore, MaxSlugLength),
	}
}

// resolveUnique returns the candidate unchanged when it is free, otherwise
// the first free base-N probe. The trailing numeric suffix of the candidate
// is stripped before probing so repeated regeneration appends to the base
// instead of stacking suffixes.
func (s *service) resolveUnique(ctx context.Context, candidate string, contentType ContentType, separator string, excludeID *uuid.UUID) (string, bool, error) {
	exists, err := s.repository.ExistsSlug(ctx, contentType, candidate, excludeID)
	if err != nil {
		return "", false, &SlugError{ContentType: contentType, Slug: candidate, Op: "exists", Err: err}
	}
	if !exists {
		return candidate, true, nil
	}

	base := stripNumericSuffix(candidate, separator)
	for i := 1; i <= s.maxProbes; i++ {
		probe := suffixedSlug(base, separator, i)
		exists, err := s.repository.ExistsSlug(ctx, contentType, probe, excludeID)
		if err != nil {
			return "", false, &SlugError{ContentType: contentType, Slug: probe, Op: "exists", Err: err}
		}
		if !exists {
			return probe, false, nil
		}
	}

	return "", false, &SlugError{ContentType: contentType, Slug: candidate, Op: "resolve", Err: ErrSlugExhausted}
}

// persistResolved writes the resolved slug, re-running resolution on write
// conflicts a bounded number of times. Event sink failures are best-effort
// and never fail the save.
func (s *service) persistResolved(ctx context.Context, req GenerateSlugRequest, separator string, result *GenerateSlugResult) error {
	entityID := *req.EntityID
	prev, err := s.repository.GetItem(ctx, entityID)
	if err != nil {
		return &SlugError{ContentType: req.ContentType, Slug: result.UniqueSlug, Op: "get", Err: err}
	}

	for attempt := 0; ; attempt++ {
		err := s.repository.SaveSlug(ctx, entityID, req.ContentType, result.UniqueSlug)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrSlugConflict) || attempt >= conflictRetries {
			return &SlugError{ContentType: req.ContentType, Slug: result.UniqueSlug, Op: "save", Err: err}
		}
		// Lost the race; resolve again against fresh namespace state. The
		// entity being written is excluded so its own row never collides.
		unique, wasUnique, rerr := s.resolveUnique(ctx, result.GeneratedSlug, req.ContentType, separator, &entityID)
		if rerr != nil {
			return rerr
		}
		result.UniqueSlug = unique
		result.IsUnique = wasUnique
	}

	if prev.Slug == "" {
		_ = s.events.SlugAssigned(ctx, entityID, req.ContentType, result.UniqueSlug)
	} else if prev.Slug != result.UniqueSlug {
		_ = s.events.SlugRegenerated(ctx, entityID, req.ContentType, prev.Slug, result.UniqueSlug)
	}

	return nil
}

// suffixedSlug appends separator+n, shortening the base first when the result
// would exceed the length cap.
func suffixedSlug(base, separator string, n int) string {
	suffix := separator + strconv.Itoa(n)
	baseRunes := []rune(base)
	if len(baseRunes)+len(suffix) > MaxSlugLength {
		base = TruncateSlug(base, separator, MaxSlugLength-len(suffix))
	}
	return base + suffix
}

// stripNumericSuffix removes one trailing separator+digits group, e.g.
// "my-post-2" -> "my-post". The base must stay non-empty, so purely numeric
// slugs are returned unchanged. Only the final group is ever stripped;
// dash-number endings that are part of the title cost at most one extra
// probe, never a wrong answer.
func stripNumericSuffix(slug, separator string) string {
	idx := strings.LastIndex(slug, separator)
	if idx <= 0 {
		return slug
	}
	tail := slug[idx+len(separator):]
	if tail == "" {
		return slug
	}
	for _, r := range tail {
		if r < '0' || r > '9' {
			return slug
		}
	}
	return slug[:idx]
}

// detectSeparator picks the separator used by an existing slug so suggested
// alternatives keep its style. Dash wins for mixed or separator-free slugs.
func detectSeparator(slug string) string {
	if strings.Contains(slug, SeparatorUnderscore) && !strings.Contains(slug, SeparatorDash) {
		return SeparatorUnderscore
	}
	return SeparatorDash
}
