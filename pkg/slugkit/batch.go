package slugkit

import (
	"context"
	"fmt"
	"time"
)

// maxBatchErrors caps how many per-item failure messages a BatchResult
// carries; the FailedCount keeps the true total.
const maxBatchErrors = 25

// BatchGenerate applies the generation pipeline to every item of a content
// type. One bad item never aborts the run: its failure is counted and the
// loop moves on. A context deadline or cancellation stops the run between
// items, which is a partial completion, not an error.
//
// Authorization is the caller's concern; this method assumes the caller has
// already verified elevated privilege.
func (s *service) BatchGenerate(ctx context.Context, req BatchGenerateRequest) (*BatchResult, error) {
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContentType, req.ContentType)
	}
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

	start := time.Now()
	result := &BatchResult{}

	items, err := s.repository.ListItems(ctx, req.ContentType, 0)
	if err != nil {
		return nil, &SlugError{ContentType: req.ContentType, Op: "list", Err: err}
	}

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		if req.MaxItems > 0 && result.TotalProcessed >= req.MaxItems {
			break
		}
		result.TotalProcessed++

		// Items that already carry a well-formed slug are left untouched
		// unless the caller forces regeneration.
		if !req.ForceUpdate && item.Slug != "" && ValidateSlugFormat(item.Slug).IsValid {
			result.SkippedCount++
			continue
		}

		itemID := item.ID
		_, err := s.GenerateSlug(ctx, GenerateSlugRequest{
			Title:       item.Title,
			Method:      method,
			Separator:   separator,
			ContentType: req.ContentType,
			ExcludeID:   &itemID,
			EntityID:    &itemID,
			Persist:     true,
		})
		if err != nil {
			result.FailedCount++
			if len(result.Errors) < maxBatchErrors {
				result.Errors = append(result.Errors, fmt.Sprintf("item %s: %v", item.ID, err))
			}
			continue
		}
		result.UpdatedCount++
	}

	result.ProcessingTime = time.Since(start)
	_ = s.events.BatchCompleted(ctx, req.ContentType, result)

	return result, nil
}
