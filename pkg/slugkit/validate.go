package slugkit

import "fmt"

// Validation rule messages. Each rule produces a distinct error; a slug can
// violate several at once and all violations are reported.
const (
	errSlugEmpty   = "slug cannot be empty"
	errSlugCharset = "slug may only contain letters, digits, Hangul syllables, and '-' or '_'"
	errSlugEdgeSep = "slug cannot start or end with a separator"
)

// ValidateSlugFormat checks a slug (user-supplied or generated) against the
// format rules, independent of uniqueness. Errors accumulate; IsValid is true
// iff no rule was violated.
func ValidateSlugFormat(slug string) ValidationResult {
	var errs []string

	runes := []rune(slug)
	if len(runes) == 0 {
		errs = append(errs, errSlugEmpty)
	} else {
		if len(runes) < MinSlugLength {
			errs = append(errs, fmt.Sprintf("slug must be at least %d characters", MinSlugLength))
		}
		if len(runes) > MaxSlugLength {
			errs = append(errs, fmt.Sprintf("slug must be at most %d characters", MaxSlugLength))
		}
		if first, last := runes[0], runes[len(runes)-1]; isSeparatorRune(first) || isSeparatorRune(last) {
			errs = append(errs, errSlugEdgeSep)
		}
	}

	for _, r := range slug {
		if !isSlugRune(r) {
			errs = append(errs, errSlugCharset)
			break
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// isSlugRune reports whether r belongs to the allowed slug character classes.
// Uppercase ASCII is accepted because fallback suffixes are mixed-case;
// normalization lowercases title-derived slugs before this runs.
func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case isHangulSyllable(r):
		return true
	case isSeparatorRune(r):
		return true
	}
	return false
}

func isSeparatorRune(r rune) bool {
	return r == '-' || r == '_'
}
