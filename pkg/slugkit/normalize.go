package slugkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slug length bounds. Candidates longer than MaxSlugLength are truncated by
// the generation pipeline before validation; user-supplied slugs over the
// limit fail validation instead.
const (
	MinSlugLength = 2
	MaxSlugLength = 100
)

// Normalize converts a raw title into a slug candidate: ASCII letters are
// lowercased, Hangul syllables pass through unchanged, and every run of other
// characters collapses into a single separator. Leading and trailing
// separators are trimmed. An empty result signals the caller to fall back to
// a generated slug; it is not an error.
//
// The title is NFC-normalized first so decomposed Jamo input slugs the same
// as precomposed Hangul. Normalize is deterministic and idempotent. An empty
// separator falls back to the dash.
func Normalize(title, separator string) string {
	if separator == "" {
		separator = SeparatorDash
	}
	title = norm.NFC.String(title)
	sep := rune(separator[0])

	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range title {
		var keep rune
		switch {
		case r >= 'A' && r <= 'Z':
			keep = r + ('a' - 'A')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			keep = r
		case isHangulSyllable(r):
			keep = r
		default:
			// Punctuation, whitespace, other scripts, and the separator
			// itself all collapse into one separator.
			if b.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			b.WriteRune(sep)
			pendingSep = false
		}
		b.WriteRune(keep)
	}

	return b.String()
}

// ContainsHangul reports whether s contains at least one Hangul syllable.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if isHangulSyllable(r) {
			return true
		}
	}
	return false
}

// isHangulSyllable reports whether r is in the precomposed Hangul syllable
// block (U+AC00..U+D7A3).
func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// stripNonASCII removes every rune above the ASCII range. Used by the english
// generation method before normalization.
func stripNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}

// TruncateSlug cuts slug to at most max runes, then trims any separator run
// the cut landed on so the result never ends mid-separator. An empty
// separator falls back to the dash.
func TruncateSlug(slug, separator string, max int) string {
	runes := []rune(slug)
	if len(runes) <= max {
		return slug
	}
	if separator == "" {
		separator = SeparatorDash
	}
	sep := rune(separator[0])
	cut := string(runes[:max])
	return strings.TrimRightFunc(cut, func(r rune) bool {
		return r == sep || r == '-' || r == '_'
	})
}
