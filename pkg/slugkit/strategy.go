package slugkit

import "fmt"

// applyMethod runs the normalizer under the requested generation policy and
// returns the normalized candidate. An empty result means the title had no
// usable characters under that policy.
func applyMethod(title string, method GenerateMethod, separator string) (string, error) {
	switch method {
	case MethodAuto, MethodKorean:
		// Both preserve the title's script mix; "korean" exists as an
		// explicit request so callers can force Hangul retention even when a
		// site-wide default says otherwise. Latin substrings are kept and
		// lowercased either way.
		return Normalize(title, separator), nil
	case MethodEnglish:
		return Normalize(stripNonASCII(title), separator), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
}
