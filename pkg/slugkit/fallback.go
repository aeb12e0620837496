package slugkit

import (
	"crypto/rand"
	"fmt"
)

// Fallback slug shape: constant prefix plus a fixed-length random suffix,
// 13 characters total. Produced only when normalization yields nothing (e.g.
// a title of pure punctuation); uniqueness is still checked downstream.
const (
	fallbackPrefix       = "page-"
	fallbackSuffixLength = 8
)

// RandomSource supplies the random text used for fallback slugs. It is
// injected so tests can provide a deterministic stub.
type RandomSource interface {
	// AlphanumericString returns n random characters from [A-Za-z0-9].
	AlphanumericString(n int) (string, error)
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// cryptoRandomSource draws from crypto/rand. Not for secrets; it just has to
// avoid predictable collisions across calls in the same process.
type cryptoRandomSource struct{}

// NewCryptoRandomSource returns the default RandomSource backed by crypto/rand.
func NewCryptoRandomSource() RandomSource {
	return cryptoRandomSource{}
}

func (cryptoRandomSource) AlphanumericString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphanumeric[int(b)%len(alphanumeric)]
	}
	return string(out), nil
}

// fallbackSlug builds the opaque replacement slug for untitleable input.
func fallbackSlug(random RandomSource) (string, error) {
	suffix, err := random.AlphanumericString(fallbackSuffixLength)
	if err != nil {
		return "", fmt.Errorf("generate fallback slug: %w", err)
	}
	return fallbackPrefix + suffix, nil
}
