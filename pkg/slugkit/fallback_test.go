package slugkit_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-slug/pkg/slugkit"
)

func TestCryptoRandomSource(t *testing.T) {
	source := slugkit.NewCryptoRandomSource()

	alnum := regexp.MustCompile(`^[A-Za-z0-9]+$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := source.AlphanumericString(8)
		require.NoError(t, err)
		assert.Len(t, s, 8)
		assert.Regexp(t, alnum, s)
		seen[s] = true
	}

	// Collisions across calls in the same process must be unlikely.
	assert.Greater(t, len(seen), 45)
}
