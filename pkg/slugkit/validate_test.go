package slugkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-slug/pkg/slugkit"
)

func TestValidateSlugFormat(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		wantValid  bool
		wantErrors int
	}{
		{
			name:      "valid english slug",
			slug:      "hello-world",
			wantValid: true,
		},
		{
			name:      "valid korean slug",
			slug:      "안녕하세요-첫-포스트",
			wantValid: true,
		},
		{
			name:      "valid underscore slug",
			slug:      "hello_world_2024",
			wantValid: true,
		},
		{
			name:      "valid fallback slug with mixed case",
			slug:      "page-Ab3xK9Qz",
			wantValid: true,
		},
		{
			name:       "empty",
			slug:       "",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "too short",
			slug:       "a",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "too long",
			slug:       strings.Repeat("a", 101),
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "embedded whitespace",
			slug:       "hello world",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "punctuation",
			slug:       "hello.world",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "control character",
			slug:       "hello\tworld",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "leading separator",
			slug:       "-hello",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "errors accumulate",
			slug:       "-" + strings.Repeat("a", 100) + "!",
			wantValid:  false,
			wantErrors: 3, // too long, edge separator, charset
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slugkit.ValidateSlugFormat(tt.slug)
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Len(t, result.Errors, tt.wantErrors)
			assert.Equal(t, result.IsValid, len(result.Errors) == 0)
		})
	}
}
