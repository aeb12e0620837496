package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-slug/pkg/slugkit/api"
)

func TestAdminOnly(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	var reached bool
	guarded := api.AdminOnly(ja)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	tokenFor := func(claims map[string]interface{}) string {
		_, tokenString, err := ja.Encode(claims)
		require.NoError(t, err)
		return tokenString
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantPass   bool
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-admin role",
			authHeader: "Bearer " + tokenFor(map[string]interface{}{"role": "editor"}),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing role claim",
			authHeader: "Bearer " + tokenFor(map[string]interface{}{"sub": "someone"}),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin role",
			authHeader: "Bearer " + tokenFor(map[string]interface{}{"role": "admin"}),
			wantStatus: http.StatusOK,
			wantPass:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false

			req := httptest.NewRequest(http.MethodPost, "/batch", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPass, reached)
		})
	}
}
