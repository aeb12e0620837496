package api

import (
	"net/http"

	"github.com/go-chi/jwtauth"
)

// AdminOnly returns middleware that verifies the request's JWT and requires
// its "role" claim to be "admin". Batch regeneration routes are mounted
// behind it; everything else stays public to the surrounding CMS, which does
// its own per-entity authorization.
func AdminOnly(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		verified := jwtauth.Verifier(ja)(jwtauth.Authenticator(requireAdminRole(next)))
		return verified
	}
}

func requireAdminRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
