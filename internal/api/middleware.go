// Package api implements the Checkpad HTTP surface using chi.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nwestra/checkpad/internal/auth"
)

type ctxKey int

const identityKey ctxKey = iota

// Protected reports whether a path falls under a guarded section.
// Pure function of the path so the redirect policy is testable on its own.
func Protected(path string) bool {
	return strings.HasPrefix(path, "/checklist") || strings.HasPrefix(path, "/profile")
}

// WithIdentity resolves the session once per request and stashes the
// user id (possibly empty) in the request context.
func WithIdentity(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ := sessions.Resolve(r)
			ctx := context.WithValue(r.Context(), identityKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RouteGuard redirects unauthenticated requests for protected sections
// to the sign-in entry point. Everything else passes through unchanged.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Protected(r.URL.Path) && identity(r) == "" {
			seeOther(w, r, "/signin")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// identity returns the resolved user id for the request, or "".
func identity(r *http.Request) string {
	userID, _ := r.Context().Value(identityKey).(string)
	return userID
}
