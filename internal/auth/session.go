package auth

import (
	"net/http"
	"strings"
	"time"
)

// Sessions resolves, issues, and clears request sessions. Resolve is
// side-effect free and cheap enough to call repeatedly within one
// request. Any verification failure means "no identity" — the session
// layer fails closed, never open.
type Sessions struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
}

// NewSessions creates a session manager signing tokens with secret.
func NewSessions(secret, cookieName string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), cookieName: cookieName, ttl: ttl}
}

// Resolve extracts the authenticated user id from the session cookie,
// falling back to an Authorization bearer token for non-browser clients.
// Returns ("", false) when no valid session exists.
func (s *Sessions) Resolve(r *http.Request) (string, bool) {
	if c, err := r.Cookie(s.cookieName); err == nil && c.Value != "" {
		if userID, err := UserIDFromToken(c.Value, s.secret); err == nil {
			return userID, true
		}
		return "", false
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if userID, err := UserIDFromToken(strings.TrimPrefix(h, "Bearer "), s.secret); err == nil {
			return userID, true
		}
	}
	return "", false
}

// Issue mints a session token for userID and sets it as a cookie.
func (s *Sessions) Issue(w http.ResponseWriter, userID string) error {
	token, err := GenerateToken(userID, s.secret, s.ttl)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
