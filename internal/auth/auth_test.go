package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", testSecret, time.Hour)
	require.NoError(t, err)

	userID, err := UserIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, []byte("another-secret-key"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedToken(t *testing.T) {
	_, err := UserIDFromToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
	assert.False(t, CheckPassword("garbage", "password123"))
}

func TestSessionsIssueAndResolve(t *testing.T) {
	s := NewSessions(string(testSecret), "session", time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, s.Issue(w, "user-7"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/checklist", nil)
	req.AddCookie(cookies[0])
	userID, ok := s.Resolve(req)
	assert.True(t, ok)
	assert.Equal(t, "user-7", userID)
}

func TestSessionsResolveBearer(t *testing.T) {
	s := NewSessions(string(testSecret), "session", time.Hour)
	token, err := GenerateToken("user-9", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/checklist", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	userID, ok := s.Resolve(req)
	assert.True(t, ok)
	assert.Equal(t, "user-9", userID)
}

func TestSessionsFailClosed(t *testing.T) {
	s := NewSessions(string(testSecret), "session", time.Hour)

	// No cookie at all.
	req := httptest.NewRequest(http.MethodGet, "/checklist", nil)
	_, ok := s.Resolve(req)
	assert.False(t, ok)

	// Tampered cookie.
	req = httptest.NewRequest(http.MethodGet, "/checklist", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tampered"})
	_, ok = s.Resolve(req)
	assert.False(t, ok)

	// Valid cookie for a different signing key.
	foreign, err := GenerateToken("user-1", []byte("some-foreign-secret"), time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/checklist", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: foreign})
	_, ok = s.Resolve(req)
	assert.False(t, ok)
}

func TestSessionsClear(t *testing.T) {
	s := NewSessions(string(testSecret), "session", time.Hour)
	w := httptest.NewRecorder()
	s.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
