package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nwestra/checkpad/internal/accounts"
	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/auth"
)

// AuthHandler holds the sign-in/sign-up/sign-out route handlers.
type AuthHandler struct {
	accounts *accounts.Service
	sessions *auth.Sessions
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(acc *accounts.Service, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{accounts: acc, sessions: sessions}
}

// SignInPage handles GET /signin, the target of the route guard's
// redirect. Page rendering is the front end's job; this confirms the
// entry point exists.
func (h *AuthHandler) SignInPage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "sign in required"})
}

// SignIn handles POST /signin with form-encoded credentials. On success
// it sets the session cookie and redirects to the checklist section.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	req := SignInRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorBody("invalid credentials"))
			return
		}
		slog.Error("sign in failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if err := h.sessions.Issue(w, user.ID); err != nil {
		slog.Error("issue session failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	seeOther(w, r, "/checklist")
}

// SignUp handles POST /signup with form-encoded fields. A new account
// is signed in immediately.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	req := SignUpRequest{
		Email:    r.PostFormValue("email"),
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	user, err := h.accounts.SignUp(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrAlreadyExists):
			writeJSON(w, http.StatusConflict, errorBody("email already registered"))
		case errors.Is(err, apperr.ErrValidation):
			writeJSON(w, http.StatusBadRequest, errorBody("email, name, and password are required"))
		default:
			slog.Error("sign up failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	if err := h.sessions.Issue(w, user.ID); err != nil {
		slog.Error("issue session failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	seeOther(w, r, "/checklist")
}

// SignOut handles POST /signout.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	seeOther(w, r, "/signin")
}
