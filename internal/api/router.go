package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nwestra/checkpad/internal/accounts"
	"github.com/nwestra/checkpad/internal/auth"
	"github.com/nwestra/checkpad/internal/checklistservice"
	"github.com/nwestra/checkpad/internal/store"
)

// NewRouter creates a chi router with all application routes mounted.
// Identity is resolved once per request; the route guard redirects
// unauthenticated requests under /checklist and /profile to /signin.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *checklistservice.Service, acc *accounts.Service, sessions *auth.Sessions, db *store.DB, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, db)
	ah := NewAuthHandler(acc, sessions)

	r := chi.NewRouter()
	r.Use(WithIdentity(sessions))
	r.Use(RouteGuard)

	// Session entry points (unguarded).
	r.Get("/signin", ah.SignInPage)
	r.Post("/signin", ah.SignIn)
	r.Post("/signup", ah.SignUp)
	r.Post("/signout", ah.SignOut)

	// Checklist CRUD (guarded prefix).
	r.Get("/checklist", h.ListChecklists)
	r.Post("/checklist", h.CreateChecklist)
	r.Get("/checklist/{id}", h.GetChecklist)
	r.Delete("/checklist/{id}", h.DeleteChecklist)

	// Items. Static "items" segment wins over the {id} pattern above.
	r.Post("/checklist/{id}/items", h.CreateItem)
	r.Post("/checklist/items/{itemID}/toggle", h.ToggleItem)
	r.Put("/checklist/items/{itemID}", h.UpdateItem)
	r.Delete("/checklist/items/{itemID}", h.DeleteItem)

	// Profile (guarded prefix).
	r.Get("/profile", h.Profile)

	// Invalidation event stream. Outside the guarded prefixes, so it
	// rejects anonymous clients instead of redirecting them.
	if sseHandler != nil {
		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			if identity(r) == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			sseHandler.ServeHTTP(w, r)
		})
	}

	return r
}
