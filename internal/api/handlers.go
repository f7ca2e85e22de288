package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/checklistservice"
	"github.com/nwestra/checkpad/internal/store"
)

// Handler holds the checklist route handlers.
type Handler struct {
	svc *checklistservice.Service
	db  *store.DB
}

// NewHandler creates a new Handler.
func NewHandler(svc *checklistservice.Service, db *store.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody("title is required"))
	case errors.Is(err, apperr.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody("already exists"))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// ListChecklists handles GET /checklist.
func (h *Handler) ListChecklists(w http.ResponseWriter, r *http.Request) {
	checklists, err := h.svc.ListChecklists(r.Context(), identity(r))
	if err != nil {
		writeServiceError(w, err, "list checklists")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"checklists": checklists,
	})
}

// GetChecklist handles GET /checklist/{id}. A missing id is a plain 404;
// a checklist owned by someone else redirects back to the list view,
// since reaching another owner's checklist is a navigation issue, not a
// fault.
func (h *Handler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cl, err := h.svc.GetChecklist(r.Context(), identity(r), id)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			seeOther(w, r, "/checklist")
			return
		}
		writeServiceError(w, err, "get checklist")
		return
	}
	writeJSON(w, http.StatusOK, cl)
}

// CreateChecklist handles POST /checklist with form-encoded input.
func (h *Handler) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	req := checklistRequestFromForm(r)
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	cl, err := h.svc.CreateChecklist(r.Context(), identity(r), req.Title, req.Description)
	if err != nil {
		writeServiceError(w, err, "create checklist")
		return
	}
	writeJSON(w, http.StatusCreated, cl)
}

// DeleteChecklist handles DELETE /checklist/{id}.
func (h *Handler) DeleteChecklist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteChecklist(r.Context(), identity(r), id); err != nil {
		writeServiceError(w, err, "delete checklist")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateItem handles POST /checklist/{id}/items with form-encoded input.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	checklistID := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	req := itemRequestFromForm(r)
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	item, err := h.svc.CreateItem(r.Context(), identity(r), checklistID, req.Title, req.Notes)
	if err != nil {
		writeServiceError(w, err, "create item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// ToggleItem handles POST /checklist/items/{itemID}/toggle. The desired
// state comes from the "done" form field.
func (h *Handler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	done, err := strconv.ParseBool(r.PostFormValue("done"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("done must be true or false"))
		return
	}
	if err := h.svc.ToggleItem(r.Context(), identity(r), itemID, done); err != nil {
		writeServiceError(w, err, "toggle item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateItem handles PUT /checklist/items/{itemID} with form-encoded input.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	req := itemRequestFromForm(r)
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.UpdateItem(r.Context(), identity(r), itemID, req.Title, req.Notes); err != nil {
		writeServiceError(w, err, "update item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem handles DELETE /checklist/items/{itemID}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if err := h.svc.DeleteItem(r.Context(), identity(r), itemID); err != nil {
		writeServiceError(w, err, "delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Profile handles GET /profile, returning the authenticated user.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.db.GetUser(r.Context(), identity(r))
	if err != nil {
		writeServiceError(w, err, "profile")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
