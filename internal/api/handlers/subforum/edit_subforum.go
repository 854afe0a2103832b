package subforum

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/subforums"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EditSubforumHandler handles subforum description edits
type EditSubforumHandler struct {
	service subforums.Service
}

// NewEditSubforumHandler creates a new edit subforum handler
func NewEditSubforumHandler(service subforums.Service) *EditSubforumHandler {
	return &EditSubforumHandler{service: service}
}

type editSubforumRequest struct {
	Description string `json:"description"`
}

// HandleEditSubforum replaces a board's description on behalf of its creator
// PATCH /api/subforums/{title}
//
// Request body: { "description": "..." }
func (h *EditSubforumHandler) HandleEditSubforum(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	var req editSubforumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.EditSubforum(r.Context(), username, title, req.Description); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
