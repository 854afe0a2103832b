package subforum

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/subforums"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteSubforumHandler handles subforum deletion
type DeleteSubforumHandler struct {
	service subforums.Service
}

// NewDeleteSubforumHandler creates a new delete subforum handler
func NewDeleteSubforumHandler(service subforums.Service) *DeleteSubforumHandler {
	return &DeleteSubforumHandler{service: service}
}

// HandleDeleteSubforum removes a board on behalf of its creator
// DELETE /api/subforums/{title}
func (h *DeleteSubforumHandler) HandleDeleteSubforum(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.DeleteSubforum(r.Context(), username, title); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
