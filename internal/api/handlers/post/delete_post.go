package post

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/posts"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeletePostHandler handles post deletion
type DeletePostHandler struct {
	service posts.Service
}

// NewDeletePostHandler creates a new delete post handler
func NewDeletePostHandler(service posts.Service) *DeletePostHandler {
	return &DeletePostHandler{service: service}
}

// HandleDeletePost removes a post on behalf of its author
// DELETE /api/posts/{postID}
func (h *DeletePostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.DeletePost(r.Context(), username, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
