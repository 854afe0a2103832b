package post

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/posts"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EditPostHandler handles post edits
type EditPostHandler struct {
	service posts.Service
}

// NewEditPostHandler creates a new edit post handler
func NewEditPostHandler(service posts.Service) *EditPostHandler {
	return &EditPostHandler{service: service}
}

// HandleEditPost replaces a post's content on behalf of its author
// PATCH /api/posts/{postID}
//
// Request body: { "title": "...", "body": "...", "media": [...], "tags": [...] }
func (h *EditPostHandler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	var req posts.EditPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.EditPost(r.Context(), username, postID, req); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
