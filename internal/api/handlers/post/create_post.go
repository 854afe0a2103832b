package post

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/posts"
	"encoding/json"
	"net/http"
)

// CreatePostHandler handles post creation
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// HandleCreatePost creates a new post in a subforum
// POST /api/posts
//
// Request body: { "subforum": "...", "title": "...", "body": "...",
//                 "media": [...], "tags": [...] }
func (h *CreatePostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Subforum == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "subforum is required")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}
	req.Author = username

	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
