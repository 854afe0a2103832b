package post

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/posts"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// LockPostHandler handles locking and unlocking posts
type LockPostHandler struct {
	service posts.Service
}

// NewLockPostHandler creates a new lock post handler
func NewLockPostHandler(service posts.Service) *LockPostHandler {
	return &LockPostHandler{service: service}
}

// HandleLockPost locks a post against further edits
// POST /api/posts/{postID}/lock
func (h *LockPostHandler) HandleLockPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.LockPost(r.Context(), username, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"locked": true})
}

// HandleUnlockPost lifts the lock on a post
// POST /api/posts/{postID}/unlock
func (h *LockPostHandler) HandleUnlockPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.UnlockPost(r.Context(), username, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"locked": false})
}
