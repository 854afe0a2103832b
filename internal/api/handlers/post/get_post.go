package post

import (
	"Banter/internal/api/handlers"
	"Banter/internal/core/posts"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetPostHandler handles single-post reads and paginated listing
type GetPostHandler struct {
	service posts.Service
}

// NewGetPostHandler creates a new get post handler
func NewGetPostHandler(service posts.Service) *GetPostHandler {
	return &GetPostHandler{service: service}
}

// HandleGetPost retrieves a post by ID
// GET /api/posts/{postID}
func (h *GetPostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}

// HandleListPosts retrieves one page of posts, oldest first
// GET /api/posts?subforum=...&page=0&limit=20
func (h *GetPostHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := parseInt64(query.Get("page"), 0)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidPage", "page must be an integer")
		return
	}

	limit, err := parseInt64(query.Get("limit"), 0)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
		return
	}

	results, err := h.service.ListPosts(r.Context(), query.Get("subforum"), page, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if results == nil {
		results = []*posts.Post{}
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": results,
		"page":  page,
	})
}

func parseInt64(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
