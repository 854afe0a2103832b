package subforum

import (
	"Banter/internal/api/handlers"
	"Banter/internal/core/subforums"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetSubforumHandler handles subforum retrieval and paging metadata
type GetSubforumHandler struct {
	service subforums.Service
}

// NewGetSubforumHandler creates a new get subforum handler
func NewGetSubforumHandler(service subforums.Service) *GetSubforumHandler {
	return &GetSubforumHandler{service: service}
}

// HandleGetSubforum retrieves a single board by title
// GET /api/subforums/{title}
func (h *GetSubforumHandler) HandleGetSubforum(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	sf, err := h.service.GetSubforum(r.Context(), title)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, sf)
}

// HandleGetSubforumInfo returns paging metadata for one board
// GET /api/subforums/{title}/info?page=&limit=
func (h *GetSubforumHandler) HandleGetSubforumInfo(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	h.writeInfo(w, r, title)
}

// HandleGetGlobalInfo returns paging metadata across all boards
// GET /api/info?page=&limit=
func (h *GetSubforumHandler) HandleGetGlobalInfo(w http.ResponseWriter, r *http.Request) {
	h.writeInfo(w, r, "")
}

func (h *GetSubforumHandler) writeInfo(w http.ResponseWriter, r *http.Request, title string) {
	page := parseInt64(r.URL.Query().Get("page"), 0)
	limit := parseInt64(r.URL.Query().Get("limit"), 0)

	info, err := h.service.GetSubforumInfo(r.Context(), title, page, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, info)
}

func parseInt64(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
