package vote

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/votes"
	"net/http"
)

// GetVoteHandler returns the caller's own vote on a piece of content
type GetVoteHandler struct {
	service votes.Service
}

// NewGetVoteHandler creates a new get vote handler
func NewGetVoteHandler(service votes.Service) *GetVoteHandler {
	return &GetVoteHandler{service: service}
}

// HandleGetVote retrieves the caller's vote
// GET /api/votes?contentId=...&kind=post
func (h *GetVoteHandler) HandleGetVote(w http.ResponseWriter, r *http.Request) {
	contentID := r.URL.Query().Get("contentId")
	if contentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "contentId is required")
		return
	}

	kind, err := votes.ParseContentKind(r.URL.Query().Get("kind"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidContentKind", "kind must be 'post' or 'comment'")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	vote, err := h.service.GetVote(r.Context(), username, contentID, kind)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, vote)
}
