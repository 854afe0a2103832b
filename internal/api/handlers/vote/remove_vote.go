package vote

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/votes"
	"encoding/json"
	"net/http"
)

// RemoveVoteHandler handles vote retraction
type RemoveVoteHandler struct {
	service votes.Service
}

// NewRemoveVoteHandler creates a new remove vote handler
func NewRemoveVoteHandler(service votes.Service) *RemoveVoteHandler {
	return &RemoveVoteHandler{service: service}
}

type removeVoteRequest struct {
	ContentID string `json:"contentId"`
	Kind      string `json:"kind"`
}

// HandleRemoveVote retracts the caller's vote on a piece of content
// DELETE /api/votes
//
// Request body: { "contentId": "...", "kind": "post" }
func (h *RemoveVoteHandler) HandleRemoveVote(w http.ResponseWriter, r *http.Request) {
	var req removeVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.ContentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "contentId is required")
		return
	}

	kind, err := votes.ParseContentKind(req.Kind)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidContentKind", "kind must be 'post' or 'comment'")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.RemoveVote(r.Context(), username, req.ContentID, kind); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
