package vote

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/votes"
	"encoding/json"
	"net/http"
)

// CreateVoteHandler handles vote creation and in-place updates
type CreateVoteHandler struct {
	service votes.Service
}

// NewCreateVoteHandler creates a new create vote handler
func NewCreateVoteHandler(service votes.Service) *CreateVoteHandler {
	return &CreateVoteHandler{service: service}
}

type createVoteRequest struct {
	ContentID string `json:"contentId"`
	Kind      string `json:"kind"`
	IsLike    bool   `json:"isLike"`
}

// HandleCreateVote casts or updates the caller's vote on a piece of content
// PUT /api/votes
//
// Request body: { "contentId": "...", "kind": "post", "isLike": true }
func (h *CreateVoteHandler) HandleCreateVote(w http.ResponseWriter, r *http.Request) {
	var req createVoteRequest
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

	if err := h.service.AddVote(r.Context(), username, req.ContentID, kind, req.IsLike); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"voted": true})
}
