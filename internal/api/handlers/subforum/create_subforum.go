package subforum

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/subforums"
	"encoding/json"
	"net/http"
)

// CreateSubforumHandler handles subforum creation
type CreateSubforumHandler struct {
	service subforums.Service
}

// NewCreateSubforumHandler creates a new create subforum handler
func NewCreateSubforumHandler(service subforums.Service) *CreateSubforumHandler {
	return &CreateSubforumHandler{service: service}
}

type createSubforumRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HandleCreateSubforum creates a new board
// POST /api/subforums
//
// Request body: { "title": "...", "description": "..." }
func (h *CreateSubforumHandler) HandleCreateSubforum(w http.ResponseWriter, r *http.Request) {
	var req createSubforumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.CreateSubforum(r.Context(), username, req.Title, req.Description); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]string{"title": req.Title})
}
