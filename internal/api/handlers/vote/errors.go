package vote

import (
	"Banter/internal/api/handlers"
	"Banter/internal/core/posts"
	"Banter/internal/core/votes"
	"errors"
	"log"
	"net/http"
)

// handleServiceError converts vote service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votes.ErrVoteNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VoteNotFound", "No vote exists for this content")
	case errors.Is(err, votes.ErrInvalidContent):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidContent", "The voted content does not exist")
	case errors.Is(err, votes.ErrInvalidContentKind):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidContentKind", "Unknown content kind")
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "A post with that ID does not exist")
	default:
		log.Printf("[VOTE] handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
