package subforum

import (
	"Banter/internal/api/handlers"
	"Banter/internal/core/subforums"
	"errors"
	"log"
	"net/http"
)

// handleServiceError maps subforum service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, subforums.ErrSubforumNotFound):
		handlers.WriteError(w, http.StatusNotFound, "SubforumNotFound", "Subforum not found")
	case errors.Is(err, subforums.ErrTitleExists):
		handlers.WriteError(w, http.StatusConflict, "TitleExists", "A subforum with that title already exists")
	case errors.Is(err, subforums.ErrInvalidTitle):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidTitle", "Subforum title must be words of letters and digits separated by single underscores")
	case errors.Is(err, subforums.ErrInvalidDescription):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidDescription", "Description must be non-empty and at most 650 characters")
	case errors.Is(err, subforums.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Only the subforum creator may do that")
	default:
		log.Printf("[ERROR] Unexpected subforum service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
