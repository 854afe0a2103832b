package post

import (
	"Banter/internal/api/handlers"
	"Banter/internal/core/posts"
	"Banter/internal/core/subforums"
	"errors"
	"log"
	"net/http"
)

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "A post with that ID does not exist")
	case errors.Is(err, subforums.ErrSubforumNotFound):
		// Board existence is delegated to the subforum service; its error
		// arrives here unchanged.
		handlers.WriteError(w, http.StatusNotFound, "SubforumNotFound", "A subforum with that title does not exist")
	case errors.Is(err, posts.ErrInvalidTitle):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidPostTitle", err.Error())
	case errors.Is(err, posts.ErrInvalidBody):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidPostBody", err.Error())
	case errors.Is(err, posts.ErrInvalidTag):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidPostTag", err.Error())
	case errors.Is(err, posts.ErrTagLimitExceeded):
		handlers.WriteError(w, http.StatusBadRequest, "TagLimitExceeded", err.Error())
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Only the post's author may do that")
	case errors.Is(err, posts.ErrPostAlreadyLocked):
		handlers.WriteError(w, http.StatusConflict, "PostAlreadyLocked", "Post already marked as locked")
	case errors.Is(err, posts.ErrPostNotLocked):
		handlers.WriteError(w, http.StatusConflict, "PostNotLocked", "Post already marked as unlocked")
	case errors.Is(err, posts.ErrInvalidPage):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidPage", "Requested page is out of range")
	default:
		log.Printf("[POST] handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
