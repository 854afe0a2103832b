package user

import (
	"Banter/internal/api/handlers"
	"Banter/internal/core/users"
	"errors"
	"log"
	"net/http"
)

// handleServiceError maps user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.Is(err, users.ErrUsernameTaken):
		handlers.WriteError(w, http.StatusConflict, "UsernameTaken", "That username is already registered")
	case errors.Is(err, users.ErrInvalidUsername):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidUsername", "Username must be between 3 and 40 alphanumeric characters")
	case errors.Is(err, users.ErrInvalidPassword):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidPassword", "Password must contain a lowercase letter, an uppercase letter, a number, and be between 8 and 256 characters")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid username or password")
	default:
		log.Printf("[ERROR] Unexpected user service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
