package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie under which the login session lives
const SessionName = "banter_session"

// Context key for storing the authenticated username
type contextKey string

const usernameKey contextKey = "username"

// SessionAuthMiddleware enforces cookie-session authentication for protected
// routes. Downstream handlers receive the username through the request
// context and trust it as-is.
type SessionAuthMiddleware struct {
	store *sessions.CookieStore
}

// NewSessionAuthMiddleware creates a new session auth middleware
func NewSessionAuthMiddleware(store *sessions.CookieStore) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{store: store}
}

// RequireAuth ensures the request carries a valid login session.
// If not authenticated, returns 401; otherwise injects the username into the
// request context.
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// A bad or tampered cookie reads as unauthenticated.
			writeAuthError(w, "Invalid session")
			return
		}

		username, ok := session.Values["username"].(string)
		if !ok || username == "" {
			writeAuthError(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
	})
}

// WithUsername returns a context carrying the authenticated username.
// Exported for handler tests.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername extracts the authenticated username from the request context.
// Returns "" if the request is unauthenticated.
func GetUsername(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
