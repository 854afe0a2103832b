package user

import (
	"Banter/internal/api/handlers"
	"Banter/internal/api/middleware"
	"Banter/internal/core/users"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

// LoginHandler handles session login and logout
type LoginHandler struct {
	service users.Service
	store   *sessions.CookieStore
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, store *sessions.CookieStore) *LoginHandler {
	return &LoginHandler{service: service, store: store}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin authenticates the credentials and opens a cookie session
// POST /api/users/login
//
// Request body: { "username": "...", "password": "..." }
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	u, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// A stale cookie from a rotated secret still yields a fresh session.
		session, _ = h.store.New(r, middleware.SessionName)
	}
	session.Values["username"] = u.Username
	if err := session.Save(r, w); err != nil {
		log.Printf("[ERROR] Failed to save session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"username": u.Username})
}

// HandleLogout clears the cookie session
// POST /api/users/logout
func (h *LoginHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		session, _ = h.store.New(r, middleware.SessionName)
	}
	delete(session.Values, "username")
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		log.Printf("[ERROR] Failed to clear session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}
