package routes

import (
	"Banter/internal/api/handlers/user"
	"Banter/internal/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// RegisterUserRoutes registers account and session endpoints on the router.
// These are the entry points into authentication, so none of them sit behind
// the auth middleware.
func RegisterUserRoutes(r chi.Router, service users.Service, store *sessions.CookieStore) {
	registerHandler := user.NewRegisterHandler(service)
	loginHandler := user.NewLoginHandler(service, store)

	r.Post("/api/users/register", registerHandler.HandleRegister)
	r.Post("/api/users/login", loginHandler.HandleLogin)
	r.Post("/api/users/logout", loginHandler.HandleLogout)
}
