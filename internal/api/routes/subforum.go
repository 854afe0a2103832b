package routes

import (
	"Banter/internal/api/handlers/subforum"
	"Banter/internal/api/middleware"
	"Banter/internal/core/subforums"

	"github.com/go-chi/chi/v5"
)

// RegisterSubforumRoutes registers subforum endpoints on the router
func RegisterSubforumRoutes(r chi.Router, service subforums.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	// Initialize handlers
	createHandler := subforum.NewCreateSubforumHandler(service)
	getHandler := subforum.NewGetSubforumHandler(service)
	editHandler := subforum.NewEditSubforumHandler(service)
	deleteHandler := subforum.NewDeleteSubforumHandler(service)

	// Read endpoints - public access
	r.Get("/api/info", getHandler.HandleGetGlobalInfo)
	r.Get("/api/subforums/{title}", getHandler.HandleGetSubforum)
	r.Get("/api/subforums/{title}/info", getHandler.HandleGetSubforumInfo)

	// Write endpoints - require a login session
	r.With(authMiddleware.RequireAuth).Post("/api/subforums", createHandler.HandleCreateSubforum)
	r.With(authMiddleware.RequireAuth).Patch("/api/subforums/{title}", editHandler.HandleEditSubforum)
	r.With(authMiddleware.RequireAuth).Delete("/api/subforums/{title}", deleteHandler.HandleDeleteSubforum)
}
