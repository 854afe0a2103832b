package routes

import (
	"Banter/internal/api/handlers/vote"
	"Banter/internal/api/middleware"
	"Banter/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RegisterVoteRoutes registers vote endpoints on the router.
// Every vote operation acts on the caller's own vote, so all three require a
// login session.
func RegisterVoteRoutes(r chi.Router, service votes.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	createHandler := vote.NewCreateVoteHandler(service)
	removeHandler := vote.NewRemoveVoteHandler(service)
	getHandler := vote.NewGetVoteHandler(service)

	r.With(authMiddleware.RequireAuth).Get("/api/votes", getHandler.HandleGetVote)
	r.With(authMiddleware.RequireAuth).Put("/api/votes", createHandler.HandleCreateVote)
	r.With(authMiddleware.RequireAuth).Delete("/api/votes", removeHandler.HandleRemoveVote)
}
