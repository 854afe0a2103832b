package routes

import (
	"Banter/internal/api/handlers/post"
	"Banter/internal/api/middleware"
	"Banter/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	// Initialize handlers
	createHandler := post.NewCreatePostHandler(service)
	getHandler := post.NewGetPostHandler(service)
	editHandler := post.NewEditPostHandler(service)
	deleteHandler := post.NewDeletePostHandler(service)
	lockHandler := post.NewLockPostHandler(service)

	// Read endpoints - public access
	r.Get("/api/posts", getHandler.HandleListPosts)
	r.Get("/api/posts/{postID}", getHandler.HandleGetPost)

	// Write endpoints - require a login session
	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreatePost)
	r.With(authMiddleware.RequireAuth).Patch("/api/posts/{postID}", editHandler.HandleEditPost)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{postID}", deleteHandler.HandleDeletePost)
	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/lock", lockHandler.HandleLockPost)
	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/unlock", lockHandler.HandleUnlockPost)
}
