package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes binds the public and protected route groups under /api.
// Read-only listings and search stay open; every mutation sits behind the
// bearer-token gate.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Post("/users", handlers.userHandler.register())
			r.Get("/users", handlers.userHandler.getAllUsers())
			r.Get("/users/{userID}", handlers.userHandler.getUser())

			r.Post("/auth/login", handlers.authHandler.login())

			r.Get("/profile", handlers.profileHandler.getAllProfiles())
			r.Get("/profile/{userID}", handlers.profileHandler.getProfile())

			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/projects/user/{userID}", handlers.projectHandler.getProjectsByOwner())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
			r.Get("/projects/{projectID}/comments", handlers.commentHandler.getProjectComments())

			r.Get("/search", handlers.searchHandler.search())
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Get("/auth/me", handlers.authHandler.me())

			r.Get("/profile/me", handlers.profileHandler.getMyProfile())
			r.Post("/profile", handlers.profileHandler.updateProfile())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/projects/{projectID}/comments", handlers.commentHandler.addComment())
			r.Delete("/comments/{commentID}", handlers.commentHandler.deleteComment())
		})
	})
}
