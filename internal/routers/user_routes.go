package routers

import (
	"github.com/go-chi/chi/v5"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/handlers"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
)

func UserRoutes(router *chi.Mux, userHandler *handlers.UserHandler, jwtSecret string) {
	router.Route("/api/v1/users", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSecret))
		r.Get("/me", userHandler.GetMe)
		r.With(middleware.ValidateRequest[*models.UpdateProfileRequest]()).Put("/me", userHandler.UpdateMe)
		r.Get("/", userHandler.ListPublicUsers)      // Community directory
		r.Get("/{id}", userHandler.GetPublicProfile) // Profile with lists
	})
}
