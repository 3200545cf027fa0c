package routers

import (
	"github.com/go-chi/chi/v5"

	"gametracker/backend/internal/handlers"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
)

func AuthRoutes(router *chi.Mux, authHandler *handlers.AuthHandler) {
	router.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.RegisterRequest]()).Post("/register", authHandler.Register) // User registration
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.Login)          // User login
	})
}
