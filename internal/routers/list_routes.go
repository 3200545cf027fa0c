package routers

import (
	"github.com/go-chi/chi/v5"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/handlers"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
)

func ListRoutes(router *chi.Mux, listHandler *handlers.ListHandler, jwtSecret string) {
	router.Route("/api/v1/lists", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSecret))
		r.Get("/", listHandler.GetState)
		r.With(middleware.ValidateRequest[*models.AddGameRequest]()).Post("/{list}/games", listHandler.AddGame)
		r.Delete("/{list}/games/{gameId}", listHandler.RemoveGame)
		r.With(middleware.ValidateRequest[*models.MoveGameRequest]()).Post("/move", listHandler.MoveGame)
		r.With(middleware.ValidateRequest[*models.UpdateGameRequest]()).Put("/{list}/games", listHandler.UpdateGame)
		r.With(middleware.ValidateRequest[*models.SetRecommendationsRequest]()).Put("/recommendations", listHandler.SetRecommendations)
	})
}
