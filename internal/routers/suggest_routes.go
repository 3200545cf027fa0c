package routers

import (
	"github.com/go-chi/chi/v5"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/handlers"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
)

// SuggestRoutes mounts the AI flows. Call only when an AI provider is
// configured; without one these routes do not exist.
func SuggestRoutes(router *chi.Mux, suggestHandler *handlers.SuggestHandler, jwtSecret string) {
	router.Route("/api/v1/suggest", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSecret))
		r.With(middleware.ValidateRequest[*models.DynamicSuggestionRequest]()).Post("/dynamic", suggestHandler.Dynamic)
		r.Post("/panic", suggestHandler.Panic)
		r.Post("/recommendations", suggestHandler.Recommendations)
		r.Get("/dna", suggestHandler.DNA)
		r.With(middleware.ValidateRequest[*models.DuelRequest]()).Post("/duel", suggestHandler.Duel)
		r.With(middleware.ValidateRequest[*models.PlaytimeRequest]()).Post("/playtime", suggestHandler.Playtime)
		r.With(middleware.ValidateRequest[*models.DifficultyRequest]()).Post("/difficulty", suggestHandler.Difficulty)
		r.Get("/dropped", suggestHandler.Dropped)
	})
}
