package routers

import (
	"github.com/go-chi/chi/v5"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/handlers"
)

func CatalogRoutes(router *chi.Mux, catalogHandler *handlers.CatalogHandler, jwtSecret string) {
	router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSecret))
		r.Get("/search", catalogHandler.Search) // ?q=...&page=...
		r.Get("/popular", catalogHandler.Popular)
		r.Get("/genres", catalogHandler.Genres)
		r.Get("/genres/{slug}", catalogHandler.ByGenre)
		r.Get("/games/{id}", catalogHandler.Details)
	})
}
