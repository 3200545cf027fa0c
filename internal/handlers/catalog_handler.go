package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gametracker/backend/internal/catalog"
	"gametracker/backend/internal/models"
	"gametracker/backend/internal/utils"
)

// CatalogHandler proxies the external game catalog.
type CatalogHandler struct {
	Catalog *catalog.Client
	Logger  *zap.Logger
}

func NewCatalogHandler(client *catalog.Client, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: client, Logger: logger}
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.Catalog.Search(r.Context(), r.URL.Query().Get("q"), pageParam(r))
	h.respond(w, result, err)
}

func (h *CatalogHandler) Popular(w http.ResponseWriter, r *http.Request) {
	result, err := h.Catalog.Popular(r.Context(), pageParam(r))
	h.respond(w, result, err)
}

func (h *CatalogHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	result, err := h.Catalog.ByGenre(r.Context(), chi.URLParam(r, "slug"), pageParam(r))
	h.respond(w, result, err)
}

func (h *CatalogHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "invalid_game", Message: "Game id must be an integer",
		})
		return
	}
	game, err := h.Catalog.Details(r.Context(), id)
	h.respond(w, game, err)
}

func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.Catalog.Genres(r.Context())
	h.respond(w, genres, err)
}

func (h *CatalogHandler) respond(w http.ResponseWriter, payload any, err error) {
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
				Code: "catalog_unavailable", Message: "Game catalog is unavailable",
			})
			return
		}
		h.Logger.Error("catalog request failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Catalog request failed",
		})
		return
	}
	utils.JSON(w, http.StatusOK, payload)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
