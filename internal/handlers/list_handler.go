package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/gamestate"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
	"gametracker/backend/internal/utils"
)

// ListHandler serves the per-user game lists. Every mutation goes through
// the gamestate service, so rejected transitions are never persisted.
type ListHandler struct {
	Lists  *gamestate.Service
	Logger *zap.Logger
}

func NewListHandler(lists *gamestate.Service, logger *zap.Logger) *ListHandler {
	return &ListHandler{Lists: lists, Logger: logger}
}

func (h *ListHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.Lists.State(r.Context(), auth.UserID(r))
	if err != nil {
		h.internalError(w, "failed to load game state", err)
		return
	}
	utils.JSON(w, http.StatusOK, state)
}

func (h *ListHandler) AddGame(w http.ResponseWriter, r *http.Request) {
	list, ok := curatedListParam(w, r)
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.AddGameRequest](r)

	state, err := h.Lists.AddGame(r.Context(), auth.UserID(r), req.Game, list)
	if err != nil {
		h.internalError(w, "failed to add game", err)
		return
	}
	utils.JSON(w, http.StatusOK, state)
}

func (h *ListHandler) RemoveGame(w http.ResponseWriter, r *http.Request) {
	list := models.ListName(chi.URLParam(r, "list"))
	if !list.Valid() {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "invalid_list", Message: "Unknown list name",
		})
		return
	}
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameId"))
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "invalid_game", Message: "Game id must be an integer",
		})
		return
	}

	state, err := h.Lists.RemoveGame(r.Context(), auth.UserID(r), gameID, list)
	if err != nil {
		h.internalError(w, "failed to remove game", err)
		return
	}
	utils.JSON(w, http.StatusOK, state)
}

func (h *ListHandler) MoveGame(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.MoveGameRequest](r)

	state, err := h.Lists.MoveGame(r.Context(), auth.UserID(r), req.Game, req.From, req.To)
	if err != nil {
		h.internalError(w, "failed to move game", err)
		return
	}
	utils.JSON(w, http.StatusOK, state)
}

func (h *ListHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	list, ok := curatedListParam(w, r)
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.UpdateGameRequest](r)

	state, err := h.Lists.UpdateGame(r.Context(), auth.UserID(r), req.Game, list)
	if err != nil {
		h.internalError(w, "failed to update game", err)
		return
	}
	utils.JSON(w, http.StatusOK, state)
}

// SetRecommendations replaces the recommendations list wholesale. It is the
// only way that list changes besides removal.
func (h *ListHandler) SetRecommendations(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SetRecommendationsRequest](r)

	state, err := h.Lists.SetRecommendations(r.Context(), auth.UserID(r), req.Games)
	if err != nil {
		h.internalError(w, "failed to set recommendations", err)
		return
	}
	utils.JSON(w, http.StatusOK, state)
}

func (h *ListHandler) internalError(w http.ResponseWriter, msg string, err error) {
	h.Logger.Error(msg, zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code: "internal_error", Message: "Storage operation failed",
	})
}

func curatedListParam(w http.ResponseWriter, r *http.Request) (models.ListName, bool) {
	list := models.ListName(chi.URLParam(r, "list"))
	if !list.Curated() {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "invalid_list", Message: "List must be one of: playing, completed, dropped, wishlist",
		})
		return "", false
	}
	return list, true
}
