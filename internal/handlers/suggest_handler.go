package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/catalog"
	"gametracker/backend/internal/gamestate"
	"gametracker/backend/internal/llm"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
	"gametracker/backend/internal/suggest"
	"gametracker/backend/internal/utils"
)

// SuggestHandler serves the AI suggestion flows.
type SuggestHandler struct {
	Suggest *suggest.Service
	Lists   *gamestate.Service
	Logger  *zap.Logger
}

func NewSuggestHandler(svc *suggest.Service, lists *gamestate.Service, logger *zap.Logger) *SuggestHandler {
	return &SuggestHandler{Suggest: svc, Lists: lists, Logger: logger}
}

func (h *SuggestHandler) Dynamic(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.DynamicSuggestionRequest](r)

	result, err := h.Suggest.Dynamic(r.Context(), auth.UserID(r), req.TimeOfDay, req.Context)
	if err != nil {
		h.respondError(w, "dynamic suggestion failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *SuggestHandler) Panic(w http.ResponseWriter, r *http.Request) {
	result, err := h.Suggest.Panic(r.Context(), auth.UserID(r))
	if err != nil {
		h.respondError(w, "panic suggestion failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *SuggestHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)

	games, err := h.Suggest.Recommendations(r.Context(), userID)
	if err != nil {
		h.respondError(w, "recommendations failed", err)
		return
	}
	if _, err := h.Lists.SetRecommendations(r.Context(), userID, games); err != nil {
		h.respondError(w, "recommendations failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string][]models.Game{"games": games})
}

func (h *SuggestHandler) DNA(w http.ResponseWriter, r *http.Request) {
	dna, err := h.Suggest.DNA(r.Context(), auth.UserID(r))
	if err != nil {
		h.respondError(w, "gamer dna failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, dna)
}

func (h *SuggestHandler) Duel(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.DuelRequest](r)

	duel, err := h.Suggest.Duel(r.Context(), auth.UserID(r), req.OpponentID)
	if err != nil {
		h.respondError(w, "gamer duel failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, duel)
}

func (h *SuggestHandler) Playtime(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.PlaytimeRequest](r)

	prediction, err := h.Suggest.Playtime(r.Context(), auth.UserID(r), req.GameName)
	if err != nil {
		h.respondError(w, "playtime prediction failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, models.PlaytimePrediction{Prediction: prediction})
}

func (h *SuggestHandler) Difficulty(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.DifficultyRequest](r)

	analysis, err := h.Suggest.Difficulty(r.Context(), auth.UserID(r), req.GameName)
	if err != nil {
		h.respondError(w, "difficulty analysis failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, models.DifficultyAnalysis{Analysis: analysis})
}

func (h *SuggestHandler) Dropped(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.Suggest.Dropped(r.Context(), auth.UserID(r))
	if err != nil {
		h.respondError(w, "dropped analysis failed", err)
		return
	}
	utils.JSON(w, http.StatusOK, analysis)
}

func (h *SuggestHandler) respondError(w http.ResponseWriter, msg string, err error) {
	var provErr *llm.ProviderError

	switch {
	case errors.Is(err, suggest.ErrNoGames):
		utils.JSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Code: "no_games", Message: "Add some games to your lists first",
		})
	case errors.Is(err, suggest.ErrGameNotResolved):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "game_not_resolved", Message: "Suggested game was not found in the catalog",
		})
	case errors.Is(err, suggest.ErrNoPlaytimeData):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "no_playtime_data", Message: "No playtime data available for that game",
		})
	case errors.Is(err, store.ErrUserNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "user_not_found", Message: "User not found",
		})
	case errors.Is(err, catalog.ErrUnavailable):
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code: "catalog_unavailable", Message: "Game catalog is unavailable",
		})
	case errors.As(err, &provErr):
		h.Logger.Error(msg, zap.String("provider", provErr.Provider), zap.Error(err))
		if provErr.Code == llm.ErrCodeRateLimit {
			utils.JSON(w, http.StatusTooManyRequests, models.ErrorResponse{
				Code: "rate_limited", Message: "Suggestion service is rate limited, try again later",
			})
			return
		}
		utils.JSON(w, http.StatusServiceUnavailable, models.ErrorResponse{
			Code: "suggestion_unavailable", Message: "Suggestion service is unavailable",
		})
	default:
		h.Logger.Error(msg, zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Suggestion failed",
		})
	}
}
