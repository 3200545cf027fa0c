package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
	"gametracker/backend/internal/utils"
)

// UserHandler serves profile reads and updates.
type UserHandler struct {
	Store  store.Store
	Logger *zap.Logger
}

func NewUserHandler(st store.Store, logger *zap.Logger) *UserHandler {
	return &UserHandler{Store: st, Logger: logger}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.FindUserByID(r.Context(), auth.UserID(r))
	if err != nil {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "user_not_found", Message: "User not found",
		})
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.UpdateProfileRequest](r)
	userID := auth.UserID(r)

	changes := models.UserUpdate{
		Username:         req.Username,
		ProfilePicture:   req.ProfilePicture,
		Description:      req.Description,
		IsPublic:         req.IsPublic,
		Schedule:         req.Schedule,
		FavoritePlatform: req.FavoritePlatform,
	}
	if req.NewPassword != nil {
		hash, err := auth.HashPassword(*req.NewPassword)
		if err != nil {
			h.Logger.Error("failed to hash password", zap.Error(err))
			utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Code: "internal_error", Message: "Failed to update user",
			})
			return
		}
		changes.PasswordHash = &hash
	}

	user, err := h.Store.UpdateUser(r.Context(), userID, changes)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateUsername):
			utils.JSON(w, http.StatusConflict, models.ErrorResponse{
				Code: "username_taken", Message: "Username is already taken",
			})
		case errors.Is(err, store.ErrUserNotFound):
			utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
				Code: "user_not_found", Message: "User not found",
			})
		default:
			h.Logger.Error("failed to update user", zap.String("user_id", userID), zap.Error(err))
			utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Code: "internal_error", Message: "Failed to update user",
			})
		}
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

// ListPublicUsers returns the community directory: public profiles only.
func (h *UserHandler) ListPublicUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListPublicUsers(r.Context())
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to list users",
		})
		return
	}
	utils.JSON(w, http.StatusOK, users)
}

// GetPublicProfile returns a user's profile together with their lists.
// Private profiles are indistinguishable from missing ones, except to their
// owner.
func (h *UserHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.Store.FindUserByID(r.Context(), id)
	if err != nil || (!user.IsPublic && id != auth.UserID(r)) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "user_not_found", Message: "User not found",
		})
		return
	}

	state, err := h.Store.LoadGameState(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to load game state", zap.String("user_id", id), zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to load profile",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.PublicProfile{User: *user, Lists: *state})
}
