package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gametracker/backend/internal/auth"
	"gametracker/backend/internal/middleware"
	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
	"gametracker/backend/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthHandler manages registration and login.
type AuthHandler struct {
	Store     store.Store
	JWTSecret string
	Logger    *zap.Logger
}

func NewAuthHandler(st store.Store, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Store: st, JWTSecret: jwtSecret, Logger: logger}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RegisterRequest](r)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("failed to hash password", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to create user",
		})
		return
	}

	user, err := h.Store.CreateUser(r.Context(), req.Username, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			utils.JSON(w, http.StatusConflict, models.ErrorResponse{
				Code: "username_taken", Message: "Username is already taken",
			})
			return
		}
		h.Logger.Error("failed to create user", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to create user",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	record, err := h.Store.FindUserByUsername(r.Context(), req.Username)
	if err != nil || !auth.CheckPassword(req.Password, record.PasswordHash) {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code: "invalid_credentials", Message: "Invalid username or password",
		})
		return
	}

	token, err := auth.GenerateToken(record.ID, record.Username, h.JWTSecret, tokenTTL)
	if err != nil {
		h.Logger.Error("failed to sign token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to sign token",
		})
		return
	}

	utils.JSON(w, http.StatusOK, authResponse{Token: token, User: &record.User})
}
