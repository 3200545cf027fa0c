package models

import (
	"regexp"
	"strings"
)

// usernameRe mirrors the registration form rules: 3-8 lowercase letters or
// digits, no spaces.
var usernameRe = regexp.MustCompile(`^[a-z0-9]{3,8}$`)

// hhmmRe matches a 24h "HH:MM" clock value.
var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	if !usernameRe.MatchString(r.Username) {
		return &ErrorResponse{
			Code:    "invalid_username",
			Message: "Username must be 3-8 lowercase letters or digits",
		}
	}
	if len(r.Password) < 6 {
		return &ErrorResponse{
			Code:    "invalid_password",
			Message: "Password must be at least 6 characters",
		}
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ErrorResponse{Code: "missing_username", Message: "Username is required"}
	}
	if r.Password == "" {
		return &ErrorResponse{Code: "missing_password", Message: "Password is required"}
	}
	return nil
}

// UpdateProfileRequest is a partial profile update; absent fields stay
// unchanged.
type UpdateProfileRequest struct {
	Username         *string          `json:"username,omitempty"`
	ProfilePicture   *string          `json:"profilePicture,omitempty"`
	Description      *string          `json:"description,omitempty"`
	IsPublic         *bool            `json:"isPublic,omitempty"`
	Schedule         *[]ScheduleBlock `json:"schedule,omitempty"`
	FavoritePlatform *Platform        `json:"favoritePlatform,omitempty"`
	NewPassword      *string          `json:"newPassword,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Username != nil && !usernameRe.MatchString(*r.Username) {
		return &ErrorResponse{
			Code:    "invalid_username",
			Message: "Username must be 3-8 lowercase letters or digits",
		}
	}
	if r.NewPassword != nil && len(*r.NewPassword) < 6 {
		return &ErrorResponse{
			Code:    "invalid_password",
			Message: "Password must be at least 6 characters",
		}
	}
	if r.FavoritePlatform != nil && !r.FavoritePlatform.Valid() {
		return &ErrorResponse{Code: "invalid_platform", Message: "Unknown platform"}
	}
	if r.Schedule != nil {
		for _, block := range *r.Schedule {
			// Overlapping blocks are allowed; only the shape is checked.
			if !ValidDay(block.Day) {
				return &ErrorResponse{Code: "invalid_schedule", Message: "Unknown weekday: " + block.Day}
			}
			if !hhmmRe.MatchString(block.Start) || !hhmmRe.MatchString(block.End) {
				return &ErrorResponse{Code: "invalid_schedule", Message: "Schedule times must be HH:MM"}
			}
		}
	}
	return nil
}

type AddGameRequest struct {
	Game Game `json:"game"`
}

func (r *AddGameRequest) Validate() error {
	if r.Game.ID == 0 || strings.TrimSpace(r.Game.Name) == "" {
		return &ErrorResponse{Code: "invalid_game", Message: "Game id and name are required"}
	}
	return nil
}

type MoveGameRequest struct {
	Game Game     `json:"game"`
	From ListName `json:"from"`
	To   ListName `json:"to"`
}

func (r *MoveGameRequest) Validate() error {
	if r.Game.ID == 0 {
		return &ErrorResponse{Code: "invalid_game", Message: "Game id is required"}
	}
	if !r.From.Curated() || !r.To.Curated() {
		return &ErrorResponse{Code: "invalid_list", Message: "Moves happen between the four curated lists"}
	}
	return nil
}

type UpdateGameRequest struct {
	Game Game `json:"game"`
}

func (r *UpdateGameRequest) Validate() error {
	if r.Game.ID == 0 {
		return &ErrorResponse{Code: "invalid_game", Message: "Game id is required"}
	}
	return nil
}

type SetRecommendationsRequest struct {
	Games []Game `json:"games"`
}

func (r *SetRecommendationsRequest) Validate() error {
	if r.Games == nil {
		return &ErrorResponse{Code: "missing_games", Message: "Games field is required"}
	}
	return nil
}

type DynamicSuggestionRequest struct {
	TimeOfDay string `json:"timeOfDay"`
	Context   string `json:"context,omitempty"`
}

func (r *DynamicSuggestionRequest) Validate() error {
	valid := map[string]bool{"morning": true, "afternoon": true, "evening": true, "night": true}
	if !valid[r.TimeOfDay] {
		return &ErrorResponse{
			Code:    "invalid_time_of_day",
			Message: "timeOfDay must be one of: morning, afternoon, evening, night",
		}
	}
	return nil
}

type PlaytimeRequest struct {
	GameName string `json:"gameName"`
}

func (r *PlaytimeRequest) Validate() error {
	if strings.TrimSpace(r.GameName) == "" {
		return &ErrorResponse{Code: "missing_game_name", Message: "gameName is required"}
	}
	return nil
}

type DifficultyRequest struct {
	GameName string `json:"gameName"`
}

func (r *DifficultyRequest) Validate() error {
	if strings.TrimSpace(r.GameName) == "" {
		return &ErrorResponse{Code: "missing_game_name", Message: "gameName is required"}
	}
	return nil
}

type DuelRequest struct {
	OpponentID string `json:"opponentId"`
}

func (r *DuelRequest) Validate() error {
	if r.OpponentID == "" {
		return &ErrorResponse{Code: "missing_opponent", Message: "opponentId is required"}
	}
	return nil
}
