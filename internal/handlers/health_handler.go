package handlers

import (
	"net/http"

	"gametracker/backend/internal/config"
	"gametracker/backend/internal/llm"
	"gametracker/backend/internal/prompts"
	"gametracker/backend/internal/store"
	"gametracker/backend/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status string                    `json:"status"` // "ready" | "not_ready"
	Checks map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	store         store.Store
	provider      llm.Provider
	promptManager *prompts.Manager
	config        *config.Config
}

func NewHealthHandler(st store.Store, provider llm.Provider, promptManager *prompts.Manager, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		store:         st,
		provider:      provider,
		promptManager: promptManager,
		config:        cfg,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "gametracker",
		"version": "1.0.0",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	if handler.store == nil {
		checks["storage"] = ReadinessCheck{Status: "failed", Message: "Storage backend not initialized"}
		allChecksPass = false
	} else {
		checks["storage"] = ReadinessCheck{Status: "ok"}
	}

	// the AI provider is optional: suggestion routes are simply disabled
	// without it, so readiness only reports it
	if handler.provider == nil {
		checks["provider"] = ReadinessCheck{Status: "ok", Message: "AI provider disabled"}
	} else {
		checks["provider"] = ReadinessCheck{Status: "ok"}
	}

	if handler.promptManager == nil || len(handler.promptManager.Flows()) == 0 {
		checks["prompt_manager"] = ReadinessCheck{Status: "failed", Message: "No prompt templates loaded"}
		allChecksPass = false
	} else {
		checks["prompt_manager"] = ReadinessCheck{Status: "ok"}
	}

	if handler.config == nil {
		checks["configuration"] = ReadinessCheck{Status: "failed", Message: "Configuration not loaded"}
		allChecksPass = false
	} else {
		checks["configuration"] = ReadinessCheck{Status: "ok"}
	}

	response := ReadinessResponse{Checks: checks}
	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}
