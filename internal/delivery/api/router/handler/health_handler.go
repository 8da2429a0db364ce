package handler

import (
	"net/http"

	"nearby/internal/delivery/api/response"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness with a snapshot of live participants.
type HealthHandler struct {
	matching usecase.MatchingUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(matching usecase.MatchingUsecase) *HealthHandler {
	return &HealthHandler{matching: matching}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
		"stats":  h.matching.Stats(),
	})
}
