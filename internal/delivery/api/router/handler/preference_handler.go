package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/api/response"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.HubPreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler serves the consumer notification preferences.
type PreferenceHandler struct {
	preferenceUC usecase.HubPreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// PreferencesResponse wraps the preferences object.
type PreferencesResponse struct {
	Preferences *entity.NotificationPreferences `json:"preferences"`
}

// GetPreferences returns the caller's stored preferences, or the defaults.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from token")
	}

	prefs, err := h.preferenceUC.GetPreferences(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PreferencesResponse{Preferences: prefs})
}

// UpdatePreferences replaces the caller's preferences with the full object
// in the body.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from token")
	}

	var prefs entity.NotificationPreferences
	if err := c.Bind(&prefs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	if err := h.preferenceUC.UpdatePreferences(c.Request().Context(), identity.UserID, &prefs); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Preferences updated",
		slog.String("user_id", identity.UserID))

	return response.Success(c, http.StatusOK, PreferencesResponse{Preferences: &prefs})
}
