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

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	SettingsUC usecase.VendorSettingsUsecase
	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// VendorHandler serves vendor delivery settings and the nearby broadcast.
type VendorHandler struct {
	settingsUC usecase.VendorSettingsUsecase
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		settingsUC: params.SettingsUC,
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// VendorStatusResponse is the vendor's delivery state after an update.
type VendorStatusResponse struct {
	VendorID        string  `json:"vendorId"`
	DeliveryRadius  float64 `json:"deliveryRadius"`
	AcceptingOrders bool    `json:"acceptingOrders"`
	IsOnline        bool    `json:"isOnline"`
}

// BroadcastRequest is the body of the nearby broadcast trigger.
type BroadcastRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Message   string  `json:"message" validate:"max=280"`
}

// BroadcastResponse reports how many consumers were notified.
type BroadcastResponse struct {
	Notified int `json:"notified"`
}

// UpdateVendorStatus stores a partial delivery-settings update.
func (h *VendorHandler) UpdateVendorStatus(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from token")
	}

	var settings entity.DeliverySettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery settings input")
	}

	vendor, err := h.settingsUC.UpdateDeliverySettings(c.Request().Context(), identity.UserID, settings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VendorStatusResponse{
		VendorID:        vendor.ID,
		DeliveryRadius:  vendor.DeliveryRadiusMeters,
		AcceptingOrders: vendor.AcceptingOrders,
		IsOnline:        vendor.IsOnline,
	})
}

// NearbyBroadcast sends a proximity notification to eligible consumers around
// the given point.
func (h *VendorHandler) NearbyBroadcast(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identity missing from token")
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	notified, err := h.matchingUC.Broadcast(c.Request().Context(), *identity,
		entity.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Nearby broadcast sent",
		slog.String("vendor_id", identity.UserID),
		slog.Int("notified", notified))

	return response.Success(c, http.StatusOK, BroadcastResponse{Notified: notified})
}
