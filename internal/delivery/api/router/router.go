// Package router contains routing and server setup for the hub HTTP API.
package router

import (
	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/router/handler"
	workerhandler "nearby/internal/delivery/worker/handler"
	"nearby/internal/delivery/ws"
	"nearby/internal/domain/entity"
	"nearby/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PresencePushPath receives the presence feed when it is delivered by push.
const PresencePushPath = "/pubsub/presence"

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	PreferenceHandler *handler.PreferenceHandler
	VendorHandler     *handler.VendorHandler
	PresenceHandler   *workerhandler.PresenceHandler
	WSHandler         *ws.Handler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Prometheus
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	preferenceHandler *handler.PreferenceHandler
	vendorHandler     *handler.VendorHandler
	presenceHandler   *workerhandler.PresenceHandler
	wsHandler         *ws.Handler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Prometheus
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		preferenceHandler: params.PreferenceHandler,
		vendorHandler:     params.VendorHandler,
		presenceHandler:   params.PresenceHandler,
		wsHandler:         params.WSHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the routes of the hub.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// The websocket handshake authenticates itself so it can accept the
	// token as a query parameter.
	e.GET("/ws", r.wsHandler.ServeWS)

	e.POST(PresencePushPath, r.presenceHandler.HandlePush)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	notificationsGroup := apiV1.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.RequireRole(entity.RoleConsumer))
	{
		notificationsGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		notificationsGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)
	}

	locationGroup := apiV1.Group("/location")
	locationGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		locationGroup.PATCH("/vendor-status", r.vendorHandler.UpdateVendorStatus)
	}

	vendorsGroup := apiV1.Group("/vendors")
	vendorsGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorsGroup.POST("/nearby-broadcast", r.vendorHandler.NearbyBroadcast)
	}
}
