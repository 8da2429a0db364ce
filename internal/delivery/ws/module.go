package ws

import (
	"context"

	"nearby/internal/domain/service"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

// Module provides the connection registry as the hub's Notifier and the
// websocket endpoint.
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(r *Registry) service.Notifier { return r },
		NewHandler,
	),
	fx.Invoke(registerShutdown),
)

func registerShutdown(lc fx.Lifecycle, registry *Registry) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			registry.CloseAll(websocket.CloseGoingAway, "hub shutting down")

			return nil
		},
	})
}
