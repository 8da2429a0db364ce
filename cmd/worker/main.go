package main

import (
	"context"
	"log/slog"
	"os"

	"nearby/config"
	"nearby/internal/delivery"
	"nearby/internal/delivery/worker"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/persistence/sqlstore"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The worker records vendor presence pushed by the Pub/Sub subscription of
// the presence feed when it is deployed apart from the hub.
func main() {
	fx.New(
		injectInfra(),
		sqlstore.Module,
		worker.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
