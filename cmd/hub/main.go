package main

import (
	"context"
	"log/slog"
	"os"

	"nearby/config"
	"nearby/internal/delivery"
	"nearby/internal/delivery/api"
	"nearby/internal/delivery/ws"
	"nearby/internal/infra/auth"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/metrics"
	"nearby/internal/infra/persistence/sqlstore"
	"nearby/internal/infra/pubsub"
	"nearby/internal/infra/validate"
	"nearby/internal/usecase"
	"nearby/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var seedFile string

	root := &cobra.Command{
		Use:          "hub",
		Short:        "Nearby coordination hub: realtime channel, matching and profile API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []fx.Option{hubOptions(), fx.Invoke(startServer)}
			if seedFile != "" {
				opts = append(opts, fx.Invoke(func(ctx context.Context, catalog usecase.CatalogUsecase, logger *slog.Logger) error {
					return seedCatalog(ctx, catalog, logger, seedFile)
				}))
			}
			fx.New(opts...).Run()

			return nil
		},
	}
	root.Flags().StringVar(&seedFile, "seed", "", "catalog yaml loaded into the store before serving")

	root.AddCommand(newTokenCmd(), newSeedCmd())

	return root
}

func hubOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		sqlstore.Module,
		injectService(),
		injectUsecase(),
		ws.Module,
		api.Module,
		fx.Invoke(closeMatchingOnStop),
	)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			validate.New,
			func() clockwork.Clock { return clockwork.NewRealClock() },
		),
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchingService,
			impl.NewHubPreferenceService,
			impl.NewVendorSettingsService,
			impl.NewCatalogService,
		),
	)
}

// closeMatchingOnStop stops the presence feed worker after the HTTP server
// has drained.
func closeMatchingOnStop(lc fx.Lifecycle, matching usecase.MatchingUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			matching.Close()

			return nil
		},
	})
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
