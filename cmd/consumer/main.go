package main

import (
	"context"
	"log/slog"
	"os"

	"nearby/config"
	"nearby/internal/delivery"
	"nearby/internal/delivery/agent"
	"nearby/internal/domain/entity"
	"nearby/internal/errors"
	"nearby/internal/infra/alert"
	"nearby/internal/infra/auth"
	"nearby/internal/infra/location"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/profile"
	"nearby/internal/infra/transport"
	"nearby/internal/infra/validate"
	"nearby/internal/usecase"
	"nearby/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type lifecycleParams struct {
	fx.In
	fx.Lifecycle

	Preferences usecase.PreferenceUsecase
	Location    usecase.ConsumerLocationUsecase
	Proximity   usecase.ProximityUsecase
	Logger      *slog.Logger
}

func main() {
	cmd := &cobra.Command{
		Use:          "consumer",
		Short:        "Consumer agent: share location and receive nearby vendor notifications",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fx.New(
				fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: logger}
				}),
				injectInfra(),
				injectService(),
				injectUsecase(),
				agent.ConsumerModule,
				fx.Invoke(startServer),
			).Run()

			return nil
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		validate.New,
		func() clockwork.Clock { return clockwork.NewRealClock() },
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			location.NewSourceFromConfig,
			alert.New,
			profile.NewClient,
			profile.NewPreferenceClient,
		),
		transport.Module,
		fx.Invoke(requireConsumerToken),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPreferenceService,
			impl.NewProximityEngine,
			impl.NewConsumerLocationService,
		),
		fx.Invoke(registerLifecycle),
	)
}

// requireConsumerToken refuses to start with a vendor's credential.
func requireConsumerToken(cfg *config.Config) error {
	identity, err := auth.NewAgentIdentity(cfg)
	if err != nil {
		return err
	}
	if identity.Role != entity.RoleConsumer {
		return errors.Errorf("token is for a %s, not a consumer", identity.Role)
	}

	return nil
}

// registerLifecycle loads preferences and starts location reporting before
// the console opens, and stops both before the session closes.
func registerLifecycle(params lifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Defaults stay in effect when the profile service is down.
			if _, err := params.Preferences.Load(ctx); err != nil {
				params.Logger.Warn("Using default preferences", slog.Any("error", err))
			}
			if err := params.Location.Start(ctx); err != nil {
				params.Logger.Warn("Location unavailable, matching will wait for a fix", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			params.Location.Stop()
			params.Proximity.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Agent stopped", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
