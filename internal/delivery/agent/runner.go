package agent

import (
	"context"
	"log/slog"

	"nearby/internal/delivery"
	"nearby/internal/infra/transport"

	"go.uber.org/fx"
)

// RunnerParams holds dependencies for the agent runner, injected by Fx.
type RunnerParams struct {
	fx.In

	Console    *Console
	Session    *transport.Session
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
}

type runner struct {
	console    *Console
	session    *transport.Session
	shutdowner fx.Shutdowner
	logger     *slog.Logger
}

// NewRunner connects the agent's session and runs its console. The
// application shuts down when the console ends.
func NewRunner(params RunnerParams) delivery.Delivery {
	return &runner{
		console:    params.Console,
		session:    params.Session,
		shutdowner: params.Shutdowner,
		logger:     params.Logger,
	}
}

func (r *runner) Serve(ctx context.Context) error {
	// A failed first attempt is retried by the session itself.
	if err := r.session.Connect(ctx); err != nil {
		r.logger.Warn("Hub not reachable yet, retrying in background", slog.Any("error", err))
	}

	err := r.console.Run(ctx)

	if shutdownErr := r.shutdowner.Shutdown(); shutdownErr != nil {
		r.logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
	}

	return err
}
