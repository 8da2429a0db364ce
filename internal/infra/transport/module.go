package transport

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/service"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// NewSessionFromConfig creates the agent's session from cfg.Transport.
func NewSessionFromConfig(cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *Session {
	return NewSession(OptionsFromConfig(cfg.Transport), logger, clock)
}

func registerDisconnect(lc fx.Lifecycle, session *Session) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			session.Disconnect()

			return nil
		},
	})
}

// Module provides the transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewSessionFromConfig,
		func(s *Session) service.EventChannel { return s },
	),
	fx.Invoke(registerDisconnect),
)
