package alert

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/infra/notification"
)

// New builds the host alerter named by cfg.Notification.Alerter.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.HostAlerter, error) {
	switch cfg.Notification.Alerter {
	case constants.AlerterLog:
		return NewLogAlerter(cfg.Notification, logger), nil
	case constants.AlerterFirebase:
		push, err := notification.NewFirebaseService(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}

		return NewPushAlerter(cfg.Notification, push, logger), nil
	default:
		return nil, errors.Errorf("unknown alerter %q", cfg.Notification.Alerter)
	}
}
