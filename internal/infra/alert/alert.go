// Package alert implements host alerting for the consumer agent.
package alert

import (
	"context"
	"log/slog"
	"sync"

	"nearby/config"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
)

// ParsePermission maps a configured permission onto the tri-state. Unknown
// values fall back to default.
func ParsePermission(s string) service.Permission {
	switch p := service.Permission(s); p {
	case service.PermissionGranted, service.PermissionDenied:
		return p
	default:
		return service.PermissionDefault
	}
}

// permissionState holds the host permission. A denied permission is final:
// only the user can lift it outside the app.
type permissionState struct {
	mu         sync.Mutex
	permission service.Permission
}

func (p *permissionState) Permission() service.Permission {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.permission
}

func (p *permissionState) request(grant bool) service.Permission {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.permission == service.PermissionDefault {
		if grant {
			p.permission = service.PermissionGranted
		} else {
			p.permission = service.PermissionDenied
		}
	}

	return p.permission
}

// logAlerter raises alerts as log records, standing in for a terminal bell
// and a desktop notification.
type logAlerter struct {
	permissionState
	logger *slog.Logger
}

// NewLogAlerter creates an alerter that logs alerts.
func NewLogAlerter(cfg *config.NotificationConfig, logger *slog.Logger) service.HostAlerter {
	return &logAlerter{
		permissionState: permissionState{permission: ParsePermission(cfg.Permission)},
		logger:          logger.With(slog.String("component", "alert")),
	}
}

func (a *logAlerter) RequestPermission(ctx context.Context) (service.Permission, error) {
	return a.request(true), nil
}

func (a *logAlerter) Alert(ctx context.Context, alert service.Alert) error {
	if a.Permission() != service.PermissionGranted {
		return errors.New("alert permission not granted")
	}

	attrs := []any{
		slog.String("title", alert.Title),
		slog.String("body", alert.Body),
		slog.String("tag", alert.Tag),
		slog.Bool("sound", alert.Sound),
		slog.Bool("vibration", alert.Vibration),
	}
	if alert.Visual {
		a.logger.Info("ALERT", attrs...)
	} else {
		a.logger.Debug("ALERT", attrs...)
	}

	return nil
}

// pushAlerter raises alerts as system notifications on the user's device.
type pushAlerter struct {
	permissionState
	push   service.PushService
	token  string
	logger *slog.Logger
}

// NewPushAlerter creates an alerter delivering through push. Permission can
// only be granted when a device token is configured.
func NewPushAlerter(cfg *config.NotificationConfig, push service.PushService, logger *slog.Logger) service.HostAlerter {
	permission := ParsePermission(cfg.Permission)
	if cfg.DeviceToken == "" {
		permission = service.PermissionDenied
	}

	return &pushAlerter{
		permissionState: permissionState{permission: permission},
		push:            push,
		token:           cfg.DeviceToken,
		logger:          logger.With(slog.String("component", "alert")),
	}
}

func (a *pushAlerter) RequestPermission(ctx context.Context) (service.Permission, error) {
	return a.request(a.token != ""), nil
}

func (a *pushAlerter) Alert(ctx context.Context, alert service.Alert) error {
	if a.Permission() != service.PermissionGranted {
		return errors.New("alert permission not granted")
	}
	// Silent pushes carry only the data payload for the device to act on.
	title, body := alert.Title, alert.Body
	if !alert.Visual {
		title, body = "", ""
	}

	data := make(map[string]string, len(alert.Data)+2)
	for k, v := range alert.Data {
		data[k] = v
	}
	if alert.Sound {
		data["sound"] = "default"
	}
	if alert.Vibration {
		data["vibrate"] = "true"
	}

	if err := a.push.SendSingleNotification(ctx, a.token, title, body, data); err != nil {
		return errors.Wrap(err, "push alert")
	}
	a.logger.Debug("Alert pushed", slog.String("tag", alert.Tag))

	return nil
}
