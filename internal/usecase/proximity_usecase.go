package usecase

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
)

// ProximityUsecase is the consumer-side notification engine.
type ProximityUsecase interface {
	// HandleEvent runs an inbound proximity event through the filter and
	// lifecycle pipeline.
	HandleEvent(event entity.ProximityEvent)

	// Acknowledge dismisses an active notification and tells the hub.
	Acknowledge(notificationID string) bool

	// Active returns a snapshot of the active notifications, newest first.
	Active() []entity.NotificationRecord

	// Permission returns the host alert permission.
	Permission() service.Permission

	// RequestAlertPermission prompts the host for alert permission.
	RequestAlertPermission(ctx context.Context) (service.Permission, error)

	// Subscribe registers a callback fired whenever the active list changes.
	Subscribe(fn func([]entity.NotificationRecord))

	// Close cancels all expiry timers.
	Close()
}

// ConsumerLocationUsecase reports the consumer's own position to the hub so
// it can match nearby vendors.
type ConsumerLocationUsecase interface {
	Start(ctx context.Context) error
	Stop()
}
