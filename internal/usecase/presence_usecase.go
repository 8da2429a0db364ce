package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// PresenceUsecase is the vendor's presence state machine:
// Offline -> Online(accepting | not accepting) -> Offline.
type PresenceUsecase interface {
	// GoOnline acquires a fix (unless seed is given), announces the vendor and
	// starts streaming location. A LocationError leaves the vendor offline.
	GoOnline(ctx context.Context, seed *entity.Coordinates) error

	// GoOffline stops streaming and announces the vendor offline. Idempotent.
	GoOffline(ctx context.Context) error

	// UpdateDeliverySettings validates, persists and re-broadcasts settings.
	UpdateDeliverySettings(ctx context.Context, settings entity.DeliverySettings) error

	// Presence returns a snapshot of the vendor's current presence.
	Presence() entity.VendorPresence

	// LastLocationError returns the error that ended the location stream, if any.
	LastLocationError() error
}
