package usecase

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
)

// VendorStatus is the live delivery state reported by a connected vendor.
type VendorStatus struct {
	AcceptingOrders bool
	DeliveryRadius  float64
}

// MatchingUsecase keeps the hub's live presence registry and decides which
// consumers hear about which vendors.
type MatchingUsecase interface {
	// VendorOnline marks the vendor live at coords and matches it against
	// every located consumer.
	VendorOnline(ctx context.Context, vendor entity.Identity, coords entity.Coordinates) error

	// VendorMoved updates a live vendor's position.
	VendorMoved(ctx context.Context, vendorID string, coords entity.Coordinates, at time.Time) error

	// VendorStatus applies accepting/radius changes of a vendor.
	VendorStatus(ctx context.Context, vendorID string, status VendorStatus) error

	// VendorOffline removes the vendor and tells notified consumers it left.
	VendorOffline(ctx context.Context, vendorID string)

	// ConsumerOnline registers a consumer and loads its stored preferences.
	ConsumerOnline(ctx context.Context, consumer entity.Identity) error

	// ConsumerMoved records the consumer position and matches it.
	ConsumerMoved(ctx context.Context, consumerID string, coords entity.Coordinates) error

	// ConsumerOffline forgets the consumer.
	ConsumerOffline(consumerID string)

	// ApplyPreferences swaps a live consumer's preferences and re-matches it.
	ApplyPreferences(consumerID string, prefs entity.NotificationPreferences)

	// Acknowledge logs that the consumer dismissed a notification.
	Acknowledge(ctx context.Context, consumerID, notificationID string) error

	// Broadcast sends a proximity-notification carrying message to every
	// eligible consumer around coords and returns how many were reached.
	Broadcast(ctx context.Context, vendor entity.Identity, coords entity.Coordinates, message string) (int, error)

	// Stats counts live participants.
	Stats() entity.HubStats

	// Close stops the presence feed worker.
	Close()
}
