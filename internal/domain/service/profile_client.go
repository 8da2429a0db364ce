package service

import (
	"context"

	"nearby/internal/domain/entity"
)

// PreferenceClient talks to the external profile service holding consumer preferences.
type PreferenceClient interface {
	// Fetch returns the stored preferences, or nil when none were saved yet.
	Fetch(ctx context.Context) (*entity.NotificationPreferences, error)

	// Put persists the full preferences object.
	Put(ctx context.Context, prefs entity.NotificationPreferences) error
}

// VendorProfileClient persists a vendor's delivery settings.
type VendorProfileClient interface {
	SaveDeliverySettings(ctx context.Context, settings entity.DeliverySettings) error
}
