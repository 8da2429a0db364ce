package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// PreferenceUsecase is the consumer-side store of notification preferences.
type PreferenceUsecase interface {
	// Load refreshes preferences from the profile service. On failure the
	// last known (or default) preferences stay in effect and a
	// PreferenceSyncError is returned alongside them.
	Load(ctx context.Context) (entity.NotificationPreferences, error)

	// Save validates and applies prefs locally, then persists them. A
	// persistence failure is reported but the local update is kept.
	Save(ctx context.Context, prefs entity.NotificationPreferences) error

	// Current returns a copy of the preferences in effect.
	Current() entity.NotificationPreferences

	// Subscribe registers a callback fired after every local change.
	Subscribe(fn func(entity.NotificationPreferences))
}

// HubPreferenceUsecase serves preferences to the agents on behalf of users.
type HubPreferenceUsecase interface {
	// GetPreferences returns the stored preferences, or defaults when none exist.
	GetPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error)

	// UpdatePreferences validates and stores the full preferences object.
	UpdatePreferences(ctx context.Context, userID string, prefs *entity.NotificationPreferences) error
}
