package repository

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPreferencesNotFound is returned when a user never saved preferences.
var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferenceRepository stores consumer notification preferences.
type PreferenceRepository interface {
	FindPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error)

	// SavePreferences replaces the stored preferences of the user.
	SavePreferences(ctx context.Context, userID string, prefs *entity.NotificationPreferences) error
}
