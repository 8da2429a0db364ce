package sqlstore

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements repository.PreferenceRepository using GORM.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a preference repository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (repo *preferenceRepository) FindPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	var prefM model.NotificationPreferenceModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrPreferencesNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find preferences")
	}

	prefs := prefM.Preferences
	if prefs.VendorCategories == nil {
		prefs.VendorCategories = []string{}
	}

	return &prefs, nil
}

func (repo *preferenceRepository) SavePreferences(ctx context.Context, userID string, prefs *entity.NotificationPreferences) error {
	prefM := &model.NotificationPreferenceModel{
		UserID:      userID,
		Preferences: *prefs,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferences", "updated_at"}),
		}).
		Create(prefM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save preferences")
	}

	return nil
}
