package model

import (
	"time"

	"nearby/internal/domain/entity"
)

// NotificationPreferenceModel is the GORM-specific struct for the
// 'notification_preferences' table. The whole preference object is stored
// as a JSON document.
type NotificationPreferenceModel struct {
	UserID      string                         `gorm:"type:text;primaryKey"`
	Preferences entity.NotificationPreferences `gorm:"type:text;serializer:json;not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}
