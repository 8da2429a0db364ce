package model

import (
	"time"
)

// AcknowledgementModel is the GORM-specific struct for the 'acknowledgements' table.
type AcknowledgementModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	NotificationID string    `gorm:"type:text;not null;uniqueIndex:idx_ack_notification_consumer"`
	ConsumerID     string    `gorm:"type:text;not null;uniqueIndex:idx_ack_notification_consumer;index"`
	AcknowledgedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AcknowledgementModel) TableName() string {
	return "acknowledgements"
}

// All returns every model managed by the hub, in migration order.
func All() []any {
	return []any{
		&VendorModel{},
		&ProductModel{},
		&NotificationPreferenceModel{},
		&AcknowledgementModel{},
	}
}
