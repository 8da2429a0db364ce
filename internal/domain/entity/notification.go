package entity

import (
	"time"
)

// Priority ranks a notification record for presentation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	highPriorityMaxMeters   = 300
	mediumPriorityMaxMeters = 800
)

// PriorityForDistance derives a priority from how far away the vendor is.
func PriorityForDistance(meters float64) Priority {
	switch {
	case meters <= highPriorityMaxMeters:
		return PriorityHigh
	case meters <= mediumPriorityMaxMeters:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RecordState is the lifecycle state of a notification record.
type RecordState string

const (
	RecordActive       RecordState = "active"
	RecordAcknowledged RecordState = "acknowledged"
	RecordExpired      RecordState = "expired"
)

// NotificationRecord is the client-side view of an admitted proximity event.
type NotificationRecord struct {
	Event     ProximityEvent `json:"event"`
	Priority  Priority       `json:"priority"`
	State     RecordState    `json:"state"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// ID returns the server-assigned notification id of the record.
func (r NotificationRecord) ID() string {
	return r.Event.NotificationID
}
