package service

import (
	"context"
)

// PresenceEvent is a vendor presence change fanned out to downstream consumers.
type PresenceEvent struct {
	RequestID       string  `json:"request_id,omitempty"`
	EventID         string  `json:"event_id"`
	Kind            string  `json:"kind"` // online, offline, location, status
	VendorID        string  `json:"vendor_id"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	IsOnline        bool    `json:"is_online"`
	AcceptingOrders bool    `json:"accepting_orders"`
	OccurredAt      string  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPresenceEvent publishes a presence change for async consumers
	PublishPresenceEvent(ctx context.Context, event *PresenceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
