package entity

import (
	"time"
)

// Vendor is the hub's durable view of a vendor profile.
type Vendor struct {
	ID                   string
	Name                 string
	Rating               *float64
	DeliveryRadiusMeters float64
	AcceptingOrders      bool
	LastKnown            *Coordinates
	IsOnline             bool
	LastSeenAt           *time.Time
	UpdatedAt            time.Time
}

// CatalogItem is a product row with its stock state. Only active items with
// stock are attached to proximity events.
type CatalogItem struct {
	Product
	Quantity int
	IsActive bool
}

// Acknowledgement records that a consumer dismissed a notification.
type Acknowledgement struct {
	NotificationID string
	ConsumerID     string
	AcknowledgedAt time.Time
}

// HubStats is a point-in-time count of live participants.
type HubStats struct {
	OnlineVendors    int `json:"onlineVendors"`
	AcceptingVendors int `json:"acceptingVendors"`
	Consumers        int `json:"consumers"`
	LocatedConsumers int `json:"locatedConsumers"`
}
