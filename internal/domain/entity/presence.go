package entity

import (
	"time"
)

// VendorPresence is a vendor's live availability as owned by the vendor client.
type VendorPresence struct {
	VendorID             string      `json:"vendorId"`
	Coordinates          Coordinates `json:"coordinates"`
	IsOnline             bool        `json:"isOnline"`
	AcceptingOrders      bool        `json:"acceptingOrders"`
	DeliveryRadiusMeters float64     `json:"deliveryRadiusMeters"`
	OnlineSince          *time.Time  `json:"onlineSince"`
	LastLocationUpdate   time.Time   `json:"lastLocationUpdate"`
}

// Consistent reports whether the acceptingOrders ⇒ isOnline invariant holds.
func (p VendorPresence) Consistent() bool {
	return !p.AcceptingOrders || p.IsOnline
}

// DeliverySettings is a partial update of a vendor's delivery configuration.
type DeliverySettings struct {
	DeliveryRadius  *float64 `json:"deliveryRadius,omitempty"`
	AcceptingOrders *bool    `json:"acceptingOrders,omitempty"`
}
