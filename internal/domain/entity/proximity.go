package entity

import (
	"time"
)

// ProximityEventType distinguishes the lifecycle of a proximity event.
type ProximityEventType string

const (
	ProximityNearby   ProximityEventType = "nearby"
	ProximityDeparted ProximityEventType = "departed"
	ProximityUpdated  ProximityEventType = "updated"
)

// Product is a catalogue item attached to a proximity event.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
}

// ProximityEvent is a server-pushed notice that a vendor is in range of a consumer.
// It is immutable once received.
type ProximityEvent struct {
	Type             ProximityEventType `json:"type"`
	NotificationID   string             `json:"notificationId"`
	VendorID         string             `json:"vendorId"`
	VendorName       string             `json:"vendorName"`
	VendorRating     *float64           `json:"vendorRating,omitempty"`
	DistanceMeters   float64            `json:"distance"`
	Coordinates      Coordinates        `json:"coordinates"`
	Products         []Product          `json:"products"`
	EstimatedArrival string             `json:"estimatedArrival,omitempty"`
	Message          string             `json:"message,omitempty"`
	Timestamp        time.Time          `json:"timestamp"`
}

// Categories returns the distinct product categories carried by the event.
func (e ProximityEvent) Categories() []string {
	seen := make(map[string]struct{}, len(e.Products))
	categories := make([]string, 0, len(e.Products))
	for _, product := range e.Products {
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}

	return categories
}
