package service

import (
	"encoding/json"

	"nearby/internal/domain/entity"
)

// Event names exchanged over the realtime channel.
const (
	EventVendorOnline          = "vendor-online"
	EventVendorOffline         = "vendor-offline"
	EventVendorLocationUpdate  = "vendor-location-update"
	EventVendorStatusUpdate    = "vendor-status-update"
	EventConsumerLocation      = "consumer-location-update"
	EventAcknowledge           = "acknowledge-notification"
	EventVendorNearby          = "vendor-nearby"
	EventVendorDeparted        = "vendor-departed"
	EventVendorUpdated         = "vendor-updated"
	EventProximityNotification = "proximity-notification"
	EventConnected             = "connected"
	EventError                 = "error"
)

// Envelope is the wire frame of the realtime channel. Every websocket text
// frame carries exactly one envelope.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Close codes in the application range used by the hub to end a session
// on purpose. Clients must not reconnect after receiving them.
const (
	CloseKicked     = 4000
	CloseReplaced   = 4001
	CloseBadRequest = 4002
)

// EventHandler consumes the raw payload of an inbound event.
type EventHandler func(payload json.RawMessage)

// EventChannel is the slice of a transport session the domain needs:
// fire-and-forget sends, typed inbound routing and reconnect notification.
type EventChannel interface {
	// Send emits an event. It returns false when the event was dropped
	// because the channel is not connected.
	Send(event string, payload any) bool

	// On registers the handler for an inbound event kind.
	On(event string, handler EventHandler)

	// OnConnect registers a callback fired after every successful (re)connect.
	OnConnect(fn func())

	// Status returns the current session status.
	Status() entity.SessionStatus
}

// VendorOnlinePayload is the body of vendor-online.
type VendorOnlinePayload struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// VendorLocationPayload is the body of vendor-location-update.
type VendorLocationPayload struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	IsActive  bool    `json:"isActive"`
	Timestamp string  `json:"timestamp"`
}

// VendorStatusPayload is the body of vendor-status-update.
type VendorStatusPayload struct {
	AcceptingOrders bool    `json:"acceptingOrders"`
	DeliveryRadius  float64 `json:"deliveryRadius"`
}

// ConsumerLocationPayload is the body of consumer-location-update.
type ConsumerLocationPayload struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// AcknowledgePayload is the body of acknowledge-notification.
type AcknowledgePayload struct {
	NotificationID string `json:"notificationId"`
}

// ConnectedPayload is the welcome message the hub sends after the handshake.
type ConnectedPayload struct {
	UserID    string `json:"userId"`
	UserRole  string `json:"userRole"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorPayload is the body of the error event the hub sends when it rejects
// an inbound event. The session stays open.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Event   string `json:"event,omitempty"`
}
