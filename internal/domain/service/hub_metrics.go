package service

// Reasons an inbound or outbound event is dropped by the hub.
const (
	DropRateLimited = "rate_limited"
	DropMalformed   = "malformed"
	DropUnknown     = "unknown_event"
	DropForbidden   = "forbidden"
	DropBufferFull  = "buffer_full"
	DropFeedFull    = "feed_full"
)

// HubMetrics records the hub's operational counters.
type HubMetrics interface {
	ConnectionOpened(role string)
	ConnectionClosed(role string)
	EventReceived(event string)
	EventDropped(reason string)
	ProximitySent(event string)
	AcknowledgementReceived()
	PresencePublished(kind string, err error)
}
