package service

// Notifier delivers an event to every live connection of a user.
type Notifier interface {
	// NotifyUser queues the event without blocking. It returns false when the
	// user has no live connection or its send buffer is full.
	NotifyUser(userID string, event string, payload any) bool
}
