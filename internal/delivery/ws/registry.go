// Package ws is the hub side of the realtime channel: the websocket
// endpoint and the registry of connected users.
package ws

import (
	"log/slog"
	"sync"

	"nearby/internal/domain/service"
)

// Registry tracks the live connection of each user. A user has at most one
// connection; a newer one replaces the older.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*client
	logger  *slog.Logger
}

var _ service.Notifier = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		clients: make(map[string]*client),
		logger:  logger.With(slog.String("component", "ws_registry")),
	}
}

// NotifyUser enqueues an event for the user's connection. It reports false
// when the user is not connected or its send buffer is full.
func (r *Registry) NotifyUser(userID, event string, payload any) bool {
	r.mu.RLock()
	c := r.clients[userID]
	r.mu.RUnlock()

	if c == nil {
		return false
	}

	frame, err := encodeFrame(event, payload)
	if err != nil {
		r.logger.Error("Failed to encode event", slog.String("event", event), slog.Any("error", err))

		return false
	}

	if !c.enqueue(frame) {
		r.logger.Warn("Dropped event", slog.String("user_id", userID), slog.String("event", event))

		return false
	}

	return true
}

// Connected reports whether the user has a live connection.
func (r *Registry) Connected(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.clients[userID] != nil
}

// Count returns the number of live connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}

// register makes c the user's connection and returns the one it replaced.
func (r *Registry) register(c *client) *client {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := r.clients[c.identity.UserID]
	r.clients[c.identity.UserID] = c

	return previous
}

// unregister removes c if it is still the user's connection.
func (r *Registry) unregister(c *client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clients[c.identity.UserID] != c {
		return false
	}
	delete(r.clients, c.identity.UserID)

	return true
}

// CloseAll ends every connection with the given close code.
func (r *Registry) CloseAll(code int, text string) {
	r.mu.RLock()
	clients := make([]*client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	for _, c := range clients {
		c.close(code, text)
	}
}
