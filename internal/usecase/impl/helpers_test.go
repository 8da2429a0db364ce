package impl

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/stretchr/testify/require"
)

type sentEvent struct {
	name    string
	payload json.RawMessage
}

// fakeChannel records outbound events and lets tests inject inbound ones.
type fakeChannel struct {
	mu        sync.Mutex
	connected bool
	sent      []sentEvent
	handlers  map[string][]service.EventHandler
	onConnect []func()
}

func newFakeChannel(connected bool) *fakeChannel {
	return &fakeChannel{
		connected: connected,
		handlers:  make(map[string][]service.EventHandler),
	}
}

func (c *fakeChannel) Send(event string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return false
	}
	c.sent = append(c.sent, sentEvent{name: event, payload: data})

	return true
}

func (c *fakeChannel) On(event string, handler service.EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers[event] = append(c.handlers[event], handler)
}

func (c *fakeChannel) OnConnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onConnect = append(c.onConnect, fn)
}

func (c *fakeChannel) Status() entity.SessionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return entity.SessionConnected
	}

	return entity.SessionDisconnected
}

func (c *fakeChannel) setConnected(connected bool) {
	c.mu.Lock()
	c.connected = connected
	hooks := append([]func(){}, c.onConnect...)
	c.mu.Unlock()

	if connected {
		for _, hook := range hooks {
			hook()
		}
	}
}

func (c *fakeChannel) deliver(t *testing.T, event string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	c.mu.Lock()
	handlers := append([]service.EventHandler{}, c.handlers[event]...)
	c.mu.Unlock()

	for _, h := range handlers {
		h(data)
	}
}

func (c *fakeChannel) events(name string) []json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []json.RawMessage
	for _, e := range c.sent {
		if e.name == name {
			out = append(out, e.payload)
		}
	}

	return out
}

func (c *fakeChannel) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.sent))
	for _, e := range c.sent {
		out = append(out, e.name)
	}

	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	return &config.Config{
		Presence: &config.PresenceConfig{
			MinMovementMeters:  10,
			MaxStaleness:       5 * time.Second,
			AcquisitionTimeout: 10 * time.Second,
			DefaultRadius:      2000,
			MinRadius:          500,
			MaxRadius:          5000,
		},
		Notification: &config.NotificationConfig{
			TTL:        30 * time.Second,
			MaxActive:  10,
			Permission: "granted",
			TimeZone:   "UTC",
		},
		Matching: &config.MatchingConfig{
			MaxSearchRadiusMeters: 5000,
			Cooldown:              5 * time.Minute,
			MaxProducts:           5,
		},
	}
}
