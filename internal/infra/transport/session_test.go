package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventually = 2 * time.Second

type testHub struct {
	server   *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conns    []*websocket.Conn
	headers  []http.Header
	received chan service.Envelope
	reject   atomic.Bool
	hits     atomic.Int32
}

func newTestHub(t *testing.T) *testHub {
	t.Helper()

	hub := &testHub{received: make(chan service.Envelope, 100)}
	hub.server = httptest.NewServer(http.HandlerFunc(hub.serve))
	t.Cleanup(hub.close)

	return hub
}

func (h *testHub) serve(w http.ResponseWriter, r *http.Request) {
	h.hits.Add(1)
	if h.reject.Load() {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)

		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.conns = append(h.conns, ws)
	h.headers = append(h.headers, r.Header.Clone())
	h.mu.Unlock()

	go func() {
		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			var env service.Envelope
			if json.Unmarshal(data, &env) == nil {
				h.received <- env
			}
		}
	}()
}

func (h *testHub) url() string {
	return "ws" + strings.TrimPrefix(h.server.URL, "http") + "/ws"
}

func (h *testHub) connCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}

func (h *testHub) last() *websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.conns[len(h.conns)-1]
}

func (h *testHub) emit(t *testing.T, event string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, h.last().WriteJSON(service.Envelope{Event: event, Data: data}))
}

func (h *testHub) close() {
	h.mu.Lock()
	for _, c := range h.conns {
		_ = c.Close()
	}
	h.mu.Unlock()
	h.server.Close()
}

func newTestSession(url string, clock clockwork.Clock) *Session {
	return NewSession(Options{
		URL:         url,
		Token:       "secret-token",
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		PingPeriod:  50 * time.Second,
		PongWait:    60 * time.Second,
		WriteWait:   5 * time.Second,
		DialTimeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), clock)
}

func TestReconnectBackOff_Bounds(t *testing.T) {
	base := time.Second
	maxDelay := 30 * time.Second
	b := newReconnectBackOff(clockwork.NewFakeClock(), base, maxDelay)

	want := []time.Duration{1, 2, 4, 8, 16, 30, 30}
	for i, w := range want {
		attempt := i + 1
		delay := b.NextBackOff()
		assert.Equal(t, w*time.Second, delay, "attempt %d", attempt)

		if attempt <= 6 {
			lower := time.Duration(float64(base) * float64(int(1)<<(attempt-1)) * 0.5)
			upper := min(base*time.Duration(int(1)<<attempt), maxDelay)
			assert.GreaterOrEqual(t, delay, lower, "attempt %d", attempt)
			assert.LessOrEqual(t, delay, upper, "attempt %d", attempt)
		}
	}

	b.Reset()
	assert.Equal(t, time.Second, b.NextBackOff())
}

func TestSession_ConnectSendsBearerAndIsIdempotent(t *testing.T) {
	hub := newTestHub(t)
	session := newTestSession(hub.url(), clockwork.NewFakeClock())
	defer session.Disconnect()

	require.NoError(t, session.Connect(context.Background()))
	require.NoError(t, session.Connect(context.Background()))

	assert.Equal(t, entity.SessionConnected, session.Status())
	assert.Equal(t, 1, hub.connCount())

	hub.mu.Lock()
	assert.Equal(t, "Bearer secret-token", hub.headers[0].Get("Authorization"))
	hub.mu.Unlock()
}

func TestSession_RoutesInboundEvents(t *testing.T) {
	hub := newTestHub(t)
	session := newTestSession(hub.url(), clockwork.NewFakeClock())
	defer session.Disconnect()

	got := make(chan string, 4)
	session.On("vendor-nearby", func(payload json.RawMessage) {
		var body struct {
			VendorID string `json:"vendorId"`
		}
		if json.Unmarshal(payload, &body) == nil {
			got <- body.VendorID
		}
	})
	session.On("explode", func(json.RawMessage) {
		panic("boom")
	})

	require.NoError(t, session.Connect(context.Background()))

	hub.emit(t, service.EventConnected, service.ConnectedPayload{UserID: "c-1", UserRole: "consumer"})
	require.NoError(t, hub.last().WriteMessage(websocket.TextMessage, []byte("not json")))
	hub.emit(t, "explode", struct{}{})
	hub.emit(t, "vendor-nearby", map[string]string{"vendorId": "v-1"})

	select {
	case vendorID := <-got:
		assert.Equal(t, "v-1", vendorID)
	case <-time.After(eventually):
		t.Fatal("handler not invoked")
	}

	assert.Equal(t, entity.SessionConnected, session.Status())
	require.NotNil(t, session.Identity())
	assert.Equal(t, "c-1", session.Identity().UserID)
	assert.Equal(t, entity.RoleConsumer, session.Identity().Role)
}

func TestSession_SendDropsWhenDisconnected(t *testing.T) {
	hub := newTestHub(t)
	session := newTestSession(hub.url(), clockwork.NewFakeClock())

	assert.False(t, session.Send(service.EventVendorOffline, struct{}{}))

	require.NoError(t, session.Connect(context.Background()))
	assert.True(t, session.Send(service.EventAcknowledge, service.AcknowledgePayload{NotificationID: "n-1"}))

	select {
	case env := <-hub.received:
		assert.Equal(t, service.EventAcknowledge, env.Event)
		assert.JSONEq(t, `{"notificationId":"n-1"}`, string(env.Data))
	case <-time.After(eventually):
		t.Fatal("event not received by hub")
	}

	session.Disconnect()
	assert.False(t, session.Send(service.EventAcknowledge, service.AcknowledgePayload{NotificationID: "n-2"}))
}

func TestSession_ReconnectsAfterDrop(t *testing.T) {
	hub := newTestHub(t)
	clock := clockwork.NewFakeClock()
	session := newTestSession(hub.url(), clock)
	defer session.Disconnect()

	var connects atomic.Int32
	session.OnConnect(func() { connects.Add(1) })

	require.NoError(t, session.Connect(context.Background()))
	require.Equal(t, int32(1), connects.Load())

	// Abrupt close without a close frame looks like a network failure.
	require.NoError(t, hub.last().UnderlyingConn().Close())

	assert.Eventually(t, func() bool {
		return session.Status() == entity.SessionDisconnected && session.Attempt() == 1
	}, eventually, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), eventually)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, hub.connCount(), "reconnect must wait the full base delay")

	clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool {
		return session.Status() == entity.SessionConnected && hub.connCount() == 2
	}, eventually, 10*time.Millisecond)
	assert.Equal(t, 0, session.Attempt())
	assert.Eventually(t, func() bool { return connects.Load() == 2 }, eventually, 10*time.Millisecond)
}

func TestSession_ServerTerminateDoesNotReconnect(t *testing.T) {
	hub := newTestHub(t)
	clock := clockwork.NewFakeClock()
	session := newTestSession(hub.url(), clock)
	defer session.Disconnect()

	require.NoError(t, session.Connect(context.Background()))

	msg := websocket.FormatCloseMessage(service.CloseKicked, "io server disconnect")
	require.NoError(t, hub.last().WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)))

	assert.Eventually(t, func() bool {
		return session.Status() == entity.SessionDisconnected
	}, eventually, 10*time.Millisecond)

	clock.Advance(time.Minute)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, hub.connCount())
	assert.Equal(t, 0, session.Attempt())
}

func TestSession_DialFailureIsTransportErrorAndDisconnectCancelsRetry(t *testing.T) {
	hub := newTestHub(t)
	hub.reject.Store(true)
	clock := clockwork.NewFakeClock()
	session := newTestSession(hub.url(), clock)

	err := session.Connect(context.Background())
	var transportErr *domainerrors.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, entity.SessionError, session.Status())
	assert.Equal(t, 1, session.Attempt())

	ctx, cancel := context.WithTimeout(context.Background(), eventually)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	// Second failure doubles the delay.
	clock.Advance(time.Second)
	assert.Eventually(t, func() bool { return session.Attempt() == 2 }, eventually, 10*time.Millisecond)
	assert.Equal(t, int32(2), hub.hits.Load())

	session.Disconnect()
	assert.Equal(t, entity.SessionDisconnected, session.Status())

	clock.Advance(time.Minute)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), hub.hits.Load(), "pending reconnect must be cancelled")
}

func TestServerTerminated(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{websocket.CloseNormalClosure, true},
		{websocket.ClosePolicyViolation, true},
		{service.CloseKicked, true},
		{websocket.CloseGoingAway, false},
		{websocket.CloseAbnormalClosure, false},
		{websocket.CloseInternalServerErr, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, serverTerminated(tt.code), "code %d", tt.code)
	}
}
