package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/infra/metrics"
	mockService "nearby/internal/mocks/service"
	mockUsecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	vendorIdentity   = &entity.Identity{UserID: "v1", Role: entity.RoleVendor, Name: "Tea Cart"}
	consumerIdentity = &entity.Identity{UserID: "c1", Role: entity.RoleConsumer, Name: "Asha"}
)

type testHub struct {
	url      string
	tokens   *mockService.MockTokenService
	matching *mockUsecase.MockMatchingUsecase
	registry *Registry
	clock    *clockwork.FakeClock
}

func newTestHub(t *testing.T, rateLimit float64, burst int) *testHub {
	cfg := &config.Config{
		Transport: &config.TransportConfig{
			PingPeriod: time.Minute,
			PongWait:   2 * time.Minute,
			WriteWait:  time.Second,
		},
		Matching: &config.MatchingConfig{
			InboundRate:  rateLimit,
			InboundBurst: burst,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hub := &testHub{
		tokens:   mockService.NewMockTokenService(t),
		matching: mockUsecase.NewMockMatchingUsecase(t),
		registry: NewRegistry(logger),
		clock:    clockwork.NewFakeClockAt(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)),
	}

	// Session teardown runs asynchronously after the client goes away.
	hub.matching.EXPECT().VendorOffline(mock.Anything, mock.Anything).Return().Maybe()
	hub.matching.EXPECT().ConsumerOffline(mock.Anything).Return().Maybe()
	hub.matching.EXPECT().ConsumerOnline(mock.Anything, mock.Anything).Return(nil).Maybe()

	h := NewHandler(HandlerParams{
		Config:       cfg,
		Logger:       logger,
		TokenService: hub.tokens,
		Registry:     hub.registry,
		Matching:     hub.matching,
		Metrics:      metrics.NewPrometheus(),
		Clock:        hub.clock,
	})

	e := echo.New()
	e.GET("/ws", h.ServeWS)
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		hub.registry.CloseAll(websocket.CloseGoingAway, "test done")
		srv.Close()
	})

	hub.url = "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	return hub
}

func (h *testHub) dial(t *testing.T, token string, identity *entity.Identity) *websocket.Conn {
	t.Helper()

	h.tokens.EXPECT().ValidateToken(token).Return(identity, nil).Once()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, resp, err := websocket.DefaultDialer.Dial(h.url, header)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	welcome := readEvent(t, conn)
	require.Equal(t, service.EventConnected, welcome.Event)

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) service.Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env service.Envelope
	require.NoError(t, json.Unmarshal(data, &env))

	return env
}

func readError(t *testing.T, conn *websocket.Conn) service.ErrorPayload {
	t.Helper()

	env := readEvent(t, conn)
	require.Equal(t, service.EventError, env.Event)

	var payload service.ErrorPayload
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	return payload
}

func send(t *testing.T, conn *websocket.Conn, frame string) {
	t.Helper()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the hub")
	}
}

func TestServeWS_RejectsInvalidToken(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	hub.tokens.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrUnauthorized).Once()

	_, resp, err := websocket.DefaultDialer.Dial(hub.url+"?access_token=bad", nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hub.registry.Connected("v1"))
}

func TestServeWS_WelcomeCarriesIdentity(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	hub.tokens.EXPECT().ValidateToken("vendor-token").Return(vendorIdentity, nil).Once()

	header := http.Header{}
	header.Set("Authorization", "Bearer vendor-token")
	conn, resp, err := websocket.DefaultDialer.Dial(hub.url, header)
	require.NoError(t, err)
	_ = resp.Body.Close()
	defer conn.Close()

	env := readEvent(t, conn)
	require.Equal(t, service.EventConnected, env.Event)

	var welcome service.ConnectedPayload
	require.NoError(t, json.Unmarshal(env.Data, &welcome))
	assert.Equal(t, "v1", welcome.UserID)
	assert.Equal(t, "vendor", welcome.UserRole)
	assert.Equal(t, "2026-10-18T09:00:00Z", welcome.Timestamp)
	assert.True(t, hub.registry.Connected("v1"))
}

func TestServeWS_RoutesVendorLocation(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "vendor-token", vendorIdentity)

	moved := make(chan struct{})
	want := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	hub.matching.EXPECT().
		VendorMoved(mock.Anything, "v1", entity.Coordinates{Latitude: 25.033, Longitude: 121.5654}, mock.MatchedBy(func(at time.Time) bool {
			return at.Equal(want)
		})).
		RunAndReturn(func(context.Context, string, entity.Coordinates, time.Time) error {
			close(moved)

			return nil
		}).Once()

	send(t, conn, `{"event":"vendor-location-update","data":{"latitude":25.033,"longitude":121.5654,"isActive":true,"timestamp":"2026-10-18T09:30:00Z"}}`)
	waitFor(t, moved)
}

func TestServeWS_VendorLocationWithoutTimestampUsesClock(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "vendor-token", vendorIdentity)

	moved := make(chan struct{})
	hub.matching.EXPECT().
		VendorMoved(mock.Anything, "v1", mock.Anything, mock.MatchedBy(func(at time.Time) bool {
			return at.Equal(hub.clock.Now())
		})).
		RunAndReturn(func(context.Context, string, entity.Coordinates, time.Time) error {
			close(moved)

			return nil
		}).Once()

	send(t, conn, `{"event":"vendor-location-update","data":{"latitude":25.033,"longitude":121.5654}}`)
	waitFor(t, moved)
}

func TestServeWS_RelaysDomainRejection(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "vendor-token", vendorIdentity)

	hub.matching.EXPECT().
		VendorStatus(mock.Anything, "v1", usecase.VendorStatus{AcceptingOrders: true, DeliveryRadius: 1500}).
		Return(domainerrors.ErrVendorOffline).Once()

	send(t, conn, `{"event":"vendor-status-update","data":{"acceptingOrders":true,"deliveryRadius":1500}}`)

	payload := readError(t, conn)
	assert.Equal(t, "VENDOR_OFFLINE", payload.Code)
	assert.Equal(t, service.EventVendorStatusUpdate, payload.Event)
}

func TestServeWS_ForbidsEventsOfOtherRole(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "consumer-token", consumerIdentity)

	send(t, conn, `{"event":"vendor-online","data":{"latitude":1,"longitude":2}}`)

	payload := readError(t, conn)
	assert.Equal(t, "FORBIDDEN", payload.Code)
	assert.Equal(t, service.EventVendorOnline, payload.Event)
}

func TestServeWS_UnknownEvent(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "consumer-token", consumerIdentity)

	send(t, conn, `{"event":"teleport","data":{}}`)

	payload := readError(t, conn)
	assert.Equal(t, "UNKNOWN_EVENT", payload.Code)
	assert.Equal(t, "teleport", payload.Event)
}

func TestServeWS_MalformedFrameKeepsSession(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "consumer-token", consumerIdentity)

	acked := make(chan struct{})
	hub.matching.EXPECT().Acknowledge(mock.Anything, "c1", "n-1").
		RunAndReturn(func(context.Context, string, string) error {
			close(acked)

			return nil
		}).Once()

	send(t, conn, `not json`)
	assert.Equal(t, "MALFORMED_EVENT", readError(t, conn).Code)

	send(t, conn, `{"event":"consumer-location-update"}`)
	assert.Equal(t, "MALFORMED_EVENT", readError(t, conn).Code)

	send(t, conn, `{"event":"acknowledge-notification","data":{"notificationId":"n-1"}}`)
	waitFor(t, acked)
}

func TestServeWS_RateLimitsFloods(t *testing.T) {
	hub := newTestHub(t, 0.001, 1)
	conn := hub.dial(t, "consumer-token", consumerIdentity)

	send(t, conn, `{"event":"teleport"}`)
	assert.Equal(t, "UNKNOWN_EVENT", readError(t, conn).Code)

	send(t, conn, `{"event":"teleport"}`)
	assert.Equal(t, "RATE_LIMITED", readError(t, conn).Code)
}

func TestServeWS_NewSessionReplacesOld(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	first := hub.dial(t, "vendor-token", vendorIdentity)
	hub.dial(t, "vendor-token", vendorIdentity)

	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, service.CloseReplaced, closeErr.Code)
	assert.True(t, hub.registry.Connected("v1"))
	assert.Equal(t, 1, hub.registry.Count())
}

func TestRegistry_NotifyUser(t *testing.T) {
	hub := newTestHub(t, 100, 100)
	conn := hub.dial(t, "consumer-token", consumerIdentity)

	ok := hub.registry.NotifyUser("c1", service.EventVendorDeparted, map[string]string{"vendorId": "v1"})
	require.True(t, ok)

	env := readEvent(t, conn)
	assert.Equal(t, service.EventVendorDeparted, env.Event)
	assert.JSONEq(t, `{"vendorId":"v1"}`, string(env.Data))

	assert.False(t, hub.registry.NotifyUser("nobody", service.EventVendorDeparted, nil))
}
