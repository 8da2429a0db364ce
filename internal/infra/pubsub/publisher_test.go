package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"nearby/config"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/service"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.PresenceEvent {
	return &service.PresenceEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Kind:       constants.PresenceKindLocation,
		VendorID:   "vendor-1",
		Latitude:   28.6139,
		Longitude:  77.209,
		IsOnline:   true,
		OccurredAt: "2025-06-01T12:00:00Z",
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishPresenceEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"vendor_id":  "vendor-1",
		"kind":       "location",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.PresenceEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func newTestLocalPublisher(endpoint string) *localHTTPPublisher {
	p := NewLocalHTTPPublisher(endpoint, testLogger()).(*localHTTPPublisher)
	p.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, localPushRetries)
	}

	return p
}

func TestLocalHTTPPublisher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, newTestLocalPublisher(server.URL).PublishPresenceEvent(context.Background(), testEvent()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newTestLocalPublisher(server.URL).PublishPresenceEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(localPushRetries+1), calls.Load())
}

func TestLocalHTTPPublisher_ClientErrorIsFinal(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newTestLocalPublisher(server.URL).PublishPresenceEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config", pubsub: nil},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.pubsub == nil || tt.pubsub.Provider != constants.PubSubProviderLocal {
				assert.NoError(t, publisher.PublishPresenceEvent(context.Background(), testEvent()))
			}
			lc.RequireStart().RequireStop()
		})
	}
}
