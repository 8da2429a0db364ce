package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/infra/pubsub"
	mockRepo "nearby/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, provider string) (*PresenceHandler, *mockRepo.MockVendorRepository) {
	repo := mockRepo.NewMockVendorRepository(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPresenceHandler(PresenceHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		VendorRepo: repo,
	})

	return h, repo
}

func pushBody(t *testing.T, event service.PresenceEvent) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func serve(h *PresenceHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/presence", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPresenceHandler_HandlePush(t *testing.T) {
	occurred := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	event := service.PresenceEvent{
		EventID:    "evt-1",
		Kind:       constants.PresenceKindLocation,
		VendorID:   "vendor-1",
		Latitude:   28.6139,
		Longitude:  77.209,
		IsOnline:   true,
		OccurredAt: occurred.Format(time.RFC3339),
	}

	t.Run("stores the presence", func(t *testing.T) {
		h, repo := newTestHandler(t, constants.PubSubProviderLocal)
		repo.EXPECT().RecordPresence(mock.Anything, mock.MatchedBy(func(p *entity.VendorPresence) bool {
			return p.VendorID == "vendor-1" &&
				p.Coordinates == entity.Coordinates{Latitude: 28.6139, Longitude: 77.209} &&
				p.IsOnline &&
				p.LastLocationUpdate.Equal(occurred)
		})).Return(nil).Once()

		rec := serve(h, pushBody(t, event))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("offline is never online", func(t *testing.T) {
		h, repo := newTestHandler(t, constants.PubSubProviderLocal)
		offline := event
		offline.Kind = constants.PresenceKindOffline
		repo.EXPECT().RecordPresence(mock.Anything, mock.MatchedBy(func(p *entity.VendorPresence) bool {
			return !p.IsOnline
		})).Return(nil).Once()

		rec := serve(h, pushBody(t, offline))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		h, repo := newTestHandler(t, constants.PubSubProviderLocal)
		repo.EXPECT().RecordPresence(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		rec := serve(h, pushBody(t, event))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown kind is acknowledged without storing", func(t *testing.T) {
		h, _ := newTestHandler(t, constants.PubSubProviderLocal)
		unknown := event
		unknown.Kind = "teleport"

		rec := serve(h, pushBody(t, unknown))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad payload", func(t *testing.T) {
		h, _ := newTestHandler(t, constants.PubSubProviderLocal)

		rec := serve(h, `{"message":{"data":"not base64!"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("google push requires a token", func(t *testing.T) {
		h, _ := newTestHandler(t, constants.PubSubProviderGoogle)

		rec := serve(h, pushBody(t, event))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
