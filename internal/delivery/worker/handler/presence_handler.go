// Package handler holds the presence feed push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks a failure Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier validates the OIDC token Google attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PresenceHandler stores vendor presence events delivered by the presence feed.
type PresenceHandler struct {
	verify     tokenVerifier
	logger     *slog.Logger
	vendorRepo repository.VendorRepository
}

// PresenceHandlerParams holds dependencies for the PresenceHandler
type PresenceHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	VendorRepo repository.VendorRepository
}

// NewPresenceHandler creates the presence feed push handler. Push tokens are
// verified for the google provider outside of the develop environment.
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	h := &PresenceHandler{
		logger:     params.Logger.With(slog.String("component", "presence_feed")),
		vendorRepo: params.VendorRepo,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush handles a push message. Malformed messages are acknowledged with
// 400, store failures answer 503 so that Pub/Sub redelivers.
func (h *PresenceHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PresenceEvent
	if err := json.Unmarshal(data, &event); err != nil || event.VendorID == "" {
		h.logger.Error("Failed to parse presence event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processPresence(ctx, &event); err != nil {
		reqLogger.Error("Failed to process presence event",
			slog.String("event_id", event.EventID),
			slog.String("vendor_id", event.VendorID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Debug("Presence event stored",
		slog.String("event_id", event.EventID),
		slog.String("vendor_id", event.VendorID),
		slog.String("kind", event.Kind),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the payload, then the
// request header, and finally generates one.
func (h *PresenceHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.PresenceEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PresenceHandler) processPresence(ctx context.Context, event *service.PresenceEvent) error {
	presence, err := toVendorPresence(event)
	if err != nil {
		return err
	}

	if err := h.vendorRepo.RecordPresence(ctx, presence); err != nil {
		return newRetryableError(err)
	}

	return nil
}

func toVendorPresence(event *service.PresenceEvent) (*entity.VendorPresence, error) {
	switch event.Kind {
	case constants.PresenceKindOnline, constants.PresenceKindOffline,
		constants.PresenceKindLocation, constants.PresenceKindStatus:
	default:
		return nil, errors.Errorf("unknown presence kind %q", event.Kind)
	}

	occurredAt := time.Now()
	if event.OccurredAt != "" {
		parsed, err := time.Parse(time.RFC3339Nano, event.OccurredAt)
		if err != nil {
			return nil, errors.Wrap(err, "parse occurred_at")
		}
		occurredAt = parsed
	}

	return &entity.VendorPresence{
		VendorID:           event.VendorID,
		Coordinates:        entity.Coordinates{Latitude: event.Latitude, Longitude: event.Longitude},
		IsOnline:           event.IsOnline && event.Kind != constants.PresenceKindOffline,
		AcceptingOrders:    event.AcceptingOrders,
		LastLocationUpdate: occurredAt,
	}, nil
}

// verifyPubSubToken verifies the JWT Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
