package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nearby/config"
	"nearby/internal/delivery/api/response"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// maxRateStrikes is how many consecutive rate-limited frames a client may send
// before it is disconnected.
const maxRateStrikes = 50

type route func(ctx context.Context, c *client, data json.RawMessage) error

// HandlerParams holds dependencies for the websocket endpoint, injected by Fx.
type HandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	TokenService service.TokenService
	Registry     *Registry
	Matching     usecase.MatchingUsecase
	Metrics      service.HubMetrics
	Clock        clockwork.Clock
}

// Handler upgrades authenticated requests and routes their events by role.
type Handler struct {
	transport *config.TransportConfig
	matchCfg  *config.MatchingConfig
	logger    *slog.Logger
	tokens    service.TokenService
	registry  *Registry
	matching  usecase.MatchingUsecase
	metrics   service.HubMetrics
	clock     clockwork.Clock
	upgrader  websocket.Upgrader
	routes    map[entity.Role]map[string]route
}

// NewHandler creates the websocket endpoint.
func NewHandler(params HandlerParams) *Handler {
	h := &Handler{
		transport: params.Config.Transport,
		matchCfg:  params.Config.Matching,
		logger:    params.Logger.With(slog.String("component", "ws")),
		tokens:    params.TokenService,
		registry:  params.Registry,
		matching:  params.Matching,
		metrics:   params.Metrics,
		clock:     params.Clock,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Agents are not browsers; the bearer token is the access control.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	h.routes = map[entity.Role]map[string]route{
		entity.RoleVendor: {
			service.EventVendorOnline:         h.vendorOnline,
			service.EventVendorLocationUpdate: h.vendorLocation,
			service.EventVendorStatusUpdate:   h.vendorStatus,
			service.EventVendorOffline:        h.vendorOffline,
		},
		entity.RoleConsumer: {
			service.EventConsumerLocation: h.consumerLocation,
			service.EventAcknowledge:      h.acknowledge,
		},
	}

	return h
}

// ServeWS authenticates the handshake and runs the session until the
// connection ends.
func (h *Handler) ServeWS(c echo.Context) error {
	identity, err := h.tokens.ValidateToken(bearerToken(c.Request()))
	if err != nil {
		h.logger.Debug("Rejected handshake", slog.Any("error", err))

		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already answered the request.
		h.logger.Warn("Upgrade failed", slog.Any("error", err))

		return nil
	}

	h.run(newClient(*identity, conn, h.transport.WriteWait))

	return nil
}

func (h *Handler) run(c *client) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := h.logger.With(slog.String("user_id", c.identity.UserID), slog.String("role", c.identity.Role.String()))
	role := c.identity.Role.String()

	if previous := h.registry.register(c); previous != nil {
		logger.Info("Replacing previous session")
		previous.close(service.CloseReplaced, "replaced by a new session")
	}
	h.metrics.ConnectionOpened(role)
	logger.Info("Session opened")

	go c.writePump(h.transport.PingPeriod)

	c.emit(service.EventConnected, service.ConnectedPayload{
		UserID:    c.identity.UserID,
		UserRole:  role,
		Message:   "Connected to nearby hub",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})

	if c.identity.Role == entity.RoleConsumer {
		if err := h.matching.ConsumerOnline(ctx, c.identity); err != nil {
			logger.Warn("Failed to register consumer", slog.Any("error", err))
		}
	}

	h.readPump(ctx, c, logger)

	if h.registry.unregister(c) {
		switch c.identity.Role {
		case entity.RoleVendor:
			h.matching.VendorOffline(ctx, c.identity.UserID)
		case entity.RoleConsumer:
			h.matching.ConsumerOffline(c.identity.UserID)
		}
	}
	c.close(0, "")
	h.metrics.ConnectionClosed(role)
	logger.Info("Session closed")
}

func (h *Handler) readPump(ctx context.Context, c *client, logger *slog.Logger) {
	limiter := rate.NewLimiter(rate.Limit(h.matchCfg.InboundRate), h.matchCfg.InboundBurst)
	strikes := 0

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.transport.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.transport.PongWait))
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("Connection lost", slog.Any("error", err))
			}

			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(h.transport.PongWait))

		if msgType != websocket.TextMessage {
			h.metrics.EventDropped(service.DropMalformed)
			c.close(service.CloseBadRequest, "text frames only")

			return
		}

		if !limiter.Allow() {
			h.metrics.EventDropped(service.DropRateLimited)
			strikes++
			if strikes == 1 {
				h.reject(c, "", domainerrors.ErrRateLimited)
			}
			if strikes >= maxRateStrikes {
				logger.Warn("Disconnecting flooding client")
				c.close(service.CloseKicked, "rate limit exceeded")

				return
			}

			continue
		}
		strikes = 0

		h.dispatch(ctx, c, data, logger)
	}
}

// dispatch routes one frame. Failures are reported to the client as error
// events and never end the session.
func (h *Handler) dispatch(ctx context.Context, c *client, data []byte, logger *slog.Logger) {
	var env service.Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Event == "" {
		h.metrics.EventDropped(service.DropMalformed)
		h.reject(c, "", domainerrors.ErrMalformedEvent)

		return
	}
	h.metrics.EventReceived(env.Event)

	handle, ok := h.routes[c.identity.Role][env.Event]
	if !ok {
		if h.knownEvent(env.Event) {
			h.metrics.EventDropped(service.DropForbidden)
			h.reject(c, env.Event, domainerrors.ErrForbidden.WithDetails(env.Event+" is not allowed for "+c.identity.Role.String()))
		} else {
			h.metrics.EventDropped(service.DropUnknown)
			h.reject(c, env.Event, domainerrors.ErrUnknownEvent.WithDetails(env.Event))
		}

		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Event handler panicked", slog.String("event", env.Event), slog.Any("panic", r))
			h.reject(c, env.Event, domainerrors.ErrInternalError)
		}
	}()

	if err := handle(ctx, c, env.Data); err != nil {
		logger.Debug("Event rejected", slog.String("event", env.Event), slog.Any("error", err))
		h.reject(c, env.Event, err)
	}
}

func (h *Handler) knownEvent(event string) bool {
	for _, routes := range h.routes {
		if _, ok := routes[event]; ok {
			return true
		}
	}

	return false
}

func (h *Handler) reject(c *client, event string, err error) {
	payload := service.ErrorPayload{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: domainerrors.ErrInternalError.Message(),
		Event:   event,
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		payload.Code = appErr.ErrorCode()
		payload.Message = appErr.Error()
	}

	c.emit(service.EventError, payload)
}

func (h *Handler) vendorOnline(ctx context.Context, c *client, data json.RawMessage) error {
	p, err := decode[service.VendorOnlinePayload](data)
	if err != nil {
		return err
	}

	return h.matching.VendorOnline(ctx, c.identity, entity.Coordinates{Latitude: p.Latitude, Longitude: p.Longitude})
}

func (h *Handler) vendorLocation(ctx context.Context, c *client, data json.RawMessage) error {
	p, err := decode[service.VendorLocationPayload](data)
	if err != nil {
		return err
	}

	at := h.clock.Now()
	if parsed, err := time.Parse(time.RFC3339Nano, p.Timestamp); err == nil {
		at = parsed
	}

	return h.matching.VendorMoved(ctx, c.identity.UserID, entity.Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}, at)
}

func (h *Handler) vendorStatus(ctx context.Context, c *client, data json.RawMessage) error {
	p, err := decode[service.VendorStatusPayload](data)
	if err != nil {
		return err
	}

	return h.matching.VendorStatus(ctx, c.identity.UserID, usecase.VendorStatus{
		AcceptingOrders: p.AcceptingOrders,
		DeliveryRadius:  p.DeliveryRadius,
	})
}

func (h *Handler) vendorOffline(ctx context.Context, c *client, _ json.RawMessage) error {
	h.matching.VendorOffline(ctx, c.identity.UserID)

	return nil
}

func (h *Handler) consumerLocation(ctx context.Context, c *client, data json.RawMessage) error {
	p, err := decode[service.ConsumerLocationPayload](data)
	if err != nil {
		return err
	}

	return h.matching.ConsumerMoved(ctx, c.identity.UserID, entity.Coordinates{Latitude: p.Latitude, Longitude: p.Longitude})
}

func (h *Handler) acknowledge(ctx context.Context, c *client, data json.RawMessage) error {
	p, err := decode[service.AcknowledgePayload](data)
	if err != nil {
		return err
	}

	return h.matching.Acknowledge(ctx, c.identity.UserID, p.NotificationID)
}

func decode[T any](data json.RawMessage) (T, error) {
	var payload T
	if len(data) == 0 {
		return payload, domainerrors.ErrMalformedEvent.WithDetails("missing data")
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, domainerrors.ErrMalformedEvent.WithDetails(err.Error())
	}

	return payload, nil
}

// bearerToken reads the handshake credential from the Authorization header,
// falling back to the access_token query parameter.
func bearerToken(req *http.Request) string {
	if header := req.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	return req.URL.Query().Get("access_token")
}
