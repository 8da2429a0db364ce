// Package transport implements the agents' realtime session to the hub: one
// authenticated websocket with typed event routing and automatic reconnect.
package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
)

const (
	maxMessageSize = 64 * 1024
	sendBufferSize = 64
)

// Options configures a Session.
type Options struct {
	URL         string
	Token       string
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	PingPeriod  time.Duration
	PongWait    time.Duration
	WriteWait   time.Duration
	DialTimeout time.Duration
}

// OptionsFromConfig maps the transport config section onto Options.
func OptionsFromConfig(cfg *config.TransportConfig) Options {
	return Options{
		URL:         cfg.URL,
		Token:       cfg.Token,
		BaseDelay:   cfg.BaseDelay,
		MaxDelay:    cfg.MaxDelay,
		PingPeriod:  cfg.PingPeriod,
		PongWait:    cfg.PongWait,
		WriteWait:   cfg.WriteWait,
		DialTimeout: cfg.DialTimeout,
	}
}

// connection is one established websocket and its pumps.
type connection struct {
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *connection) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
}

// Session keeps at most one live connection to the hub and re-establishes it
// with exponential backoff until Disconnect is called or the hub ends the
// session on purpose.
type Session struct {
	opts   Options
	logger *slog.Logger
	clock  clockwork.Clock // drives reconnect timers; socket deadlines use wall time
	dialer *websocket.Dialer

	mu        sync.Mutex
	status    entity.SessionStatus
	attempt   int
	identity  *entity.Identity
	conn      *connection
	manual    bool
	epoch     uint64
	pending   clockwork.Timer
	backoff   *backoff.ExponentialBackOff
	handlers  map[string][]service.EventHandler
	onConnect []func()
	onStatus  []func(entity.SessionStatus)
}

var _ service.EventChannel = (*Session)(nil)

// NewSession creates a disconnected session.
func NewSession(opts Options, logger *slog.Logger, clock clockwork.Clock) *Session {
	s := &Session{
		opts:   opts,
		logger: logger.With(slog.String("component", "transport")),
		clock:  clock,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.DialTimeout,
		},
		status:   entity.SessionDisconnected,
		backoff:  newReconnectBackOff(clock, opts.BaseDelay, opts.MaxDelay),
		handlers: make(map[string][]service.EventHandler),
	}

	s.On(service.EventConnected, s.handleWelcome)
	s.On(service.EventError, func(payload json.RawMessage) {
		s.logger.Warn("Hub reported an error", slog.String("payload", string(payload)))
	})

	return s
}

// Status returns the current session status.
func (s *Session) Status() entity.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Attempt returns the number of reconnect attempts since the last successful connect.
func (s *Session) Attempt() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attempt
}

// Identity returns the identity acknowledged by the hub, if connected.
func (s *Session) Identity() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity

	return &identity
}

// On registers a handler for an inbound event kind. Handlers for the same
// connection run one at a time in arrival order and must not block.
func (s *Session) On(event string, handler service.EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[event] = append(s.handlers[event], handler)
}

// OnConnect registers a callback fired after every successful (re)connect.
func (s *Session) OnConnect(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onConnect = append(s.onConnect, fn)
}

// OnStatus registers a callback fired on every status change.
func (s *Session) OnStatus(fn func(entity.SessionStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onStatus = append(s.onStatus, fn)
}

// Connect opens the session. It is a no-op while connecting or connected.
// A failed attempt is returned as a TransportError and a reconnect is
// scheduled regardless.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.status == entity.SessionConnecting || s.status == entity.SessionConnected {
		s.mu.Unlock()

		return nil
	}
	s.manual = false
	s.stopPendingLocked()
	s.epoch++
	epoch := s.epoch
	listeners := s.setStatusLocked(entity.SessionConnecting)
	s.mu.Unlock()

	s.notify(listeners, entity.SessionConnecting)

	return s.dial(ctx, epoch)
}

// Disconnect closes the session and cancels any pending reconnect. Events
// sent afterwards are dropped.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.manual = true
	s.stopPendingLocked()
	s.epoch++
	conn := s.conn
	s.conn = nil
	s.identity = nil
	s.attempt = 0
	s.backoff.Reset()
	var listeners []func(entity.SessionStatus)
	if s.status != entity.SessionDisconnected {
		listeners = s.setStatusLocked(entity.SessionDisconnected)
	}
	s.mu.Unlock()

	if conn != nil {
		deadline := time.Now().Add(s.opts.WriteWait)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client disconnect")
		_ = conn.ws.WriteControl(websocket.CloseMessage, msg, deadline)
		conn.close()
	}

	s.notify(listeners, entity.SessionDisconnected)
}

// Send queues an event for the hub. It returns false, dropping the event,
// when the session is not connected.
func (s *Session) Send(event string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to encode outbound event", slog.String("event", event), slog.Any("error", err))

		return false
	}
	frame, err := json.Marshal(service.Envelope{Event: event, Data: data})
	if err != nil {
		s.logger.Error("Failed to encode envelope", slog.String("event", event), slog.Any("error", err))

		return false
	}

	s.mu.Lock()
	conn := s.conn
	connected := s.status == entity.SessionConnected
	s.mu.Unlock()

	if !connected || conn == nil {
		s.logger.Debug("Dropping event while disconnected", slog.String("event", event))

		return false
	}

	select {
	case conn.send <- frame:
		return true
	case <-conn.done:
	default:
		s.logger.Warn("Send buffer full, dropping event", slog.String("event", event))
	}

	return false
}

func (s *Session) dial(ctx context.Context, epoch uint64) error {
	header := http.Header{}
	if s.opts.Token != "" {
		header.Set("Authorization", "Bearer "+s.opts.Token)
	}

	dialCtx := ctx
	if s.opts.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, s.opts.DialTimeout)
		defer cancel()
	}

	ws, resp, err := s.dialer.DialContext(dialCtx, s.opts.URL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		transportErr := &domainerrors.TransportError{Op: "dial", Err: err}
		if resp != nil {
			transportErr.Err = errors.Wrapf(err, "handshake status %d", resp.StatusCode)
		}
		s.logger.Warn("Failed to connect", slog.String("url", s.opts.URL), slog.Any("error", transportErr))
		s.fail(epoch, entity.SessionError)

		return transportErr
	}

	conn := &connection{
		ws:   ws,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.manual || s.epoch != epoch {
		s.mu.Unlock()
		conn.close()

		return nil
	}
	s.conn = conn
	s.attempt = 0
	s.backoff.Reset()
	listeners := s.setStatusLocked(entity.SessionConnected)
	hooks := append([]func(){}, s.onConnect...)
	s.mu.Unlock()

	s.logger.Info("Connected", slog.String("url", s.opts.URL))

	go s.writePump(conn)
	go s.readPump(conn, epoch)

	s.notify(listeners, entity.SessionConnected)
	for _, hook := range hooks {
		s.safely("connect hook", hook)
	}

	return nil
}

// fail moves the session to status and schedules a reconnect, unless the
// session was disconnected or superseded in the meantime.
func (s *Session) fail(epoch uint64, status entity.SessionStatus) {
	s.mu.Lock()
	if s.manual || s.epoch != epoch {
		s.mu.Unlock()

		return
	}
	s.conn = nil
	s.identity = nil
	listeners := s.setStatusLocked(status)
	s.attempt++
	delay := s.backoff.NextBackOff()
	s.epoch++
	next := s.epoch
	s.pending = s.clock.AfterFunc(delay, func() { s.reconnect(next) })
	attempt := s.attempt
	s.mu.Unlock()

	s.logger.Info("Reconnect scheduled", slog.Int("attempt", attempt), slog.Duration("delay", delay))
	s.notify(listeners, status)
}

func (s *Session) reconnect(epoch uint64) {
	s.mu.Lock()
	if s.manual || s.epoch != epoch {
		s.mu.Unlock()

		return
	}
	s.pending = nil
	listeners := s.setStatusLocked(entity.SessionConnecting)
	s.mu.Unlock()

	s.notify(listeners, entity.SessionConnecting)
	_ = s.dial(context.Background(), epoch)
}

// terminate ends the session without reconnecting.
func (s *Session) terminate(epoch uint64, code int, text string) {
	s.mu.Lock()
	if s.manual || s.epoch != epoch {
		s.mu.Unlock()

		return
	}
	s.manual = true
	s.conn = nil
	s.identity = nil
	listeners := s.setStatusLocked(entity.SessionDisconnected)
	s.mu.Unlock()

	s.logger.Warn("Hub closed the session", slog.Int("code", code), slog.String("reason", text))
	s.notify(listeners, entity.SessionDisconnected)
}

func (s *Session) readPump(conn *connection, epoch uint64) {
	defer conn.close()

	conn.ws.SetReadLimit(maxMessageSize)
	_ = conn.ws.SetReadDeadline(time.Now().Add(s.opts.PongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(s.opts.PongWait))
	})

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && serverTerminated(closeErr.Code) {
				s.terminate(epoch, closeErr.Code, closeErr.Text)

				return
			}
			s.logger.Warn("Connection lost", slog.Any("error", &domainerrors.TransportError{Op: "read", Err: err}))
			s.fail(epoch, entity.SessionDisconnected)

			return
		}
		_ = conn.ws.SetReadDeadline(time.Now().Add(s.opts.PongWait))

		s.dispatch(data)
	}
}

func (s *Session) writePump(conn *connection) {
	ticker := time.NewTicker(s.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		conn.close()
	}()

	for {
		select {
		case <-conn.done:
			return
		case frame := <-conn.send:
			_ = conn.ws.SetWriteDeadline(time.Now().Add(s.opts.WriteWait))
			if err := conn.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Warn("Write failed", slog.Any("error", &domainerrors.TransportError{Op: "write", Err: err}))

				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(s.opts.WriteWait)
			if err := conn.ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.Warn("Ping failed", slog.Any("error", &domainerrors.TransportError{Op: "ping", Err: err}))

				return
			}
		}
	}
}

func (s *Session) dispatch(data []byte) {
	var env service.Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Event == "" {
		s.logger.Warn("Discarding malformed frame", slog.Int("size", len(data)), slog.Any("error", err))

		return
	}

	s.mu.Lock()
	handlers := append([]service.EventHandler{}, s.handlers[env.Event]...)
	s.mu.Unlock()

	if len(handlers) == 0 {
		s.logger.Debug("No handler for event", slog.String("event", env.Event))

		return
	}

	for _, handler := range handlers {
		s.safely(env.Event, func() { handler(env.Data) })
	}
}

func (s *Session) handleWelcome(payload json.RawMessage) {
	var welcome service.ConnectedPayload
	if err := json.Unmarshal(payload, &welcome); err != nil {
		s.logger.Warn("Malformed welcome", slog.Any("error", err))

		return
	}

	s.mu.Lock()
	s.identity = &entity.Identity{UserID: welcome.UserID, Role: entity.Role(welcome.UserRole)}
	s.mu.Unlock()

	s.logger.Info("Hub acknowledged session", slog.String("user_id", welcome.UserID), slog.String("role", welcome.UserRole))
}

// safely runs fn, logging instead of propagating a panic.
func (s *Session) safely(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Handler panicked", slog.String("handler", name), slog.Any("panic", r))
		}
	}()

	fn()
}

func (s *Session) stopPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Session) setStatusLocked(status entity.SessionStatus) []func(entity.SessionStatus) {
	s.status = status

	return append([]func(entity.SessionStatus){}, s.onStatus...)
}

func (s *Session) notify(listeners []func(entity.SessionStatus), status entity.SessionStatus) {
	for _, fn := range listeners {
		s.safely("status listener", func() { fn(status) })
	}
}

// serverTerminated reports whether a close code means the hub ended the
// session deliberately, as opposed to going away or a network failure.
func serverTerminated(code int) bool {
	switch {
	case code == websocket.CloseNormalClosure, code == websocket.ClosePolicyViolation:
		return true
	case code >= 4000 && code <= 4999:
		return true
	default:
		return false
	}
}
