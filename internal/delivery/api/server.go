package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"nearby/config"
	"nearby/internal/delivery"
	apimiddleware "nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/router"
	"nearby/internal/delivery/api/router/handler"
	"nearby/internal/delivery/api/validator"
	"nearby/internal/delivery/middleware"
	workerhandler "nearby/internal/delivery/worker/handler"
	"nearby/internal/domain/lifecycle"
	"nearby/internal/errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer creates the hub HTTP server serving the REST API, the metrics
// scrape, the presence feed push endpoint and the websocket endpoint.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	useMiddleware(e, params.Cfg, params.Logger)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// useMiddleware installs the middleware chain. Order matters: recovery
// first, then request ids so the access log can carry them.
func useMiddleware(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.AccessLog(logger, cfg))

	// Browsers may call the REST API; agents and Pub/Sub never send CORS preflights.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return isUpgrade(c) || c.Path() == router.PresencePushPath
		},
	}))

	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit:   cfg.HTTP.MaxRequestBodySize,
		Skipper: isUpgrade,
	}))
}

func isUpgrade(c echo.Context) bool {
	return websocket.IsWebSocketUpgrade(c.Request())
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting hub HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down hub HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// Module provides the hub HTTP FX module
var Module = fx.Options(
	fx.Provide(
		apimiddleware.NewAuthMiddleware,
		handler.NewHealthHandler,
		handler.NewPreferenceHandler,
		handler.NewVendorHandler,
		workerhandler.NewPresenceHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
