package middleware

import (
	"log/slog"

	"nearby/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// AccessLog returns the slog-echo access logger. Health and metrics probes are
// skipped unless debug logging is enabled.
func AccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	logCfg := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}
	if !cfg.Env.Debug {
		logCfg.Filters = []slogecho.Filter{
			slogecho.IgnorePath("/health", "/metrics"),
		}
	}

	return slogecho.NewWithConfig(logger.With(slog.String("component", "http")), logCfg)
}

