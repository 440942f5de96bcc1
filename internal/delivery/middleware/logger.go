package middleware

import (
	"log/slog"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// quietPaths are polled by the platform and never logged on success.
//
//nolint:gochecknoglobals
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// LoggerMiddleware logs one line per request. Server errors are always logged;
// everything else only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	var httpErr *echo.HTTPError
	if !c.Response().Committed && errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	level := slog.LevelInfo
	switch {
	case status >= 500 || (err != nil && status < 400):
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	if level < slog.LevelError && (!m.debug || (quietPaths[req.URL.Path] && status < 400)) {
		return
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if userKey := deliverycontext.GetUserKey(c); userKey != "" {
		fields = append(fields, slog.String("user_key", userKey))
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
