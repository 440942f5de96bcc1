package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLogged(t *testing.T, debug bool, path string, h echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
	_ = m.Handle(h)(c)

	return buf.String()
}

func TestLoggerMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	boom := func(c echo.Context) error { return c.NoContent(http.StatusBadGateway) }

	t.Run("success is quiet outside debug", func(t *testing.T) {
		assert.Empty(t, runLogged(t, false, "/api/v1/menu", ok))
	})

	t.Run("server errors always logged", func(t *testing.T) {
		out := runLogged(t, false, "/api/v1/menu", boom)
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "status=502")
	})

	t.Run("unwritten http error uses its code", func(t *testing.T) {
		out := runLogged(t, true, "/api/v1/nope", func(echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound)
		})
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "status=404")
	})

	t.Run("plain error is a server error", func(t *testing.T) {
		out := runLogged(t, false, "/api/v1/menu", func(echo.Context) error {
			return errors.New("store offline")
		})
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("health checks skipped in debug", func(t *testing.T) {
		assert.Empty(t, runLogged(t, true, "/health", ok))
	})

	t.Run("debug names the caller", func(t *testing.T) {
		out := runLogged(t, true, "/api/v1/orders", func(c echo.Context) error {
			deliverycontext.BindCaller(c, "E-42", "employee")

			return c.NoContent(http.StatusOK)
		})
		require.NotEmpty(t, out)
		assert.Contains(t, out, "user_key=E-42")
	})
}
