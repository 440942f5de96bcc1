package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "canteen-notifier"
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return cfg
}

func TestNotifierServer_Health(t *testing.T) {
	e := newEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"canteen-notifier"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNotifierServer_RejectsOversizedPush(t *testing.T) {
	e := newEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST(PushPath, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
