package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "canteen/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		wantCode int
		contains []string
		excludes []string
	}{
		{
			name:     "denial keeps details",
			err:      errors.WithStack(domainerrors.ErrWrongWindow.WithDetails("item is served at Lunch")),
			wantCode: http.StatusConflict,
			contains: []string{"WRONG_WINDOW", "item is served at Lunch"},
		},
		{
			name:     "store failure hides details",
			err:      domainerrors.NewStoreError(errors.New("deadline exceeded"), "write order"),
			wantCode: http.StatusBadGateway,
			contains: []string{"STORE_FAILURE"},
			excludes: []string{"deadline exceeded"},
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantCode: http.StatusMethodNotAllowed,
			contains: []string{"HTTP_ERROR", "method not allowed"},
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			contains: []string{"INTERNAL_ERROR"},
			excludes: []string{"boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)
			rec := httptest.NewRecorder()

			m.HandleHTTPError(tt.err, echo.New().NewContext(req, rec))

			assert.Equal(t, tt.wantCode, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}
