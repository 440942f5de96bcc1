package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CountersAndHandler(t *testing.T) {
	r := NewRegistry()

	r.OrderBooked(entity.BookingModeNow, entity.WindowLunch)
	r.Denied("book", "OUTSIDE_WINDOW")
	r.Denied("book", "OUTSIDE_WINDOW")
	r.PaymentRecorded()
	r.Transitioned(entity.OrderStatusReady)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Bookings.WithLabelValues("now", "Lunch")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Denials.WithLabelValues("book", "OUTSIDE_WINDOW")))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `canteen_orders_booked_total{mode="now",window="Lunch"} 1`)
	assert.Contains(t, string(body), "canteen_payments_recorded_total 1")
	assert.Contains(t, string(body), `canteen_order_transitions_total{status="Ready"} 1`)
}
