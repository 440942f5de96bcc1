// Package metrics exposes order-flow counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"canteen/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg         *prometheus.Registry
	Bookings    *prometheus.CounterVec
	Denials     *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	Payments    prometheus.Counter
	Simulations prometheus.Counter
	SnapshotAge prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	bookings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_orders_booked_total",
		Help: "Orders admitted, by booking mode and meal window.",
	}, []string{"mode", "window"})
	denials := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_denials_total",
		Help: "Rejected operations, by operation and error kind.",
	}, []string{"operation", "kind"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_order_transitions_total",
		Help: "Applied status transitions, by target status.",
	}, []string{"status"})
	payments := prometheus.NewCounter(prometheus.CounterOpts{Name: "canteen_payments_recorded_total"})
	simulations := prometheus.NewCounter(prometheus.CounterOpts{Name: "canteen_simulations_total"})
	snapshotAge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "canteen_snapshot_last_update_timestamp_seconds"})

	r.MustRegister(bookings, denials, transitions, payments, simulations, snapshotAge)

	return &Registry{
		reg:         r,
		Bookings:    bookings,
		Denials:     denials,
		Transitions: transitions,
		Payments:    payments,
		Simulations: simulations,
		SnapshotAge: snapshotAge,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) OrderBooked(mode entity.BookingMode, window entity.MealWindow) {
	r.Bookings.WithLabelValues(string(mode), string(window)).Inc()
}

func (r *Registry) Denied(operation, kind string) {
	r.Denials.WithLabelValues(operation, kind).Inc()
}

func (r *Registry) Transitioned(status entity.OrderStatus) {
	r.Transitions.WithLabelValues(string(status)).Inc()
}

func (r *Registry) PaymentRecorded() { r.Payments.Inc() }

func (r *Registry) Simulated() { r.Simulations.Inc() }

func (r *Registry) SnapshotUpdated(at time.Time) {
	r.SnapshotAge.Set(float64(at.Unix()))
}
