package service

import (
	"time"

	"canteen/internal/domain/entity"
)

// MetricsRecorder counts order-flow events.
type MetricsRecorder interface {
	OrderBooked(mode entity.BookingMode, window entity.MealWindow)
	Denied(operation, kind string)
	Transitioned(status entity.OrderStatus)
	PaymentRecorded()
	Simulated()
	SnapshotUpdated(at time.Time)
}
