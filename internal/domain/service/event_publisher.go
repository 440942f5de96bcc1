package service

import (
	"context"
)

// Order event types
const (
	OrderEventCreated    = "order.created"
	OrderEventTransition = "order.transition"
	OrderEventPayment    = "order.payment"
)

// OrderEvent describes a change to an order for asynchronous consumers
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	Type          string `json:"type"`
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	OccurredAt    string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
