package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPrebooked OrderStatus = "Prebooked"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPrebooked,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPrebooked, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsActive reports whether the order still occupies the kitchen queue.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPrebooked || s == OrderStatusPreparing || s == OrderStatusReady
}

// IsServed reports whether the kitchen finished the order (Ready or Completed).
func (s OrderStatus) IsServed() bool {
	return s == OrderStatusReady || s == OrderStatusCompleted
}

// PaymentStatus tracks the payment label of an order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

// BookingMode selects between booking into the current window and pre-booking the next one.
type BookingMode string

const (
	BookingModeNow     BookingMode = "now"
	BookingModePrebook BookingMode = "prebook"
)

// DateLayout is the layout of Order.Date, a calendar day in the canteen's local time.
const DateLayout = "2006-01-02"

// Order is the central entity. Name and Price are snapshotted from the menu item
// at creation and never re-read; Date is fixed at creation.
type Order struct {
	ID            string        `json:"id"`
	ItemID        string        `json:"item_id,omitempty"` // Empty when the menu item is unknown or deleted.
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	UserID        string        `json:"user_id"` // Soft key, see ResolveUserKey.
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Date          string        `json:"date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Duration is the time between creation and the last update.
func (o *Order) Duration() time.Duration {
	return o.UpdatedAt.Sub(o.CreatedAt)
}

// DurationMinutes is Duration expressed in fractional minutes.
func (o *Order) DurationMinutes() float64 {
	return o.Duration().Minutes()
}

// OrderPatch is a partial update to an order document. Nil fields are left untouched.
type OrderPatch struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	UpdatedAt     time.Time
}

// Apply writes the patch onto o.
func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		o.PaymentStatus = *p.PaymentStatus
	}
	o.UpdatedAt = p.UpdatedAt
}
