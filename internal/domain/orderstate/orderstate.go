// Package orderstate is the order lifecycle state machine.
//
// Every function here is pure: it validates a requested change against the
// current order and returns the patch to write, or a denial. A denial never
// comes with a partial patch.
package orderstate

import (
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
)

// rule is one row of the transition table.
type rule struct {
	from entity.OrderStatus
	to   entity.OrderStatus
	by   entity.Role
}

var table = []rule{
	{from: entity.OrderStatusPrebooked, to: entity.OrderStatusPreparing, by: entity.RoleVendor},
	{from: entity.OrderStatusPrebooked, to: entity.OrderStatusReady, by: entity.RoleVendor},
	{from: entity.OrderStatusPrebooked, to: entity.OrderStatusCompleted, by: entity.RoleVendor},
	{from: entity.OrderStatusPrebooked, to: entity.OrderStatusCancelled, by: entity.RoleEmployee},
	{from: entity.OrderStatusPreparing, to: entity.OrderStatusReady, by: entity.RoleVendor},
	{from: entity.OrderStatusPreparing, to: entity.OrderStatusCompleted, by: entity.RoleVendor},
	{from: entity.OrderStatusReady, to: entity.OrderStatusCompleted, by: entity.RoleVendor},
}

// Allowed returns the role permitted to move an order from one status to another,
// and false when the pair is not in the table.
func Allowed(from, to entity.OrderStatus) (entity.Role, bool) {
	for _, r := range table {
		if r.from == from && r.to == to {
			return r.by, true
		}
	}

	return "", false
}

// Targets lists the statuses reachable from from, in table order.
func Targets(from entity.OrderStatus) []entity.OrderStatus {
	var out []entity.OrderStatus
	for _, r := range table {
		if r.from == from {
			out = append(out, r.to)
		}
	}

	return out
}

// NewOrder builds the document for an admitted booking. Booking into the current
// window starts the order as Preparing; pre-booking starts it as Prebooked.
func NewOrder(item *entity.MenuItem, mode entity.BookingMode, userKey string, now time.Time, cal *calendar.Calendar) (*entity.Order, error) {
	if userKey == "" {
		return nil, domainerrors.ErrNoLinkedIdentity
	}

	status := entity.OrderStatusPreparing
	if mode == entity.BookingModePrebook {
		status = entity.OrderStatusPrebooked
	}

	return &entity.Order{
		ItemID:        item.ID,
		Name:          item.Name,
		Price:         item.Price,
		UserID:        userKey,
		Status:        status,
		PaymentStatus: entity.PaymentPending,
		Date:          cal.Date(now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Transition validates moving order to status to on behalf of actor.
func Transition(order *entity.Order, to entity.OrderStatus, actor entity.Actor, now time.Time) (entity.OrderPatch, error) {
	role, ok := Allowed(order.Status, to)
	if !ok {
		return entity.OrderPatch{}, domainerrors.ErrInvalidTransition.WithDetails(string(order.Status) + " -> " + string(to))
	}
	if actor.Role != role {
		return entity.OrderPatch{}, domainerrors.ErrRoleNotPermitted.WithDetails("requires " + role.String())
	}

	patch := entity.OrderPatch{
		Status:    &to,
		UpdatedAt: now,
	}

	if to == entity.OrderStatusCancelled {
		if order.UserID != actor.UserKey {
			return entity.OrderPatch{}, domainerrors.ErrNotOrderOwner
		}
		if order.PaymentStatus == entity.PaymentPaid {
			refunded := entity.PaymentRefunded
			patch.PaymentStatus = &refunded
		}
	}

	return patch, nil
}

// Cancel is Transition to Cancelled.
func Cancel(order *entity.Order, actor entity.Actor, now time.Time) (entity.OrderPatch, error) {
	return Transition(order, entity.OrderStatusCancelled, actor, now)
}

// Advance is a vendor transition to any later status other than Cancelled.
func Advance(order *entity.Order, to entity.OrderStatus, actor entity.Actor, now time.Time) (entity.OrderPatch, error) {
	if to == entity.OrderStatusCancelled {
		return entity.OrderPatch{}, domainerrors.ErrInvalidTransition.WithDetails("cancel through the owner")
	}

	return Transition(order, to, actor, now)
}

// Pay marks an order paid. The owning employee pays online; a vendor may record a
// payment taken at the counter. Cancelled orders and already-paid orders are refused.
func Pay(order *entity.Order, actor entity.Actor, now time.Time) (entity.OrderPatch, error) {
	switch actor.Role {
	case entity.RoleEmployee:
		if order.UserID != actor.UserKey {
			return entity.OrderPatch{}, domainerrors.ErrNotOrderOwner
		}
	case entity.RoleVendor:
	default:
		return entity.OrderPatch{}, domainerrors.ErrRoleNotPermitted
	}

	if order.Status == entity.OrderStatusCancelled {
		return entity.OrderPatch{}, domainerrors.ErrOrderCancelled
	}
	if order.PaymentStatus == entity.PaymentPaid {
		return entity.OrderPatch{}, domainerrors.ErrAlreadyPaid
	}

	paid := entity.PaymentPaid

	return entity.OrderPatch{
		PaymentStatus: &paid,
		UpdatedAt:     now,
	}, nil
}
