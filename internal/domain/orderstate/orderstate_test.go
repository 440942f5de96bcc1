package orderstate

import (
	"testing"
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	now     = created.Add(7 * time.Minute)

	owner  = entity.Actor{Role: entity.RoleEmployee, UserKey: "E-1"}
	other  = entity.Actor{Role: entity.RoleEmployee, UserKey: "E-2"}
	vendor = entity.Actor{Role: entity.RoleVendor, UserKey: "V-1"}
	admin  = entity.Actor{Role: entity.RoleAdmin, UserKey: "A-1"}
)

func order(status entity.OrderStatus, payment entity.PaymentStatus) *entity.Order {
	return &entity.Order{
		ID:            "o-1",
		Name:          "Thali",
		Price:         80,
		UserID:        "E-1",
		Status:        status,
		PaymentStatus: payment,
		Date:          "2024-01-10",
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func actorFor(role entity.Role) entity.Actor {
	if role == entity.RoleEmployee {
		return owner
	}

	return vendor
}

func TestTransition_TableRowsSucceed(t *testing.T) {
	for _, r := range table {
		t.Run(string(r.from)+"->"+string(r.to), func(t *testing.T) {
			o := order(r.from, entity.PaymentPending)

			patch, err := Transition(o, r.to, actorFor(r.by), now)
			require.NoError(t, err)
			require.NotNil(t, patch.Status)
			assert.Equal(t, r.to, *patch.Status)
			assert.Equal(t, now, patch.UpdatedAt)
		})
	}
}

func TestTransition_PairsOutsideTableAreRejected(t *testing.T) {
	for _, from := range entity.OrderStatuses {
		for _, to := range entity.OrderStatuses {
			if _, ok := Allowed(from, to); ok {
				continue
			}

			for _, actor := range []entity.Actor{owner, vendor, admin} {
				o := order(from, entity.PaymentPending)

				patch, err := Transition(o, to, actor, now)
				require.Error(t, err, "%s -> %s", from, to)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
				assert.Nil(t, patch.Status)
				assert.Equal(t, from, o.Status)
			}
		}
	}
}

func TestTransition_TerminalStatesHaveNoTargets(t *testing.T) {
	assert.Empty(t, Targets(entity.OrderStatusCompleted))
	assert.Empty(t, Targets(entity.OrderStatusCancelled))
	assert.Equal(t, []entity.OrderStatus{entity.OrderStatusCompleted}, Targets(entity.OrderStatusReady))
}

func TestTransition_WrongRole(t *testing.T) {
	_, err := Transition(order(entity.OrderStatusPrebooked, entity.PaymentPending), entity.OrderStatusPreparing, owner, now)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotPermitted)

	_, err = Transition(order(entity.OrderStatusPrebooked, entity.PaymentPending), entity.OrderStatusCancelled, vendor, now)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotPermitted)

	_, err = Transition(order(entity.OrderStatusPreparing, entity.PaymentPending), entity.OrderStatusReady, admin, now)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotPermitted)
}

func TestCancel_RefundsPaidOrders(t *testing.T) {
	patch, err := Cancel(order(entity.OrderStatusPrebooked, entity.PaymentPaid), owner, now)
	require.NoError(t, err)
	require.NotNil(t, patch.PaymentStatus)
	assert.Equal(t, entity.PaymentRefunded, *patch.PaymentStatus)

	o := order(entity.OrderStatusPrebooked, entity.PaymentPending)
	patch, err = Cancel(o, owner, now)
	require.NoError(t, err)
	patch.Apply(o)
	assert.Equal(t, entity.OrderStatusCancelled, o.Status)
	assert.Equal(t, entity.PaymentPending, o.PaymentStatus)
	assert.Equal(t, now, o.UpdatedAt)
}

func TestCancel_OnlyOwnerWhilePrebooked(t *testing.T) {
	_, err := Cancel(order(entity.OrderStatusPrebooked, entity.PaymentPending), other, now)
	assert.ErrorIs(t, err, domainerrors.ErrNotOrderOwner)

	_, err = Cancel(order(entity.OrderStatusPreparing, entity.PaymentPending), owner, now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestAdvance_RefusesCancel(t *testing.T) {
	_, err := Advance(order(entity.OrderStatusPrebooked, entity.PaymentPending), entity.OrderStatusCancelled, vendor, now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPay(t *testing.T) {
	patch, err := Pay(order(entity.OrderStatusPreparing, entity.PaymentPending), owner, now)
	require.NoError(t, err)
	assert.Nil(t, patch.Status)
	require.NotNil(t, patch.PaymentStatus)
	assert.Equal(t, entity.PaymentPaid, *patch.PaymentStatus)

	_, err = Pay(order(entity.OrderStatusReady, entity.PaymentPending), vendor, now)
	assert.NoError(t, err)

	_, err = Pay(order(entity.OrderStatusCancelled, entity.PaymentPending), owner, now)
	assert.ErrorIs(t, err, domainerrors.ErrOrderCancelled)

	_, err = Pay(order(entity.OrderStatusReady, entity.PaymentPaid), owner, now)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPaid)
	assert.NotEqual(t, domainerrors.Kind(domainerrors.ErrOrderCancelled), domainerrors.Kind(err))

	_, err = Pay(order(entity.OrderStatusReady, entity.PaymentPending), other, now)
	assert.ErrorIs(t, err, domainerrors.ErrNotOrderOwner)

	_, err = Pay(order(entity.OrderStatusReady, entity.PaymentPending), admin, now)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotPermitted)
}

func TestNewOrder(t *testing.T) {
	cal := calendar.Default(time.UTC)
	item := &entity.MenuItem{ID: "m-1", Name: "Thali", Price: 80, Category: "Lunch", Available: true}
	at := time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC)

	o, err := NewOrder(item, entity.BookingModeNow, "E-1", at, cal)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, o.Status)
	assert.Equal(t, entity.PaymentPending, o.PaymentStatus)
	assert.Equal(t, "2024-01-10", o.Date)
	assert.Equal(t, "m-1", o.ItemID)
	assert.Equal(t, 80.0, o.Price)
	assert.Equal(t, at, o.CreatedAt)

	o, err = NewOrder(item, entity.BookingModePrebook, "E-1", at, cal)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPrebooked, o.Status)

	_, err = NewOrder(item, entity.BookingModeNow, "", at, cal)
	assert.ErrorIs(t, err, domainerrors.ErrNoLinkedIdentity)
}
