package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canteen/internal/domain/admission"
	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	mockRepo "canteen/internal/mocks/repository"
	mockService "canteen/internal/mocks/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// lunchTime is 13:00, inside Lunch whose successor is Snacks.
var lunchTime = time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC)

var (
	employee = entity.Actor{Role: entity.RoleEmployee, UserKey: "E100", Principal: entity.Principal{ID: "uid-e"}}
	vendor   = entity.Actor{Role: entity.RoleVendor, UserKey: "V1", Principal: entity.Principal{ID: "uid-v"}}
	admin    = entity.Actor{Role: entity.RoleAdmin, UserKey: "admin@example.com", Principal: entity.Principal{ID: "uid-a"}}
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orders    *mockRepo.MockOrderRepository
	menu      *mockRepo.MockMenuRepository
	publisher *mockService.MockEventPublisher
	pickup    *mockService.MockPickupCodeService
	metrics   *mockService.MockMetricsRecorder
}

func fixedClock(t *testing.T, now time.Time) *mockService.MockClock {
	clock := mockService.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()

	return clock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestOrderService(t *testing.T, now time.Time) orderServiceFixtures {
	f := orderServiceFixtures{
		orders:    mockRepo.NewMockOrderRepository(t),
		menu:      mockRepo.NewMockMenuRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		pickup:    mockService.NewMockPickupCodeService(t),
		metrics:   mockService.NewMockMetricsRecorder(t),
	}

	f.service = NewOrderService(OrderServiceParams{
		Orders:     f.orders,
		Menu:       f.menu,
		Controller: admission.NewController(calendar.Default(time.UTC)),
		Clock:      fixedClock(t, now),
		Publisher:  f.publisher,
		Pickup:     f.pickup,
		Metrics:    f.metrics,
		Logger:     discardLogger(),
	})

	return f
}

func lunchItem(category string, available any) *entity.MenuItem {
	return &entity.MenuItem{ID: "item-1", Name: "Paneer Wrap", Price: 80, Category: category, Available: available}
}

func TestOrderService_Book_NowStartsPreparing(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.menu.EXPECT().FindByID(ctx, "item-1").Return(lunchItem("Lunch", true), nil)
	f.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = "order-1" }).
		Return(nil)
	f.metrics.EXPECT().OrderBooked(entity.BookingModeNow, entity.WindowLunch).Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventCreated && e.OrderID == "order-1" && e.Status == "Preparing"
	})).Return(nil)

	order, err := f.service.Book(ctx, employee, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModeNow})

	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "E100", order.UserID)
	assert.Equal(t, "2024-01-10", order.Date)
	assert.Equal(t, 80.0, order.Price)
}

func TestOrderService_Book_PrebookNextWindow(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.menu.EXPECT().FindByID(ctx, "item-1").Return(lunchItem("Snacks", "Yes"), nil)
	f.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.metrics.EXPECT().OrderBooked(entity.BookingModePrebook, entity.WindowSnacks).Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := f.service.Book(ctx, employee, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModePrebook})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPrebooked, order.Status)
}

func TestOrderService_Book_Denials(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		item    *entity.MenuItem
		mode    entity.BookingMode
		wantErr error
	}{
		{"outside any window", time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC), lunchItem("Lunch", true), entity.BookingModeNow, domainerrors.ErrOutsideWindow},
		{"prebook outside any window", time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC), lunchItem("Breakfast", true), entity.BookingModePrebook, domainerrors.ErrOutsideWindow},
		{"wrong window", lunchTime, lunchItem("Dinner", true), entity.BookingModeNow, domainerrors.ErrWrongWindow},
		{"prebook current window", lunchTime, lunchItem("Lunch", true), entity.BookingModePrebook, domainerrors.ErrWrongWindow},
		{"unavailable", lunchTime, lunchItem("Lunch", "no"), entity.BookingModeNow, domainerrors.ErrItemUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, tt.now)
			ctx := context.Background()

			f.menu.EXPECT().FindByID(ctx, "item-1").Return(tt.item, nil)
			f.metrics.EXPECT().Denied("book", domainerrors.Kind(tt.wantErr)).Return()

			order, err := f.service.Book(ctx, employee, &usecase.BookOrderInput{ItemID: "item-1", Mode: tt.mode})

			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, domainerrors.IsDenial(err))
		})
	}
}

func TestOrderService_Book_NoLinkedIdentity(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.menu.EXPECT().FindByID(ctx, "item-1").Return(lunchItem("Lunch", true), nil)
	f.metrics.EXPECT().Denied("book", "NO_LINKED_IDENTITY").Return()

	_, err := f.service.Book(ctx, entity.Actor{Role: entity.RoleEmployee}, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModeNow})

	assert.True(t, errors.Is(err, domainerrors.ErrNoLinkedIdentity))
}

func TestOrderService_Book_VendorRefused(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	f.metrics.EXPECT().Denied("book", "ROLE_NOT_PERMITTED").Return()

	_, err := f.service.Book(context.Background(), vendor, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModeNow})

	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotPermitted))
}

func TestOrderService_Book_UnknownItem(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.menu.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrMenuItemNotFound)

	_, err := f.service.Book(ctx, employee, &usecase.BookOrderInput{ItemID: "missing", Mode: entity.BookingModeNow})

	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))
}

func TestOrderService_Book_StoreFailure(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.menu.EXPECT().FindByID(ctx, "item-1").Return(lunchItem("Lunch", true), nil)
	f.orders.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.NewStoreError(errors.New("unavailable"), "failed to create order"))

	_, err := f.service.Book(ctx, employee, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModeNow})

	require.Error(t, err)
	assert.Equal(t, "STORE_FAILURE", domainerrors.Kind(err))
	assert.False(t, domainerrors.IsDenial(err))
}

func TestOrderService_Book_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.menu.EXPECT().FindByID(ctx, "item-1").Return(lunchItem("Lunch", true), nil)
	f.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.metrics.EXPECT().OrderBooked(mock.Anything, mock.Anything).Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := f.service.Book(ctx, employee, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModeNow})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func storedOrder(status entity.OrderStatus, payment entity.PaymentStatus) *entity.Order {
	created := lunchTime.Add(-30 * time.Minute)

	return &entity.Order{
		ID:            "order-1",
		ItemID:        "item-1",
		Name:          "Paneer Wrap",
		Price:         80,
		UserID:        "E100",
		Status:        status,
		PaymentStatus: payment,
		Date:          "2024-01-10",
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestOrderService_Cancel_RefundsPaid(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusPrebooked, entity.PaymentPaid), nil)
	f.orders.EXPECT().Update(ctx, "order-1", mock.MatchedBy(func(p entity.OrderPatch) bool {
		return *p.Status == entity.OrderStatusCancelled && *p.PaymentStatus == entity.PaymentRefunded && p.UpdatedAt.Equal(lunchTime)
	})).Return(nil)
	f.metrics.EXPECT().Transitioned(entity.OrderStatusCancelled).Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := f.service.Cancel(ctx, employee, "order-1")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.Equal(t, entity.PaymentRefunded, order.PaymentStatus)
	assert.Equal(t, lunchTime, order.UpdatedAt)
}

func TestOrderService_Cancel_Denials(t *testing.T) {
	tests := []struct {
		name    string
		actor   entity.Actor
		status  entity.OrderStatus
		wantErr error
	}{
		{"not owner", entity.Actor{Role: entity.RoleEmployee, UserKey: "E200"}, entity.OrderStatusPrebooked, domainerrors.ErrNotOrderOwner},
		{"already preparing", employee, entity.OrderStatusPreparing, domainerrors.ErrInvalidTransition},
		{"vendor cannot cancel", vendor, entity.OrderStatusPrebooked, domainerrors.ErrRoleNotPermitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, lunchTime)
			ctx := context.Background()

			f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(tt.status, entity.PaymentPending), nil)
			f.metrics.EXPECT().Denied("cancel", domainerrors.Kind(tt.wantErr)).Return()

			_, err := f.service.Cancel(ctx, tt.actor, "order-1")

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_Advance(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusPreparing, entity.PaymentPending), nil)
	f.orders.EXPECT().Update(ctx, "order-1", mock.MatchedBy(func(p entity.OrderPatch) bool {
		return *p.Status == entity.OrderStatusReady && p.PaymentStatus == nil
	})).Return(nil)
	f.metrics.EXPECT().Transitioned(entity.OrderStatusReady).Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventTransition && e.Status == "Ready" && e.UserID == "E100"
	})).Return(nil)

	order, err := f.service.Advance(ctx, vendor, "order-1", &usecase.AdvanceOrderInput{Status: entity.OrderStatusReady})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, order.Status)
}

func TestOrderService_Advance_BackwardsIsDenied(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusReady, entity.PaymentPending), nil)
	f.metrics.EXPECT().Denied("advance", "INVALID_TRANSITION").Return()

	_, err := f.service.Advance(ctx, vendor, "order-1", &usecase.AdvanceOrderInput{Status: entity.OrderStatusPreparing})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOrderService_Advance_NotFound(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.Advance(ctx, vendor, "missing", &usecase.AdvanceOrderInput{Status: entity.OrderStatusReady})

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Pay(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusPreparing, entity.PaymentPending), nil)
	f.orders.EXPECT().Update(ctx, "order-1", mock.MatchedBy(func(p entity.OrderPatch) bool {
		return p.Status == nil && *p.PaymentStatus == entity.PaymentPaid
	})).Return(nil)
	f.metrics.EXPECT().PaymentRecorded().Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventPayment && e.PaymentStatus == "Paid"
	})).Return(nil)

	order, err := f.service.Pay(ctx, employee, "order-1")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
}

func TestOrderService_Pay_Denials(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.OrderStatus
		payment entity.PaymentStatus
		wantErr error
	}{
		{"cancelled", entity.OrderStatusCancelled, entity.PaymentPending, domainerrors.ErrOrderCancelled},
		{"already paid", entity.OrderStatusReady, entity.PaymentPaid, domainerrors.ErrAlreadyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, lunchTime)
			ctx := context.Background()

			f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(tt.status, tt.payment), nil)
			f.metrics.EXPECT().Denied("pay", domainerrors.Kind(tt.wantErr)).Return()

			_, err := f.service.Pay(ctx, employee, "order-1")

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	all := []*entity.Order{storedOrder(entity.OrderStatusPrebooked, entity.PaymentPending)}

	t.Run("employee sees own orders", func(t *testing.T) {
		f := createTestOrderService(t, lunchTime)
		f.orders.EXPECT().FindByUser(ctx, "E100").Return(all, nil)

		orders, err := f.service.List(ctx, employee)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("vendor sees every order", func(t *testing.T) {
		f := createTestOrderService(t, lunchTime)
		f.orders.EXPECT().FindAll(ctx).Return(all, nil)

		orders, err := f.service.List(ctx, vendor)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("employee without key", func(t *testing.T) {
		f := createTestOrderService(t, lunchTime)

		_, err := f.service.List(ctx, entity.Actor{Role: entity.RoleEmployee})
		assert.True(t, errors.Is(err, domainerrors.ErrNoLinkedIdentity))
	})
}

func TestOrderService_Get_HidesOtherEmployeesOrders(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusPrebooked, entity.PaymentPending), nil)

	_, err := f.service.Get(ctx, entity.Actor{Role: entity.RoleEmployee, UserKey: "E200"}, "order-1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotOrderOwner))
}

func TestOrderService_PickupQR(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusReady, entity.PaymentPaid), nil)
	f.pickup.EXPECT().GeneratePickupQR("order-1").Return([]byte("png"), nil)

	png, err := f.service.PickupQR(ctx, employee, "order-1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_PickupQR_CancelledOrder(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusCancelled, entity.PaymentPending), nil)
	f.metrics.EXPECT().Denied("pickup_qr", "INVALID_TRANSITION").Return()

	_, err := f.service.PickupQR(ctx, employee, "order-1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOrderService_Pickup_CompletesOrder(t *testing.T) {
	f := createTestOrderService(t, lunchTime)
	ctx := context.Background()

	f.pickup.EXPECT().ParsePickupQR(`{"order_id":"order-1","type":"pickup"}`).Return("order-1", nil)
	f.orders.EXPECT().FindByID(ctx, "order-1").Return(storedOrder(entity.OrderStatusReady, entity.PaymentPaid), nil)
	f.orders.EXPECT().Update(ctx, "order-1", mock.Anything).Return(nil)
	f.metrics.EXPECT().Transitioned(entity.OrderStatusCompleted).Return()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := f.service.Pickup(ctx, vendor, &usecase.PickupInput{Code: `{"order_id":"order-1","type":"pickup"}`})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestOrderService_Pickup_BadCode(t *testing.T) {
	f := createTestOrderService(t, lunchTime)

	f.pickup.EXPECT().ParsePickupQR("garbage").Return("", errors.New("failed to unmarshal QR code data"))

	_, err := f.service.Pickup(context.Background(), vendor, &usecase.PickupInput{Code: "garbage"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
