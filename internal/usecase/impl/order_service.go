// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/admission"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/orderstate"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Orders     repository.OrderRepository
	Menu       repository.MenuRepository
	Controller *admission.Controller
	Clock      service.Clock
	Publisher  service.EventPublisher
	Pickup     service.PickupCodeService
	Metrics    service.MetricsRecorder
	Logger     *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	ctl       *admission.Controller
	clock     service.Clock
	publisher service.EventPublisher
	pickup    service.PickupCodeService
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders:    params.Orders,
		menu:      params.Menu,
		ctl:       params.Controller,
		clock:     params.Clock,
		publisher: params.Publisher,
		pickup:    params.Pickup,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// Book admits a booking for the calling employee and creates the order.
func (srv *orderService) Book(ctx context.Context, actor entity.Actor, input *usecase.BookOrderInput) (*entity.Order, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if actor.Role != entity.RoleEmployee {
		return nil, srv.deny(ctx, "book", domainerrors.ErrRoleNotPermitted.WithDetails("only employees book orders"))
	}

	item, err := srv.menu.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	now := srv.clock.Now()
	if err := srv.ctl.Admit(item, input.Mode, now); err != nil {
		return nil, srv.deny(ctx, "book", err)
	}

	order, err := orderstate.NewOrder(item, input.Mode, actor.UserKey, now, srv.ctl.Calendar())
	if err != nil {
		return nil, srv.deny(ctx, "book", err)
	}

	if err := srv.orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	window := srv.ctl.Calendar().WindowAt(now)
	if input.Mode == entity.BookingModePrebook {
		window = srv.ctl.Calendar().Next(window)
	}
	srv.metrics.OrderBooked(input.Mode, window)

	logger.Info("Order booked",
		slog.String("order_id", order.ID),
		slog.String("item_id", item.ID),
		slog.String("mode", string(input.Mode)),
		slog.String("status", string(order.Status)),
	)

	srv.publish(ctx, service.OrderEventCreated, order)

	return order, nil
}

// List returns the caller's orders; vendors and admins see every order.
func (srv *orderService) List(ctx context.Context, actor entity.Actor) ([]*entity.Order, error) {
	var (
		orders []*entity.Order
		err    error
	)

	switch actor.Role {
	case entity.RoleVendor, entity.RoleAdmin:
		orders, err = srv.orders.FindAll(ctx)
	default:
		if actor.UserKey == "" {
			return nil, domainerrors.ErrNoLinkedIdentity
		}
		orders, err = srv.orders.FindByUser(ctx, actor.UserKey)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns one order visible to the caller.
func (srv *orderService) Get(ctx context.Context, actor entity.Actor, orderID string) (*entity.Order, error) {
	order, err := srv.find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role == entity.RoleEmployee && order.UserID != actor.UserKey {
		return nil, domainerrors.ErrNotOrderOwner
	}

	return order, nil
}

// Cancel cancels a Prebooked order on behalf of its owner.
func (srv *orderService) Cancel(ctx context.Context, actor entity.Actor, orderID string) (*entity.Order, error) {
	return srv.mutate(ctx, "cancel", orderID, service.OrderEventTransition, func(order *entity.Order, now time.Time) (entity.OrderPatch, error) {
		return orderstate.Cancel(order, actor, now)
	})
}

// Advance moves an order forward on behalf of a vendor.
func (srv *orderService) Advance(ctx context.Context, actor entity.Actor, orderID string, input *usecase.AdvanceOrderInput) (*entity.Order, error) {
	return srv.mutate(ctx, "advance", orderID, service.OrderEventTransition, func(order *entity.Order, now time.Time) (entity.OrderPatch, error) {
		return orderstate.Advance(order, input.Status, actor, now)
	})
}

// Pay marks an order paid.
func (srv *orderService) Pay(ctx context.Context, actor entity.Actor, orderID string) (*entity.Order, error) {
	return srv.mutate(ctx, "pay", orderID, service.OrderEventPayment, func(order *entity.Order, now time.Time) (entity.OrderPatch, error) {
		return orderstate.Pay(order, actor, now)
	})
}

// PickupQR renders the pickup QR code of an order for its owner.
func (srv *orderService) PickupQR(ctx context.Context, actor entity.Actor, orderID string) ([]byte, error) {
	order, err := srv.find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role != entity.RoleEmployee || order.UserID != actor.UserKey {
		return nil, srv.deny(ctx, "pickup_qr", domainerrors.ErrNotOrderOwner)
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, srv.deny(ctx, "pickup_qr", domainerrors.ErrInvalidTransition.WithDetails("order is cancelled"))
	}

	png, err := srv.pickup.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	return png, nil
}

// Pickup completes the order named by a scanned pickup code.
func (srv *orderService) Pickup(ctx context.Context, actor entity.Actor, input *usecase.PickupInput) (*entity.Order, error) {
	orderID, err := srv.pickup.ParsePickupQR(input.Code)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return srv.Advance(ctx, actor, orderID, &usecase.AdvanceOrderInput{Status: entity.OrderStatusCompleted})
}

// mutate reads the order, asks decide for a patch and writes it. There is no
// compare-and-set between the read and the write.
func (srv *orderService) mutate(
	ctx context.Context,
	operation string,
	orderID string,
	eventType string,
	decide func(order *entity.Order, now time.Time) (entity.OrderPatch, error),
) (*entity.Order, error) {
	order, err := srv.find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	patch, err := decide(order, srv.clock.Now())
	if err != nil {
		return nil, srv.deny(ctx, operation, err)
	}

	if err := srv.orders.Update(ctx, order.ID, patch); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrapf(err, "failed to %s order", operation)
	}

	patch.Apply(order)

	if patch.Status != nil {
		srv.metrics.Transitioned(*patch.Status)
	}
	if eventType == service.OrderEventPayment {
		srv.metrics.PaymentRecorded()
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Order updated",
		slog.String("operation", operation),
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
		slog.String("payment_status", string(order.PaymentStatus)),
	)

	srv.publish(ctx, eventType, order)

	return order, nil
}

func (srv *orderService) find(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// deny records a refused operation. Denials are expected outcomes and never logged as errors.
func (srv *orderService) deny(ctx context.Context, operation string, err error) error {
	kind := domainerrors.Kind(err)
	srv.metrics.Denied(operation, kind)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Order operation denied",
		slog.String("operation", operation),
		slog.String("kind", kind),
	)

	return err
}

// publish emits an order event. The write already succeeded, so a publish failure is only logged.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Name:          order.Name,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		OccurredAt:    order.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
