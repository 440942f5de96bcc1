package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// BookOrderInput represents a booking request
type BookOrderInput struct {
	ItemID string             `json:"item_id" validate:"required"`
	Mode   entity.BookingMode `json:"mode" validate:"required,oneof=now prebook"`
}

// AdvanceOrderInput represents a vendor status change
type AdvanceOrderInput struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=Preparing Ready Completed"`
}

// PickupInput carries the scanned content of a pickup QR code
type PickupInput struct {
	Code string `json:"code" validate:"required"`
}

// OrderUsecase defines the order lifecycle use cases. Every guard is evaluated
// against a freshly read order document.
type OrderUsecase interface {
	// Book admits a booking for the calling employee and creates the order
	Book(ctx context.Context, actor entity.Actor, input *BookOrderInput) (*entity.Order, error)

	// List returns the caller's orders; vendors and admins see every order
	List(ctx context.Context, actor entity.Actor) ([]*entity.Order, error)

	// Get returns one order visible to the caller
	Get(ctx context.Context, actor entity.Actor, orderID string) (*entity.Order, error)

	// Cancel cancels a Prebooked order on behalf of its owner
	Cancel(ctx context.Context, actor entity.Actor, orderID string) (*entity.Order, error)

	// Advance moves an order forward on behalf of a vendor
	Advance(ctx context.Context, actor entity.Actor, orderID string, input *AdvanceOrderInput) (*entity.Order, error)

	// Pay marks an order paid
	Pay(ctx context.Context, actor entity.Actor, orderID string) (*entity.Order, error)

	// PickupQR renders the pickup QR code of an order
	PickupQR(ctx context.Context, actor entity.Actor, orderID string) ([]byte, error)

	// Pickup completes the order named by a scanned pickup code
	Pickup(ctx context.Context, actor entity.Actor, input *PickupInput) (*entity.Order, error)
}
