// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the document store.
package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order document does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations on the orders collection.
type OrderRepository interface {
	// Create persists a new order and assigns its ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByUser retrieves every order filed under a user key.
	FindByUser(ctx context.Context, userKey string) ([]*entity.Order, error)

	// FindAll retrieves the whole collection.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// Update applies a partial update. There is no compare-and-set: the last write wins.
	Update(ctx context.Context, id string, patch entity.OrderPatch) error

	// Subscribe calls onSnapshot with the full collection, first with the current
	// contents and then after every change, until ctx is done.
	Subscribe(ctx context.Context, onSnapshot func([]*entity.Order)) error
}
