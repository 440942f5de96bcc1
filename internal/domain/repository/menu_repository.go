package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrMenuItemNotFound is returned when a menu document does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepository defines the operations on the menu collection.
type MenuRepository interface {
	// Create persists a new item and assigns its ID.
	Create(ctx context.Context, item *entity.MenuItem) error

	// FindByID retrieves a single item.
	FindByID(ctx context.Context, id string) (*entity.MenuItem, error)

	// FindAll retrieves the whole catalog.
	FindAll(ctx context.Context) ([]*entity.MenuItem, error)

	// Update overwrites an existing item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes an item. Orders keep their snapshotted name and price.
	Delete(ctx context.Context, id string) error

	// Subscribe calls onSnapshot with the full catalog on start and after every change, until ctx is done.
	Subscribe(ctx context.Context, onSnapshot func([]*entity.MenuItem)) error
}
