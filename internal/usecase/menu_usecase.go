package usecase

import (
	"context"

	"canteen/internal/domain/admission"
	"canteen/internal/domain/entity"
)

// MenuItemInput represents the editable fields of a menu item
type MenuItemInput struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Price     float64 `json:"price" validate:"gte=0"`
	Category  string  `json:"category" validate:"max=40"`
	Available any     `json:"available"`
	Image     string  `json:"image,omitempty" validate:"omitempty,max=2048"`
}

// ImageUpload is an uploaded menu image
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MenuUsecase defines the menu catalog use cases
type MenuUsecase interface {
	// List returns the whole catalog
	List(ctx context.Context) ([]*entity.MenuItem, error)

	// Eligibility decides both booking modes for every item at the current instant
	Eligibility(ctx context.Context) (*admission.Eligibility, error)

	// Create adds an item (vendor)
	Create(ctx context.Context, actor entity.Actor, input *MenuItemInput) (*entity.MenuItem, error)

	// Update replaces the editable fields of an item (vendor)
	Update(ctx context.Context, actor entity.Actor, itemID string, input *MenuItemInput) (*entity.MenuItem, error)

	// Delete removes an item (vendor). Orders keep their snapshotted name and price.
	Delete(ctx context.Context, actor entity.Actor, itemID string) error

	// Image returns a stored menu image and its content type
	Image(ctx context.Context, key string) ([]byte, string, error)

	// UploadImage stores an image in the blob store and sets it on the item (vendor)
	UploadImage(ctx context.Context, actor entity.Actor, itemID string, upload *ImageUpload) (*entity.MenuItem, error)
}
