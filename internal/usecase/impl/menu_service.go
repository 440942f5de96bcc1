package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/admission"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const menuImagePrefix = "menu"

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MenuServiceParams holds dependencies for menuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	Menu       repository.MenuRepository
	Controller *admission.Controller
	Clock      service.Clock
	Blobs      service.BlobStore
	Logger     *slog.Logger
}

// menuService implements the MenuUsecase interface.
type menuService struct {
	menu   repository.MenuRepository
	ctl    *admission.Controller
	clock  service.Clock
	blobs  service.BlobStore
	logger *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		menu:   params.Menu,
		ctl:    params.Controller,
		clock:  params.Clock,
		blobs:  params.Blobs,
		logger: params.Logger,
	}
}

// List returns the whole catalog.
func (srv *menuService) List(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := srv.menu.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return items, nil
}

// Eligibility decides both booking modes for every item at the current instant.
func (srv *menuService) Eligibility(ctx context.Context) (*admission.Eligibility, error) {
	items, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	eligibility := srv.ctl.Evaluate(items, srv.clock.Now())

	return &eligibility, nil
}

// Create adds an item.
func (srv *menuService) Create(ctx context.Context, actor entity.Actor, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	item := &entity.MenuItem{CreatedAt: now}
	applyMenuInput(item, input, now)

	if err := srv.menu.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Menu item created",
		slog.String("item_id", item.ID),
		slog.String("category", item.Category),
	)

	return item, nil
}

// Update replaces the editable fields of an item.
func (srv *menuService) Update(ctx context.Context, actor entity.Actor, itemID string, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}

	item, err := srv.find(ctx, itemID)
	if err != nil {
		return nil, err
	}

	applyMenuInput(item, input, srv.clock.Now())

	if err := srv.save(ctx, item); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Menu item updated", slog.String("item_id", item.ID))

	return item, nil
}

// Delete removes an item.
func (srv *menuService) Delete(ctx context.Context, actor entity.Actor, itemID string) error {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return err
	}

	if err := srv.menu.Delete(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to delete menu item")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Menu item deleted", slog.String("item_id", itemID))

	return nil
}

// UploadImage stores an image and sets its URL on the item.
func (srv *menuService) UploadImage(ctx context.Context, actor entity.Actor, itemID string, upload *usecase.ImageUpload) (*entity.MenuItem, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}

	ext, ok := imageExtensions[upload.ContentType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported image type " + upload.ContentType)
	}
	if len(upload.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}

	item, err := srv.find(ctx, itemID)
	if err != nil {
		return nil, err
	}

	key := path.Join(menuImagePrefix, item.ID, uuid.NewString()+ext)
	url, err := srv.blobs.Upload(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to upload image")
	}

	item.Image = url
	item.UpdatedAt = srv.clock.Now()

	if err := srv.save(ctx, item); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Menu image uploaded",
		slog.String("item_id", item.ID),
		slog.String("key", key),
	)

	return item, nil
}

// Image reads a menu image back from the blob store. Only keys under the menu
// image prefix are served.
func (srv *menuService) Image(ctx context.Context, key string) ([]byte, string, error) {
	key = path.Clean(strings.TrimPrefix(key, "/"))
	if !strings.HasPrefix(key, menuImagePrefix+"/") {
		return nil, "", domainerrors.ErrImageNotFound
	}

	data, contentType, err := srv.blobs.Read(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, "", domainerrors.ErrImageNotFound
		}

		return nil, "", domainerrors.NewStoreError(err, "failed to read image")
	}

	return data, contentType, nil
}

func (srv *menuService) find(ctx context.Context, itemID string) (*entity.MenuItem, error) {
	item, err := srv.menu.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return item, nil
}

func (srv *menuService) save(ctx context.Context, item *entity.MenuItem) error {
	if err := srv.menu.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to update menu item")
	}

	return nil
}

// applyMenuInput copies the editable fields. A missing or unknown category becomes "Other".
func applyMenuInput(item *entity.MenuItem, input *usecase.MenuItemInput, now time.Time) {
	item.Name = strings.TrimSpace(input.Name)
	item.Price = input.Price
	item.Category = entity.NormalizeCategory(input.Category)
	item.Available = input.Available
	if input.Image != "" {
		item.Image = input.Image
	}
	item.UpdatedAt = now
}
