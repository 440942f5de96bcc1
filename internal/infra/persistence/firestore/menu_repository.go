package firestore

import (
	"context"
	"log/slog"

	"canteen/internal/domain/constants"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	coll   *firestore.CollectionRef
	logger *slog.Logger
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(client *firestore.Client, logger *slog.Logger) repository.MenuRepository {
	return &menuRepository{coll: client.Collection(constants.CollectionMenu), logger: logger}
}

func toMenuItem(id string, doc *model.MenuItemDocument) *entity.MenuItem {
	doc.ID = id

	return doc.ToMenuItem()
}

// Create persists a new item and assigns its ID.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	ref, _, err := repo.coll.Add(ctx, model.FromMenuItem(item))
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to create menu item")
	}

	item.ID = ref.ID

	return nil
}

// FindByID retrieves a single item.
func (repo *menuRepository) FindByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	snap, err := repo.coll.Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find menu item")
	}

	var doc model.MenuItemDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to decode menu item")
	}

	return toMenuItem(snap.Ref.ID, &doc), nil
}

// FindAll retrieves the whole catalog.
func (repo *menuRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := readAll(ctx, repo.logger, repo.coll.Query, toMenuItem)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query menu")
	}

	return items, nil
}

// Update overwrites an existing item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	ref := repo.coll.Doc(item.ID)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrMenuItemNotFound
		}

		return domainerrors.NewStoreError(err, "failed to find menu item")
	}

	if _, err := ref.Set(ctx, model.FromMenuItem(item)); err != nil {
		return domainerrors.NewStoreError(err, "failed to update menu item")
	}

	return nil
}

// Delete removes an item.
func (repo *menuRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.coll.Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrMenuItemNotFound
		}

		return domainerrors.NewStoreError(err, "failed to delete menu item")
	}

	return nil
}

// Subscribe listens to the whole catalog.
func (repo *menuRepository) Subscribe(ctx context.Context, onSnapshot func([]*entity.MenuItem)) error {
	return listen(ctx, repo.logger, repo.coll.Query, toMenuItem, onSnapshot)
}
