package memory

import (
	"context"
	"sort"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gocloud.dev/gcerrors"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	coll *collection
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(store *Store) repository.MenuRepository {
	return &menuRepository{coll: store.menu}
}

// Create persists a new item and assigns its ID.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	doc := model.FromMenuItem(item)
	doc.ID = uuid.NewString()

	if err := repo.coll.docs.Create(ctx, doc); err != nil {
		return domainerrors.NewStoreError(err, "failed to create menu item")
	}

	item.ID = doc.ID
	repo.coll.changes.broadcast()

	return nil
}

// FindByID retrieves a single item.
func (repo *menuRepository) FindByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	doc := &model.MenuItemDocument{ID: id}
	if err := repo.coll.docs.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find menu item")
	}

	return doc.ToMenuItem(), nil
}

// FindAll retrieves the whole catalog, oldest item first.
func (repo *menuRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := collect(ctx, repo.coll.docs.Query(), (*model.MenuItemDocument).ToMenuItem)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query menu")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

// Update overwrites an existing item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	if err := repo.coll.docs.Replace(ctx, model.FromMenuItem(item)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrMenuItemNotFound
		}

		return domainerrors.NewStoreError(err, "failed to update menu item")
	}

	repo.coll.changes.broadcast()

	return nil
}

// Delete removes an item.
func (repo *menuRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := repo.coll.docs.Delete(ctx, &model.MenuItemDocument{ID: id}); err != nil {
		return domainerrors.NewStoreError(err, "failed to delete menu item")
	}

	repo.coll.changes.broadcast()

	return nil
}

// Subscribe pushes the whole catalog on start and after every write.
func (repo *menuRepository) Subscribe(ctx context.Context, onSnapshot func([]*entity.MenuItem)) error {
	return watch(ctx, repo.coll.changes, repo.FindAll, onSnapshot)
}
