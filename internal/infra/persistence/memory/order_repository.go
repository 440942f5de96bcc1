package memory

import (
	"context"
	"sort"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	coll *collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{coll: store.orders}
}

// Create persists a new order and assigns its ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	doc := model.FromOrder(order)
	doc.ID = uuid.NewString()

	if err := repo.coll.docs.Create(ctx, doc); err != nil {
		return domainerrors.NewStoreError(err, "failed to create order")
	}

	order.ID = doc.ID
	repo.coll.changes.broadcast()

	return nil
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	doc := &model.OrderDocument{ID: id}
	if err := repo.coll.docs.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find order")
	}

	return doc.ToOrder(), nil
}

// FindByUser retrieves every order filed under a user key.
func (repo *orderRepository) FindByUser(ctx context.Context, userKey string) ([]*entity.Order, error) {
	return repo.query(ctx, repo.coll.docs.Query().Where("userId", "=", userKey))
}

// FindAll retrieves the whole collection.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.query(ctx, repo.coll.docs.Query())
}

// Update applies a partial update.
func (repo *orderRepository) Update(ctx context.Context, id string, patch entity.OrderPatch) error {
	mods := docstore.Mods{}
	for field, value := range model.OrderPatchFields(patch) {
		mods[docstore.FieldPath(field)] = value
	}

	if err := repo.coll.docs.Update(ctx, &model.OrderDocument{ID: id}, mods); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewStoreError(err, "failed to update order")
	}

	repo.coll.changes.broadcast()

	return nil
}

// Subscribe pushes the whole collection on start and after every write.
func (repo *orderRepository) Subscribe(ctx context.Context, onSnapshot func([]*entity.Order)) error {
	return watch(ctx, repo.coll.changes, repo.FindAll, onSnapshot)
}

func (repo *orderRepository) query(ctx context.Context, q *docstore.Query) ([]*entity.Order, error) {
	orders, err := collect(ctx, q, (*model.OrderDocument).ToOrder)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query orders")
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders, nil
}
