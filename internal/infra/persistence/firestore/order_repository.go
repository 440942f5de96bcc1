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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	coll   *firestore.CollectionRef
	logger *slog.Logger
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{coll: client.Collection(constants.CollectionOrders), logger: logger}
}

func toOrder(id string, doc *model.OrderDocument) *entity.Order {
	doc.ID = id

	return doc.ToOrder()
}

// Create persists a new order and assigns its ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ref, _, err := repo.coll.Add(ctx, model.FromOrder(order))
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to create order")
	}

	order.ID = ref.ID

	return nil
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := repo.coll.Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find order")
	}

	var doc model.OrderDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to decode order")
	}

	return toOrder(snap.Ref.ID, &doc), nil
}

// FindByUser retrieves every order filed under a user key.
func (repo *orderRepository) FindByUser(ctx context.Context, userKey string) ([]*entity.Order, error) {
	orders, err := readAll(ctx, repo.logger, repo.coll.Where("userId", "==", userKey).OrderBy("createdAt", firestore.Asc), toOrder)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query orders")
	}

	return orders, nil
}

// FindAll retrieves the whole collection.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := readAll(ctx, repo.logger, repo.coll.OrderBy("createdAt", firestore.Asc), toOrder)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query orders")
	}

	return orders, nil
}

// Update applies a partial update. Firestore rejects updates of missing documents.
func (repo *orderRepository) Update(ctx context.Context, id string, patch entity.OrderPatch) error {
	fields := model.OrderPatchFields(patch)
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := repo.coll.Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewStoreError(err, "failed to update order")
	}

	return nil
}

// Subscribe listens to the whole collection.
func (repo *orderRepository) Subscribe(ctx context.Context, onSnapshot func([]*entity.Order)) error {
	return listen(ctx, repo.logger, repo.coll.OrderBy("createdAt", firestore.Asc), toOrder, onSnapshot)
}
