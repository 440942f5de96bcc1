package memory

import (
	"context"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestOrderRepository_CreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	order := &entity.Order{
		ItemID:        "m1",
		Name:          "Thali",
		Price:         80,
		UserID:        "E-1",
		Status:        entity.OrderStatusPrebooked,
		PaymentStatus: entity.PaymentPending,
		Date:          "2024-01-10",
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NotEmpty(t, order.ID)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thali", found.Name)
	assert.Equal(t, entity.OrderStatusPrebooked, found.Status)

	ready := entity.OrderStatusReady
	later := created.Add(10 * time.Minute)
	require.NoError(t, repo.Update(ctx, order.ID, entity.OrderPatch{Status: &ready, UpdatedAt: later}))

	found, err = repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, found.Status)
	assert.Equal(t, entity.PaymentPending, found.PaymentStatus)
	assert.True(t, found.UpdatedAt.Equal(later))
	assert.Equal(t, 80.0, found.Price)
}

func TestOrderRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	err = repo.Update(ctx, "missing", entity.OrderPatch{UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_FindByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestStore(t))

	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	for i, user := range []string{"E-1", "E-2", "E-1"} {
		require.NoError(t, repo.Create(ctx, &entity.Order{
			Name:      "Item",
			UserID:    user,
			Status:    entity.OrderStatusPreparing,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	mine, err := repo.FindByUser(ctx, "E-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].CreatedAt.Before(mine[1].CreatedAt))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderRepository_SubscribePushesSnapshots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo := NewOrderRepository(newTestStore(t))

	snapshots := make(chan int, 10)
	done := make(chan error, 1)
	go func() {
		done <- repo.Subscribe(ctx, func(orders []*entity.Order) {
			snapshots <- len(orders)
		})
	}()

	assert.Equal(t, 0, <-snapshots)

	require.NoError(t, repo.Create(context.Background(), &entity.Order{Name: "Tea", UserID: "E-1", CreatedAt: time.Now()}))

	select {
	case n := <-snapshots:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after write")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestMenuRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(newTestStore(t))

	item := &entity.MenuItem{Name: "Dosa", Price: 30, Category: "Breakfast", Available: "Yes", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, found.IsAvailable())

	found.Price = 35
	found.Available = false
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 35.0, found.Price)
	assert.False(t, found.IsAvailable())

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), repository.ErrMenuItemNotFound)
}

func TestProfileRepository_BindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestStore(t))

	profile := &entity.UserProfile{Role: entity.RoleEmployee, EmployeeID: "E-7", Email: "Asha@Corp.example"}
	require.NoError(t, repo.Create(ctx, profile))

	found, err := repo.FindByEmail(ctx, "asha@corp.example")
	require.NoError(t, err)
	assert.False(t, found.IsBound())

	_, err = repo.FindByUID(ctx, "uid-1")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	require.NoError(t, repo.BindUID(ctx, found.ID, "uid-1"))

	bound, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "E-7", bound.EmployeeID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
