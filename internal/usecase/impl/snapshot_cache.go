package impl

import (
	"context"
	"log/slog"
	"sync"

	"canteen/internal/domain/analytics"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
)

// SnapshotCache mirrors the orders and menu collections through store subscriptions.
// Each push replaces the whole cached slice. Until the first push of a collection
// arrives, Snapshot reads it directly from the store.
type SnapshotCache struct {
	orders  repository.OrderRepository
	menu    repository.MenuRepository
	metrics service.MetricsRecorder
	clock   service.Clock
	logger  *slog.Logger

	mu          sync.RWMutex
	orderSnap   []*entity.Order
	menuSnap    []*entity.MenuItem
	ordersReady bool
	menuReady   bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ usecase.SnapshotSource = (*SnapshotCache)(nil)

// NewSnapshotCache is the constructor for SnapshotCache.
func NewSnapshotCache(
	orders repository.OrderRepository,
	menu repository.MenuRepository,
	metrics service.MetricsRecorder,
	clock service.Clock,
	logger *slog.Logger,
) *SnapshotCache {
	return &SnapshotCache{
		orders:  orders,
		menu:    menu,
		metrics: metrics,
		clock:   clock,
		logger:  logger,
	}
}

// Start subscribes to both collections until Stop is called.
func (c *SnapshotCache) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		err := c.orders.Subscribe(ctx, func(orders []*entity.Order) {
			c.mu.Lock()
			c.orderSnap, c.ordersReady = orders, true
			c.mu.Unlock()
			c.metrics.SnapshotUpdated(c.clock.Now())
		})
		c.subscriptionEnded("orders", err)
	}()
	go func() {
		defer c.wg.Done()
		err := c.menu.Subscribe(ctx, func(items []*entity.MenuItem) {
			c.mu.Lock()
			c.menuSnap, c.menuReady = items, true
			c.mu.Unlock()
			c.metrics.SnapshotUpdated(c.clock.Now())
		})
		c.subscriptionEnded("menu", err)
	}()
}

// Stop ends both subscriptions and waits for them to return.
func (c *SnapshotCache) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
}

// Snapshot returns the latest orders and menu.
func (c *SnapshotCache) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	c.mu.RLock()
	snap := analytics.Snapshot{Orders: c.orderSnap, Menu: c.menuSnap}
	ordersReady, menuReady := c.ordersReady, c.menuReady
	c.mu.RUnlock()

	var err error
	if !ordersReady {
		if snap.Orders, err = c.orders.FindAll(ctx); err != nil {
			return analytics.Snapshot{}, errors.Wrap(err, "failed to read orders")
		}
	}
	if !menuReady {
		if snap.Menu, err = c.menu.FindAll(ctx); err != nil {
			return analytics.Snapshot{}, errors.Wrap(err, "failed to read menu")
		}
	}

	return snap, nil
}

// subscriptionEnded marks the collection stale so reads fall back to the store.
func (c *SnapshotCache) subscriptionEnded(collection string, err error) {
	c.mu.Lock()
	switch collection {
	case "orders":
		c.ordersReady = false
	case "menu":
		c.menuReady = false
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("Snapshot subscription ended",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}
