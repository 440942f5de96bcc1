// Package memory implements the repositories on gocloud's in-process document store.
// Every successful write wakes the subscribers of its collection, which then re-read
// the whole collection, mirroring the push-snapshot behavior of the hosted store.
package memory

import (
	"context"
	"io"
	"sync"

	"canteen/internal/errors"

	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
)

const keyField = "id"

// Store owns one in-memory collection per repository.
type Store struct {
	orders   *collection
	menu     *collection
	profiles *collection
}

type collection struct {
	docs    *docstore.Collection
	changes *notifier
}

// NewStore opens empty orders, menu and profile collections.
func NewStore() (*Store, error) {
	open := func() (*collection, error) {
		docs, err := memdocstore.OpenCollection(keyField, nil)
		if err != nil {
			return nil, errors.Wrap(err, "open memdocstore collection")
		}

		return &collection{docs: docs, changes: newNotifier()}, nil
	}

	orders, err := open()
	if err != nil {
		return nil, err
	}
	menu, err := open()
	if err != nil {
		return nil, err
	}
	profiles, err := open()
	if err != nil {
		return nil, err
	}

	return &Store{orders: orders, menu: menu, profiles: profiles}, nil
}

// Close releases the collections.
func (s *Store) Close() error {
	return errors.Join(s.orders.docs.Close(), s.menu.docs.Close(), s.profiles.docs.Close())
}

// notifier wakes subscribers after a write. Wake-ups coalesce: a subscriber that is
// still busy with the previous snapshot sees a single pending signal.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan struct{})}
}

func (n *notifier) subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// watch delivers load() to onSnapshot now and after every change until ctx is done.
func watch[T any](ctx context.Context, n *notifier, load func(context.Context) ([]T, error), onSnapshot func([]T)) error {
	changes, unsubscribe := n.subscribe()
	defer unsubscribe()

	for {
		snapshot, err := load(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}
		onSnapshot(snapshot)

		select {
		case <-ctx.Done():
			return nil
		case <-changes:
		}
	}
}

// collect drains a query into converted entities.
func collect[D any, E any](ctx context.Context, q *docstore.Query, convert func(*D) *E) ([]*E, error) {
	iter := q.Get(ctx)
	defer iter.Stop()

	var out []*E
	for {
		var doc D
		err := iter.Next(ctx, &doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		out = append(out, convert(&doc))
	}

	return out, nil
}
