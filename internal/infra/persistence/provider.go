// Package persistence selects the repository driver named in configuration.
package persistence

import (
	"context"
	"log/slog"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/repository"
	firebaseapp "canteen/internal/infra/firebase"
	"canteen/internal/infra/persistence/firestore"
	"canteen/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.AppProvider
}

// Repositories is the set of repositories produced by the selected driver.
type Repositories struct {
	fx.Out

	Orders   repository.OrderRepository
	Menu     repository.MenuRepository
	Profiles repository.ProfileRepository
}

// New opens the configured store and registers its shutdown hook.
func New(params Params) (Repositories, error) {
	driver := constants.StoreDriverMemory
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case constants.StoreDriverMemory:
		store, err := memory.NewStore()
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using in-memory document store")

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return store.Close()
			},
		})

		return Repositories{
			Orders:   memory.NewOrderRepository(store),
			Menu:     memory.NewMenuRepository(store),
			Profiles: memory.NewProfileRepository(store),
		}, nil

	case constants.StoreDriverFirestore:
		client, err := firestore.NewClient(params.Ctx, params.Firebase)
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using Firestore document store")

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})

		return Repositories{
			Orders:   firestore.NewOrderRepository(client, params.Logger),
			Menu:     firestore.NewMenuRepository(client, params.Logger),
			Profiles: firestore.NewProfileRepository(client, params.Logger),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
