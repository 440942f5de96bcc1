package main

import (
	"context"
	"log/slog"
	"os"

	"canteen/config"
	"canteen/internal/delivery"
	"canteen/internal/delivery/api"
	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/router/handler"
	"canteen/internal/domain/admission"
	"canteen/internal/domain/analytics"
	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/infra/auth"
	"canteen/internal/infra/blob"
	"canteen/internal/infra/clock"
	firebaseapp "canteen/internal/infra/firebase"
	logs "canteen/internal/infra/log"
	"canteen/internal/infra/metrics"
	"canteen/internal/infra/persistence"
	"canteen/internal/infra/pubsub"
	"canteen/internal/infra/qrcode"
	"canteen/internal/usecase"
	"canteen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		auth.Module,
		pubsub.Module,
		injectService(),
		injectDomain(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebaseapp.NewAppProvider,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			blob.New,
			qrcode.NewFromConfig,
			metrics.NewRegistry,
			func(r *metrics.Registry) service.MetricsRecorder { return r },
			newClock,
		),
	)
}

func injectDomain() fx.Option {
	return fx.Options(
		fx.Provide(
			newCalendar,
			admission.NewController,
			newAnalyticsConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewMenuService,
			impl.NewOrderService,
			impl.NewInsightService,
			newSnapshotSource,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewMenuHandler,
			handler.NewOrderHandler,
			handler.NewInsightHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func newClock(cfg *config.Config) (service.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return clock.New(loc), nil
}

// newCalendar builds the meal window table from configuration, falling back to
// the canonical table when none is configured.
func newCalendar(cfg *config.Config) (*calendar.Calendar, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	if len(cfg.MealWindows) == 0 {
		return calendar.Default(loc), nil
	}

	slots := make([]calendar.Slot, 0, len(cfg.MealWindows))
	for _, w := range cfg.MealWindows {
		slots = append(slots, calendar.Slot{
			Window: entity.MealWindow(w.Name),
			Start:  w.StartHour,
			End:    w.EndHour,
		})
	}

	return calendar.New(slots, loc)
}

// newAnalyticsConfig overlays the configured queue and analytics constants on the defaults.
func newAnalyticsConfig(cfg *config.Config) analytics.Config {
	out := analytics.DefaultConfig()

	if q := cfg.Queue; q != nil {
		if q.AveragePrepMinutes > 0 {
			out.AveragePrepMinutes = q.AveragePrepMinutes
		}
		if q.ParallelStations > 0 {
			out.ParallelStations = q.ParallelStations
		}
	}

	a := cfg.Analytics
	if a == nil {
		return out
	}
	if a.BaselineMinutes > 0 {
		out.BaselineMinutes = a.BaselineMinutes
	}
	if a.WastePerOrderKg > 0 {
		out.WastePerOrderKg = a.WastePerOrderKg
	}
	if a.SLAMinutes > 0 {
		out.SLAMinutes = a.SLAMinutes
	}
	if a.EfficiencyMaxMinutes > 0 {
		out.EfficiencyMaxMinutes = a.EfficiencyMaxMinutes
	}
	if a.SLAMaxMinutes > 0 {
		out.SLAMaxMinutes = a.SLAMaxMinutes
	}
	if a.TrailingDays > 0 {
		out.TrailingDays = a.TrailingDays
	}
	if a.ForecastWeeks > 0 {
		out.ForecastWeeks = a.ForecastWeeks
	}
	if w := entity.MealWindow(a.ForecastWindow); w.IsValid() {
		out.ForecastWindow = w
	}

	return out
}

type snapshotSourceParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Orders  repository.OrderRepository
	Menu    repository.MenuRepository
	Metrics service.MetricsRecorder
	Clock   service.Clock
	Logger  *slog.Logger
}

// newSnapshotSource subscribes the snapshot cache for the lifetime of the application.
func newSnapshotSource(params snapshotSourceParams) usecase.SnapshotSource {
	cache := impl.NewSnapshotCache(params.Orders, params.Menu, params.Metrics, params.Clock, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			cache.Start(params.Ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cache.Stop()

			return nil
		},
	})

	return cache
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
