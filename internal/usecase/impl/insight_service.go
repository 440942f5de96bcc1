package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/admission"
	"canteen/internal/domain/analytics"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/service"
	"canteen/internal/domain/simulator"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InsightServiceParams holds dependencies for insightService, injected by Fx.
type InsightServiceParams struct {
	fx.In

	Snapshots  usecase.SnapshotSource
	Controller *admission.Controller
	Config     analytics.Config
	Clock      service.Clock
	Metrics    service.MetricsRecorder
	Logger     *slog.Logger
	Rand       *rand.Rand `optional:"true"`
}

// insightService implements the InsightUsecase interface.
type insightService struct {
	snapshots usecase.SnapshotSource
	ctl       *admission.Controller
	cfg       analytics.Config
	clock     service.Clock
	metrics   service.MetricsRecorder
	logger    *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewInsightService is the constructor for insightService. Without an injected
// random source the simulator is seeded from the clock on every run.
func NewInsightService(params InsightServiceParams) usecase.InsightUsecase {
	return &insightService{
		snapshots: params.Snapshots,
		ctl:       params.Controller,
		cfg:       params.Config,
		clock:     params.Clock,
		metrics:   params.Metrics,
		logger:    params.Logger,
		rng:       params.Rand,
	}
}

// View derives the caller's view from the latest snapshot.
func (srv *insightService) View(ctx context.Context, actor entity.Actor) (*analytics.View, error) {
	snap, err := srv.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load snapshot")
	}

	view := analytics.DeriveView(snap, actor.UserKey, srv.clock.Now(), srv.ctl, srv.cfg).ForRole(actor.Role)

	return &view, nil
}

// AdminInsights summarizes the full order set.
func (srv *insightService) AdminInsights(ctx context.Context, actor entity.Actor) (*usecase.AdminInsights, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	snap, err := srv.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load snapshot")
	}

	now := srv.clock.Now()
	cal := srv.ctl.Calendar()

	insights := &usecase.AdminInsights{
		TotalOrders:   len(snap.Orders),
		StatusCounts:  make(map[entity.OrderStatus]int, len(entity.OrderStatuses)),
		PaymentCounts: make(map[entity.PaymentStatus]int, 3),
		Efficiency:    analytics.Efficiency(snap.Orders, now, cal, srv.cfg),
		SLA:           analytics.SLA(snap.Orders, now, cal, srv.cfg),
		Heatmap:       analytics.Demand(snap.Orders, now, cal, srv.cfg),
		Forecast:      analytics.Forecast(snap.Orders, now, cal, srv.cfg),
	}
	for _, status := range entity.OrderStatuses {
		insights.StatusCounts[status] = 0
	}
	for _, o := range snap.Orders {
		insights.StatusCounts[o.Status]++
		insights.PaymentCounts[o.PaymentStatus]++
	}

	return insights, nil
}

// Simulate runs the queue simulator.
func (srv *insightService) Simulate(ctx context.Context, actor entity.Actor, params *simulator.Params) (*simulator.Result, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	result, err := srv.run(params)
	if err != nil {
		return nil, err
	}

	srv.metrics.Simulated()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Queue simulated",
		slog.Int("duration_minutes", params.DurationMinutes),
		slog.Int("peak_queue", result.PeakQueue),
	)

	return &result, nil
}

// run shares an injected random source between callers, so draws are serialized.
func (srv *insightService) run(params *simulator.Params) (simulator.Result, error) {
	if srv.rng == nil {
		return simulator.New(nil).Run(*params)
	}

	srv.rngMu.Lock()
	defer srv.rngMu.Unlock()

	return simulator.New(srv.rng).Run(*params)
}
