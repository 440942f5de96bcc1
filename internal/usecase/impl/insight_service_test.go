package impl

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"canteen/internal/domain/admission"
	"canteen/internal/domain/analytics"
	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/simulator"
	mockService "canteen/internal/mocks/service"
	mockUsecase "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type insightServiceFixtures struct {
	service   usecase.InsightUsecase
	snapshots *mockUsecase.MockSnapshotSource
	metrics   *mockService.MockMetricsRecorder
}

func createTestInsightService(t *testing.T, rng *rand.Rand) insightServiceFixtures {
	f := insightServiceFixtures{
		snapshots: mockUsecase.NewMockSnapshotSource(t),
		metrics:   mockService.NewMockMetricsRecorder(t),
	}

	f.service = NewInsightService(InsightServiceParams{
		Snapshots:  f.snapshots,
		Controller: admission.NewController(calendar.Default(time.UTC)),
		Config:     analytics.DefaultConfig(),
		Clock:      fixedClock(t, lunchTime),
		Metrics:    f.metrics,
		Logger:     discardLogger(),
		Rand:       rng,
	})

	return f
}

func sampleSnapshot() analytics.Snapshot {
	created := lunchTime.Add(-time.Hour)

	return analytics.Snapshot{
		Menu: []*entity.MenuItem{
			{ID: "item-1", Name: "Paneer Wrap", Price: 80, Category: "Lunch", Available: true},
			{ID: "item-2", Name: "Samosa", Price: 20, Category: "Snacks", Available: "yes"},
		},
		Orders: []*entity.Order{
			{ID: "o1", ItemID: "item-1", Name: "Paneer Wrap", UserID: "E100", Status: entity.OrderStatusCompleted, PaymentStatus: entity.PaymentPaid, Date: "2024-01-10", CreatedAt: created, UpdatedAt: created.Add(10 * time.Minute)},
			{ID: "o2", ItemID: "item-1", Name: "Paneer Wrap", UserID: "E200", Status: entity.OrderStatusPreparing, PaymentStatus: entity.PaymentPending, Date: "2024-01-10", CreatedAt: created, UpdatedAt: created},
			{ID: "o3", ItemID: "item-2", Name: "Samosa", UserID: "E100", Status: entity.OrderStatusCancelled, PaymentStatus: entity.PaymentRefunded, Date: "2024-01-10", CreatedAt: created, UpdatedAt: created},
		},
	}
}

func TestInsightService_View(t *testing.T) {
	f := createTestInsightService(t, nil)
	ctx := context.Background()

	f.snapshots.EXPECT().Snapshot(ctx).Return(sampleSnapshot(), nil)

	view, err := f.service.View(ctx, employee)

	require.NoError(t, err)
	assert.Equal(t, entity.WindowLunch, view.Window)
	assert.Equal(t, entity.WindowSnacks, view.NextWindow)
	assert.Equal(t, lunchTime, view.GeneratedAt)
	assert.Len(t, view.Eligibility.Items, 2)
	assert.Nil(t, view.Efficiency)
	assert.Nil(t, view.SLA)
	assert.Nil(t, view.Heatmap)
	assert.Nil(t, view.Forecast)
}

func TestInsightService_View_AdminKeepsKitchenPanels(t *testing.T) {
	f := createTestInsightService(t, nil)
	ctx := context.Background()

	f.snapshots.EXPECT().Snapshot(ctx).Return(sampleSnapshot(), nil)

	view, err := f.service.View(ctx, admin)

	require.NoError(t, err)
	assert.NotNil(t, view.SLA)
	assert.NotNil(t, view.Efficiency)
	assert.NotNil(t, view.Heatmap)
	assert.NotNil(t, view.Forecast)
}

func TestInsightService_View_SnapshotFailure(t *testing.T) {
	f := createTestInsightService(t, nil)
	ctx := context.Background()

	f.snapshots.EXPECT().Snapshot(ctx).Return(analytics.Snapshot{}, errors.New("store offline"))

	_, err := f.service.View(ctx, employee)
	assert.Error(t, err)
}

func TestInsightService_AdminInsights(t *testing.T) {
	f := createTestInsightService(t, nil)
	ctx := context.Background()

	f.snapshots.EXPECT().Snapshot(ctx).Return(sampleSnapshot(), nil)

	insights, err := f.service.AdminInsights(ctx, admin)

	require.NoError(t, err)
	assert.Equal(t, 3, insights.TotalOrders)
	assert.Equal(t, 1, insights.StatusCounts[entity.OrderStatusCompleted])
	assert.Equal(t, 1, insights.StatusCounts[entity.OrderStatusPreparing])
	assert.Equal(t, 0, insights.StatusCounts[entity.OrderStatusReady])
	assert.Len(t, insights.StatusCounts, len(entity.OrderStatuses))
	assert.Equal(t, 1, insights.PaymentCounts[entity.PaymentRefunded])
}

func TestInsightService_AdminOnly(t *testing.T) {
	f := createTestInsightService(t, nil)
	ctx := context.Background()

	_, err := f.service.AdminInsights(ctx, vendor)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotPermitted))

	_, err = f.service.Simulate(ctx, employee, &simulator.Params{DurationMinutes: 10})
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotPermitted))
}

func TestInsightService_Simulate_Reproducible(t *testing.T) {
	params := &simulator.Params{DurationMinutes: 60, NewOrdersPerMin: 3, Stations: 2, AvgPrepMinutes: 8}

	run := func() *simulator.Result {
		f := createTestInsightService(t, rand.New(rand.NewPCG(42, 7)))
		f.metrics.EXPECT().Simulated().Return()

		result, err := f.service.Simulate(context.Background(), admin, params)
		require.NoError(t, err)

		return result
	}

	first, second := run(), run()

	assert.Equal(t, first.Series, second.Series)
	assert.Len(t, first.Series, 60)
	assert.InDelta(t, 0.25, first.Capacity, 1e-9)
}

func TestInsightService_Simulate_InvalidParams(t *testing.T) {
	f := createTestInsightService(t, nil)

	_, err := f.service.Simulate(context.Background(), admin, &simulator.Params{DurationMinutes: 0})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSimulation))
}
