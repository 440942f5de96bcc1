package usecase

import (
	"context"

	"canteen/internal/domain/analytics"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/simulator"
)

// AdminInsights is the admin dashboard over the whole order set
type AdminInsights struct {
	TotalOrders   int                          `json:"total_orders"`
	StatusCounts  map[entity.OrderStatus]int   `json:"status_counts"`
	PaymentCounts map[entity.PaymentStatus]int `json:"payment_counts"`
	Efficiency    analytics.EfficiencyInsight  `json:"efficiency"`
	SLA           analytics.SLATrend           `json:"sla"`
	Heatmap       analytics.Heatmap            `json:"heatmap"`
	Forecast      analytics.WindowForecast     `json:"forecast"`
}

// InsightUsecase defines the read-only derived views
type InsightUsecase interface {
	// View derives recommendations, queue estimate and analytics for the caller
	View(ctx context.Context, actor entity.Actor) (*analytics.View, error)

	// AdminInsights summarizes the full order set (admin)
	AdminInsights(ctx context.Context, actor entity.Actor) (*AdminInsights, error)

	// Simulate runs the queue simulator (admin)
	Simulate(ctx context.Context, actor entity.Actor, params *simulator.Params) (*simulator.Result, error)
}

// SnapshotSource supplies the latest orders and menu.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (analytics.Snapshot, error)
}
