package analytics

import (
	"time"

	"canteen/internal/domain/admission"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/recommend"
)

// Snapshot is the latest state of the subscribed collections.
type Snapshot struct {
	Orders []*entity.Order
	Menu   []*entity.MenuItem
}

// View is everything derived from one snapshot for one caller. The kitchen-wide
// panels (efficiency, SLA, heatmap, forecast) are admin material; see ForRole.
type View struct {
	GeneratedAt     time.Time             `json:"generated_at"`
	Window          entity.MealWindow     `json:"window"`
	NextWindow      entity.MealWindow     `json:"next_window"`
	Recommendations []recommend.Scored    `json:"recommendations"`
	Queue           QueueEstimate         `json:"queue"`
	Efficiency      *EfficiencyInsight    `json:"efficiency,omitempty"`
	SLA             *SLATrend             `json:"sla,omitempty"`
	Heatmap         *Heatmap              `json:"heatmap,omitempty"`
	Forecast        *WindowForecast       `json:"forecast,omitempty"`
	Eligibility     admission.Eligibility `json:"eligibility"`
}

// ForRole returns the view trimmed to what role may see. Only admins keep the kitchen-wide panels.
func (v View) ForRole(role entity.Role) View {
	if role == entity.RoleAdmin {
		return v
	}

	v.Efficiency = nil
	v.SLA = nil
	v.Heatmap = nil
	v.Forecast = nil

	return v
}

// DeriveView recomputes every derived component from scratch. It never mutates the snapshot.
func DeriveView(snap Snapshot, userKey string, now time.Time, ctl *admission.Controller, cfg Config) View {
	cal := ctl.Calendar()
	window := cal.WindowAt(now)

	candidates := recommend.Candidates(snap.Menu, ctl.EligibleWindows(now))

	efficiency := Efficiency(snap.Orders, now, cal, cfg)
	sla := SLA(snap.Orders, now, cal, cfg)
	heatmap := Demand(snap.Orders, now, cal, cfg)
	forecast := Forecast(snap.Orders, now, cal, cfg)

	return View{
		GeneratedAt:     now,
		Window:          window,
		NextWindow:      cal.Next(window),
		Recommendations: recommend.Top(snap.Orders, candidates, userKey, recommend.DefaultLimit),
		Queue:           Queue(snap.Orders, userKey, now, cfg),
		Efficiency:      &efficiency,
		SLA:             &sla,
		Heatmap:         &heatmap,
		Forecast:        &forecast,
		Eligibility:     ctl.Evaluate(snap.Menu, now),
	}
}
