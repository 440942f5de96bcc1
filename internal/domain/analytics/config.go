// Package analytics holds pure reducers over an order snapshot: queue estimates,
// kitchen efficiency, SLA trend, demand heatmap and the next-window forecast.
//
// Every reducer tolerates an empty snapshot and returns a zero-valued shape.
// Days are bucketed by the literal Order.Date string, not by rolling 24h spans.
package analytics

import (
	"math"

	"canteen/internal/domain/entity"
)

// Config carries the fixed constants of the reducers.
type Config struct {
	AveragePrepMinutes   float64           // per order, for the live queue estimate
	ParallelStations     int               // kitchen stations working in parallel
	BaselineMinutes      float64           // pre-system average prep time used for "time saved"
	WastePerOrderKg      float64           // food waste avoided per cancelled pre-booking
	SLAMinutes           float64           // on-time threshold
	EfficiencyMaxMinutes float64           // durations at or above this are ignored by Efficiency
	SLAMaxMinutes        float64           // durations at or above this are ignored by SLATrend
	TrailingDays         int               // window of Efficiency, SLATrend and Heatmap
	ForecastWeeks        int               // same-weekday samples averaged by Forecast
	ForecastWindow       entity.MealWindow // slot Forecast predicts
	ForecastLowerBand    float64           // fraction subtracted for the lower bound
	ForecastUpperBand    float64           // fraction added for the upper bound
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		AveragePrepMinutes:   8,
		ParallelStations:     2,
		BaselineMinutes:      12,
		WastePerOrderKg:      0.25,
		SLAMinutes:           15,
		EfficiencyMaxMinutes: 180,
		SLAMaxMinutes:        240,
		TrailingDays:         7,
		ForecastWeeks:        3,
		ForecastWindow:       entity.WindowLunch,
		ForecastLowerBand:    0.10,
		ForecastUpperBand:    0.15,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// servedWithin reports whether o finished (Ready or Completed) with a duration in (0, max) minutes.
func servedWithin(o *entity.Order, maxMinutes float64) (float64, bool) {
	if !o.Status.IsServed() {
		return 0, false
	}
	d := o.DurationMinutes()
	if d <= 0 || d >= maxMinutes {
		return 0, false
	}

	return d, true
}
