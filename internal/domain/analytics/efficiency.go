package analytics

import (
	"math"
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
)

// EfficiencyInsight summarizes kitchen throughput over the trailing days.
type EfficiencyInsight struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	ServedCount      int     `json:"served_count"`
	AvgMinutes       float64 `json:"avg_minutes"`
	TimeSavedMinutes float64 `json:"time_saved_minutes"`
	CancelledCount   int     `json:"cancelled_count"`
	WasteAvoidedKg   float64 `json:"waste_avoided_kg"`
}

func dateSet(dates []string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}

	return set
}

// Efficiency reports mean prep time of served orders, the time saved against the
// baseline, and the waste avoided by cancellations, keyed by Order.Date.
func Efficiency(orders []*entity.Order, now time.Time, cal *calendar.Calendar, cfg Config) EfficiencyInsight {
	dates := cal.TrailingDates(now, cfg.TrailingDays)
	inWindow := dateSet(dates)

	var out EfficiencyInsight
	if len(dates) > 0 {
		out.From, out.To = dates[0], dates[len(dates)-1]
	}

	var sum float64
	for _, o := range orders {
		if !inWindow[o.Date] {
			continue
		}
		if o.Status == entity.OrderStatusCancelled {
			out.CancelledCount++

			continue
		}
		if d, ok := servedWithin(o, cfg.EfficiencyMaxMinutes); ok {
			sum += d
			out.ServedCount++
		}
	}

	avg := mean(sum, out.ServedCount)
	out.AvgMinutes = round1(avg)
	out.TimeSavedMinutes = round1(math.Max(0, cfg.BaselineMinutes-avg) * float64(out.ServedCount))
	out.WasteAvoidedKg = float64(out.CancelledCount) * cfg.WastePerOrderKg

	return out
}
