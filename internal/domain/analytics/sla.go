package analytics

import (
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
)

// SLADay is the SLA summary of one calendar day, or of the whole trailing window.
type SLADay struct {
	Date       string  `json:"date,omitempty"`
	Count      int     `json:"count"`
	AvgMinutes float64 `json:"avg_minutes"`
	OnTime     int     `json:"on_time"`
	OnTimePct  float64 `json:"on_time_pct"`
}

// SLATrend is the per-day SLA series, oldest day first, plus the aggregate.
type SLATrend struct {
	SLAMinutes float64  `json:"sla_minutes"`
	Days       []SLADay `json:"days"`
	Total      SLADay   `json:"total"`
}

type slaAcc struct {
	count  int
	onTime int
	sum    float64
}

func (a *slaAcc) add(d, sla float64) {
	a.count++
	a.sum += d
	if d <= sla {
		a.onTime++
	}
}

func (a slaAcc) day(date string) SLADay {
	pct := 0.0
	if a.count > 0 {
		pct = round1(100 * float64(a.onTime) / float64(a.count))
	}

	return SLADay{
		Date:       date,
		Count:      a.count,
		AvgMinutes: round1(mean(a.sum, a.count)),
		OnTime:     a.onTime,
		OnTimePct:  pct,
	}
}

// SLA buckets served orders with a duration in (0, SLAMaxMinutes) by Order.Date over the
// trailing days and reports how many met the SLA threshold.
func SLA(orders []*entity.Order, now time.Time, cal *calendar.Calendar, cfg Config) SLATrend {
	dates := cal.TrailingDates(now, cfg.TrailingDays)
	perDay := make(map[string]*slaAcc, len(dates))
	for _, d := range dates {
		perDay[d] = &slaAcc{}
	}

	var total slaAcc
	for _, o := range orders {
		acc, ok := perDay[o.Date]
		if !ok {
			continue
		}
		d, ok := servedWithin(o, cfg.SLAMaxMinutes)
		if !ok {
			continue
		}
		acc.add(d, cfg.SLAMinutes)
		total.add(d, cfg.SLAMinutes)
	}

	trend := SLATrend{
		SLAMinutes: cfg.SLAMinutes,
		Days:       make([]SLADay, 0, len(dates)),
		Total:      total.day(""),
	}
	for _, d := range dates {
		trend.Days = append(trend.Days, perDay[d].day(d))
	}

	return trend
}
