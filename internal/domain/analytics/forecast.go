package analytics

import (
	"math"
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
)

// ForecastSample is the order count of one past same-weekday slot.
type ForecastSample struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WindowForecast predicts today's order count for one meal-window slot.
type WindowForecast struct {
	Window   entity.MealWindow `json:"window"`
	Date     string            `json:"date"`
	Samples  []ForecastSample  `json:"samples"`
	Average  float64           `json:"average"`
	Forecast int               `json:"forecast"`
	Lower    int               `json:"lower"`
	Upper    int               `json:"upper"`
}

// Forecast averages the slot's order count on the same weekday of up to ForecastWeeks
// prior weeks (today excluded). A prior week only counts once the order history
// reaches back to it. The band is -ForecastLowerBand / +ForecastUpperBand around the forecast.
func Forecast(orders []*entity.Order, now time.Time, cal *calendar.Calendar, cfg Config) WindowForecast {
	out := WindowForecast{
		Window:  cfg.ForecastWindow,
		Date:    cal.Date(now),
		Samples: []ForecastSample{},
	}

	slot, ok := cal.Slot(cfg.ForecastWindow)
	if !ok {
		return out
	}

	earliest := ""
	for _, o := range orders {
		if o.Date != "" && (earliest == "" || o.Date < earliest) {
			earliest = o.Date
		}
	}
	if earliest == "" {
		return out
	}

	local := now.In(cal.Location())
	noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, cal.Location())

	index := make(map[string]int, cfg.ForecastWeeks)
	for week := 1; week <= cfg.ForecastWeeks; week++ {
		date := noon.AddDate(0, 0, -7*week).Format(entity.DateLayout)
		if date < earliest {
			break
		}
		index[date] = len(out.Samples)
		out.Samples = append(out.Samples, ForecastSample{Date: date})
	}
	if len(out.Samples) == 0 {
		return out
	}

	for _, o := range orders {
		i, ok := index[o.Date]
		if !ok || o.CreatedAt.IsZero() {
			continue
		}
		if slot.Contains(cal.Hour(o.CreatedAt)) {
			out.Samples[i].Count++
		}
	}

	total := 0
	for _, s := range out.Samples {
		total += s.Count
	}

	out.Average = float64(total) / float64(len(out.Samples))
	out.Forecast = int(math.Round(out.Average))
	out.Lower = int(math.Round(float64(out.Forecast) * (1 - cfg.ForecastLowerBand)))
	out.Upper = int(math.Round(float64(out.Forecast) * (1 + cfg.ForecastUpperBand)))

	return out
}
