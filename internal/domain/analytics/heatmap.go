package analytics

import (
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
)

// HeatmapSlot is a column of the heatmap.
type HeatmapSlot struct {
	Window entity.MealWindow `json:"window"`
	Label  string            `json:"label"`
}

// Heatmap counts orders per trailing day and meal-window slot. Intensity is each
// cell divided by the largest cell and is only meant for rendering.
type Heatmap struct {
	Dates     []string      `json:"dates"`
	Slots     []HeatmapSlot `json:"slots"`
	Cells     [][]int       `json:"cells"`
	Intensity [][]float64   `json:"intensity"`
	Max       int           `json:"max"`
}

// Demand builds the heatmap. The row is Order.Date, the column is the slot
// holding the local hour of Order.CreatedAt.
func Demand(orders []*entity.Order, now time.Time, cal *calendar.Calendar, cfg Config) Heatmap {
	dates := cal.TrailingDates(now, cfg.TrailingDays)
	slots := cal.Slots()

	rows := make(map[string]int, len(dates))
	for i, d := range dates {
		rows[d] = i
	}

	hm := Heatmap{
		Dates:     dates,
		Slots:     make([]HeatmapSlot, 0, len(slots)),
		Cells:     make([][]int, len(dates)),
		Intensity: make([][]float64, len(dates)),
	}
	for _, s := range slots {
		hm.Slots = append(hm.Slots, HeatmapSlot{Window: s.Window, Label: s.Label()})
	}
	for i := range dates {
		hm.Cells[i] = make([]int, len(slots))
		hm.Intensity[i] = make([]float64, len(slots))
	}

	for _, o := range orders {
		row, ok := rows[o.Date]
		if !ok || o.CreatedAt.IsZero() {
			continue
		}
		hour := cal.Hour(o.CreatedAt)
		for col, s := range slots {
			if s.Contains(hour) {
				hm.Cells[row][col]++
				if hm.Cells[row][col] > hm.Max {
					hm.Max = hm.Cells[row][col]
				}

				break
			}
		}
	}

	if hm.Max > 0 {
		for i := range hm.Cells {
			for j, v := range hm.Cells[i] {
				hm.Intensity[i][j] = float64(v) / float64(hm.Max)
			}
		}
	}

	return hm
}
