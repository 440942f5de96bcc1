package analytics

import (
	"math"
	"time"

	"canteen/internal/domain/entity"
)

// QueueEstimate is the employee-facing wait estimate for their own active orders.
type QueueEstimate struct {
	ActiveCount      int       `json:"active_count"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	ETA              time.Time `json:"eta"`
}

// Queue counts userKey's orders still in Prebooked, Preparing or Ready and estimates
// ceil(active * averagePrep / stations) minutes of waiting.
func Queue(orders []*entity.Order, userKey string, now time.Time, cfg Config) QueueEstimate {
	active := 0
	for _, o := range orders {
		if o.UserID == userKey && o.Status.IsActive() {
			active++
		}
	}

	minutes := 0
	if cfg.ParallelStations > 0 {
		minutes = int(math.Ceil(float64(active) * cfg.AveragePrepMinutes / float64(cfg.ParallelStations)))
	}

	return QueueEstimate{
		ActiveCount:      active,
		EstimatedMinutes: minutes,
		ETA:              now.Add(time.Duration(minutes) * time.Minute),
	}
}
