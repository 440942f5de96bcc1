// Package recommend ranks bookable menu items for one user.
package recommend

import (
	"slices"

	"canteen/internal/domain/entity"
)

// DefaultLimit is how many items Top returns when limit is not positive.
const DefaultLimit = 2

// Scored is a ranked candidate.
type Scored struct {
	Item  *entity.MenuItem `json:"item"`
	Score float64          `json:"score"`
}

// Candidates keeps the available items whose category is one of windows, in menu order.
func Candidates(menu []*entity.MenuItem, windows []entity.MealWindow) []*entity.MenuItem {
	out := make([]*entity.MenuItem, 0, len(menu))
	for _, item := range menu {
		if !item.IsAvailable() {
			continue
		}
		if slices.Contains(windows, item.Window()) {
			out = append(out, item)
		}
	}

	return out
}

// Top ranks candidates for userKey and returns at most limit of them.
//
// A user without order history gets the cheapest items first. Otherwise each item
// scores pastOrders(item name) + 1/(1+price), highest first. Ties keep candidate order.
func Top(orders []*entity.Order, candidates []*entity.MenuItem, userKey string, limit int) []Scored {
	if limit <= 0 {
		limit = DefaultLimit
	}

	counts := make(map[string]int)
	history := 0
	for _, o := range orders {
		if o.UserID != userKey {
			continue
		}
		counts[o.Name]++
		history++
	}

	ranked := make([]Scored, 0, len(candidates))
	for _, item := range candidates {
		s := Scored{Item: item, Score: affinity(item.Price)}
		if history > 0 {
			s.Score += float64(counts[item.Name])
		}
		ranked = append(ranked, s)
	}

	if history == 0 {
		slices.SortStableFunc(ranked, func(a, b Scored) int {
			switch {
			case a.Item.Price < b.Item.Price:
				return -1
			case a.Item.Price > b.Item.Price:
				return 1
			default:
				return 0
			}
		})
	} else {
		slices.SortStableFunc(ranked, func(a, b Scored) int {
			switch {
			case a.Score > b.Score:
				return -1
			case a.Score < b.Score:
				return 1
			default:
				return 0
			}
		})
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func affinity(price float64) float64 {
	return 1 / (1 + price)
}
