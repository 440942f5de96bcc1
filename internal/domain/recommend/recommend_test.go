package recommend

import (
	"testing"

	"canteen/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menu() []*entity.MenuItem {
	return []*entity.MenuItem{
		{ID: "1", Name: "Thali", Price: 80, Category: "Lunch", Available: true},
		{ID: "2", Name: "Biryani", Price: 120, Category: "Lunch", Available: "yes"},
		{ID: "3", Name: "Curd Rice", Price: 40, Category: "Lunch", Available: true},
		{ID: "4", Name: "Samosa", Price: 15, Category: "Snacks", Available: true},
		{ID: "5", Name: "Paneer Tikka", Price: 90, Category: "Dinner", Available: true},
		{ID: "6", Name: "Soup", Price: 10, Category: "Lunch", Available: false},
	}
}

func names(scored []Scored) []string {
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Item.Name)
	}

	return out
}

func TestCandidates_FiltersByWindowAndAvailability(t *testing.T) {
	got := Candidates(menu(), []entity.MealWindow{entity.WindowLunch, entity.WindowSnacks})

	ids := make([]string, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)

	assert.Empty(t, Candidates(menu(), nil))
}

func TestTop_ColdStartIsCheapestFirst(t *testing.T) {
	candidates := Candidates(menu(), []entity.MealWindow{entity.WindowLunch, entity.WindowSnacks})

	got := Top(nil, candidates, "E-1", 2)
	assert.Equal(t, []string{"Samosa", "Curd Rice"}, names(got))
}

func TestTop_HistoryBoostsPastFavourites(t *testing.T) {
	candidates := Candidates(menu(), []entity.MealWindow{entity.WindowLunch, entity.WindowSnacks})
	orders := []*entity.Order{
		{UserID: "E-1", Name: "Biryani"},
		{UserID: "E-1", Name: "Biryani"},
		{UserID: "E-1", Name: "Thali"},
		{UserID: "E-2", Name: "Samosa"},
		{UserID: "E-2", Name: "Samosa"},
		{UserID: "E-2", Name: "Samosa"},
	}

	got := Top(orders, candidates, "E-1", 2)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Biryani", "Thali"}, names(got))
	assert.InDelta(t, 2+1.0/121, got[0].Score, 1e-9)
	assert.InDelta(t, 1+1.0/81, got[1].Score, 1e-9)
}

func TestTop_HistoryWithoutCandidateMatchesFallsBackToAffordability(t *testing.T) {
	candidates := Candidates(menu(), []entity.MealWindow{entity.WindowLunch})
	orders := []*entity.Order{{UserID: "E-1", Name: "Paneer Tikka"}}

	got := Top(orders, candidates, "E-1", 2)
	assert.Equal(t, []string{"Curd Rice", "Thali"}, names(got))
}

func TestTop_TiesKeepInputOrder(t *testing.T) {
	candidates := []*entity.MenuItem{
		{Name: "A", Price: 50, Category: "Lunch", Available: true},
		{Name: "B", Price: 50, Category: "Lunch", Available: true},
		{Name: "C", Price: 50, Category: "Lunch", Available: true},
	}

	assert.Equal(t, []string{"A", "B"}, names(Top(nil, candidates, "E-1", 2)))
	assert.Equal(t, []string{"A", "B"}, names(Top([]*entity.Order{{UserID: "E-1", Name: "Z"}}, candidates, "E-1", 2)))
}

func TestTop_Deterministic(t *testing.T) {
	candidates := Candidates(menu(), []entity.MealWindow{entity.WindowLunch, entity.WindowSnacks})
	orders := []*entity.Order{{UserID: "E-1", Name: "Thali"}, {UserID: "E-1", Name: "Samosa"}}

	first := Top(orders, candidates, "E-1", 2)
	for range 20 {
		assert.Equal(t, first, Top(orders, candidates, "E-1", 2))
	}
}

func TestTop_EmptyAndDefaultLimit(t *testing.T) {
	assert.Empty(t, Top(nil, nil, "E-1", 2))
	assert.Len(t, Top(nil, menu(), "E-1", 0), DefaultLimit)
}
