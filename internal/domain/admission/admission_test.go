package admission

import (
	"testing"
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2024, 1, 10, hour, 5, 0, 0, time.UTC)
}

func newController() *Controller {
	return NewController(calendar.Default(time.UTC))
}

func TestController_CanBookNow_InsideWindow(t *testing.T) {
	c := newController()
	item := &entity.MenuItem{Name: "Thali", Category: "Lunch", Available: true}

	require.NoError(t, c.CanBookNow(item, at(13)))
}

func TestController_CanPrebook_NextWindow(t *testing.T) {
	c := newController()
	item := &entity.MenuItem{Name: "Samosa", Category: "Snacks", Available: true}

	require.NoError(t, c.CanPrebook(item, at(13)))

	err := c.CanBookNow(item, at(13))
	assert.ErrorIs(t, err, domainerrors.ErrWrongWindow)
}

func TestController_DeniesEverythingOutsideWindows(t *testing.T) {
	c := newController()

	for _, category := range []string{"Breakfast", "Lunch", "Snacks", "Dinner", "Other", ""} {
		for _, available := range []any{true, false, "yes", nil} {
			item := &entity.MenuItem{Category: category, Available: available}

			assert.ErrorIs(t, c.CanBookNow(item, at(2)), domainerrors.ErrOutsideWindow)
			assert.ErrorIs(t, c.CanPrebook(item, at(2)), domainerrors.ErrOutsideWindow)
		}
	}
}

func TestController_ReasonsAreDistinguishable(t *testing.T) {
	c := newController()

	tests := []struct {
		name     string
		item     *entity.MenuItem
		hour     int
		wantKind string
	}{
		{name: "outside", item: &entity.MenuItem{Category: "Lunch", Available: true}, hour: 2, wantKind: "OUTSIDE_WINDOW"},
		{name: "wrong window", item: &entity.MenuItem{Category: "Dinner", Available: true}, hour: 13, wantKind: "WRONG_WINDOW"},
		{name: "other category", item: &entity.MenuItem{Category: "Other", Available: true}, hour: 13, wantKind: "WRONG_WINDOW"},
		{name: "unavailable", item: &entity.MenuItem{Category: "Lunch", Available: "no"}, hour: 13, wantKind: "ITEM_UNAVAILABLE"},
		{name: "availability missing", item: &entity.MenuItem{Category: "Lunch"}, hour: 13, wantKind: "ITEM_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.CanBookNow(tt.item, at(tt.hour))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domainerrors.Kind(err))
		})
	}
}

func TestController_Admit_SelectsRuleByMode(t *testing.T) {
	c := newController()
	dinner := &entity.MenuItem{Category: "Dinner", Available: "Yes"}

	// 16:00 is Snacks; Dinner is next.
	assert.NoError(t, c.Admit(dinner, entity.BookingModePrebook, at(16)))
	assert.ErrorIs(t, c.Admit(dinner, entity.BookingModeNow, at(16)), domainerrors.ErrWrongWindow)
}

func TestController_Evaluate(t *testing.T) {
	c := newController()
	menu := []*entity.MenuItem{
		{ID: "1", Category: "Lunch", Available: true},
		{ID: "2", Category: "Snacks", Available: "y"},
		{ID: "3", Category: "Lunch", Available: false},
	}

	got := c.Evaluate(menu, at(13))

	assert.Equal(t, entity.WindowLunch, got.Window)
	assert.Equal(t, entity.WindowSnacks, got.NextWindow)
	require.Len(t, got.Items, 3)

	assert.True(t, got.Items[0].BookNow)
	assert.False(t, got.Items[0].Prebook)
	assert.Equal(t, "WRONG_WINDOW", got.Items[0].PrebookReason)

	assert.False(t, got.Items[1].BookNow)
	assert.True(t, got.Items[1].Prebook)

	assert.Equal(t, "ITEM_UNAVAILABLE", got.Items[2].BookNowReason)
}

func TestController_EligibleWindows(t *testing.T) {
	c := newController()

	assert.Equal(t, []entity.MealWindow{entity.WindowDinner, entity.WindowBreakfast}, c.EligibleWindows(at(20)))
	assert.Empty(t, c.EligibleWindows(at(2)))
}
