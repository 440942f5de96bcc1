// Package calendar maps wall-clock time to the canteen's meal windows.
//
// Boundaries are half-open hour ranges [Start, End) over the local hour of day.
// The table is configuration: the only requirements are that every named window
// appears exactly once and that no two ranges overlap. Hours outside every range
// belong to no window.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"
)

// Slot is one row of the boundary table.
type Slot struct {
	Window entity.MealWindow `json:"window"`
	Start  int               `json:"start_hour"` // inclusive
	End    int               `json:"end_hour"`   // exclusive
}

// Contains reports whether hour falls inside the slot.
func (s Slot) Contains(hour int) bool {
	return hour >= s.Start && hour < s.End
}

// Label renders the slot as "11:00-15:00".
func (s Slot) Label() string {
	return fmt.Sprintf("%02d:00-%02d:00", s.Start, s.End)
}

// DefaultSlots is the canonical boundary table.
var DefaultSlots = []Slot{
	{Window: entity.WindowBreakfast, Start: 7, End: 11},
	{Window: entity.WindowLunch, Start: 11, End: 15},
	{Window: entity.WindowSnacks, Start: 15, End: 19},
	{Window: entity.WindowDinner, Start: 19, End: 23},
}

// Calendar resolves meal windows in a fixed location.
type Calendar struct {
	loc    *time.Location
	slots  []Slot
	byHour [24]entity.MealWindow
}

// New validates the boundary table and builds a Calendar. A nil location means time.Local.
func New(slots []Slot, loc *time.Location) (*Calendar, error) {
	if loc == nil {
		loc = time.Local
	}
	if err := Validate(slots); err != nil {
		return nil, err
	}

	ordered := make([]Slot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	c := &Calendar{loc: loc, slots: ordered}
	for _, s := range ordered {
		for h := s.Start; h < s.End; h++ {
			c.byHour[h] = s.Window
		}
	}

	return c, nil
}

// MustNew is New for tables known to be valid.
func MustNew(slots []Slot, loc *time.Location) *Calendar {
	c, err := New(slots, loc)
	if err != nil {
		panic(err)
	}

	return c
}

// Default returns a Calendar over DefaultSlots in loc.
func Default(loc *time.Location) *Calendar {
	return MustNew(DefaultSlots, loc)
}

// Validate checks that each named window appears exactly once with a non-empty
// range inside 0..24 and that no ranges overlap.
func Validate(slots []Slot) error {
	seen := make(map[entity.MealWindow]bool, len(slots))
	var hours [24]entity.MealWindow

	for _, s := range slots {
		if !s.Window.IsValid() {
			return errors.Errorf("unknown meal window %q", s.Window)
		}
		if seen[s.Window] {
			return errors.Errorf("meal window %s listed twice", s.Window)
		}
		seen[s.Window] = true

		if s.Start < 0 || s.End > 24 || s.Start >= s.End {
			return errors.Errorf("meal window %s has invalid range [%d,%d)", s.Window, s.Start, s.End)
		}
		for h := s.Start; h < s.End; h++ {
			if hours[h] != entity.WindowNone {
				return errors.Errorf("meal windows %s and %s overlap at hour %d", hours[h], s.Window, h)
			}
			hours[h] = s.Window
		}
	}

	for _, w := range entity.MealWindows {
		if !seen[w] {
			return errors.Errorf("meal window %s is missing", w)
		}
	}

	return nil
}

// Location returns the calendar's time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Slots returns the boundary table ordered by start hour.
func (c *Calendar) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)

	return out
}

// Slot returns the boundary row for w.
func (c *Calendar) Slot(w entity.MealWindow) (Slot, bool) {
	for _, s := range c.slots {
		if s.Window == w {
			return s, true
		}
	}

	return Slot{}, false
}

// WindowAtHour returns the window containing a local hour of day.
func (c *Calendar) WindowAtHour(hour int) entity.MealWindow {
	if hour < 0 || hour > 23 {
		return entity.WindowNone
	}

	return c.byHour[hour]
}

// WindowAt returns the window active at t, evaluated in the calendar's location.
func (c *Calendar) WindowAt(t time.Time) entity.MealWindow {
	return c.WindowAtHour(t.In(c.loc).Hour())
}

// Next is the cyclic successor of w.
func (c *Calendar) Next(w entity.MealWindow) entity.MealWindow {
	return w.Next()
}

// Date formats t as the calendar-day string orders are bucketed by.
func (c *Calendar) Date(t time.Time) string {
	return t.In(c.loc).Format(entity.DateLayout)
}

// Hour returns the local hour of t.
func (c *Calendar) Hour(t time.Time) int {
	return t.In(c.loc).Hour()
}

// TrailingDates returns n calendar-day strings ending with the day of now, oldest first.
func (c *Calendar) TrailingDates(now time.Time, n int) []string {
	local := now.In(c.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, c.loc)

	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, day.AddDate(0, 0, -i).Format(entity.DateLayout))
	}

	return dates
}
