// Package admission decides whether a menu item may be booked into the current meal
// window or pre-booked into the next one.
package admission

import (
	"time"

	"canteen/internal/domain/calendar"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
)

// Controller evaluates admission rules against a meal-window calendar.
type Controller struct {
	cal *calendar.Calendar
}

// NewController creates a Controller over cal.
func NewController(cal *calendar.Calendar) *Controller {
	return &Controller{cal: cal}
}

// Calendar returns the calendar the controller resolves windows with.
func (c *Controller) Calendar() *calendar.Calendar {
	return c.cal
}

// CanBookNow returns nil when item may be booked at now: a window is open, the
// item belongs to it, and the item is available. Otherwise it returns one of
// ErrOutsideWindow, ErrWrongWindow or ErrItemUnavailable, checked in that order.
func (c *Controller) CanBookNow(item *entity.MenuItem, now time.Time) error {
	current := c.cal.WindowAt(now)
	if current == entity.WindowNone {
		return domainerrors.ErrOutsideWindow
	}

	return check(item, current)
}

// CanPrebook returns nil when item may be pre-booked at now: a window is open, the
// item belongs to its successor, and the item is available.
func (c *Controller) CanPrebook(item *entity.MenuItem, now time.Time) error {
	current := c.cal.WindowAt(now)
	if current == entity.WindowNone {
		return domainerrors.ErrOutsideWindow
	}

	return check(item, c.cal.Next(current))
}

// Admit checks the rule matching mode.
func (c *Controller) Admit(item *entity.MenuItem, mode entity.BookingMode, now time.Time) error {
	if mode == entity.BookingModePrebook {
		return c.CanPrebook(item, now)
	}

	return c.CanBookNow(item, now)
}

func check(item *entity.MenuItem, target entity.MealWindow) error {
	if item.Window() != target {
		return domainerrors.ErrWrongWindow.WithDetails(item.Category + " items are not served in " + target.String())
	}
	if !item.IsAvailable() {
		return domainerrors.ErrItemUnavailable
	}

	return nil
}

// Decision is the admission outcome for one item, shaped for UI messaging.
type Decision struct {
	Item          *entity.MenuItem `json:"item"`
	BookNow       bool             `json:"book_now"`
	Prebook       bool             `json:"prebook"`
	BookNowReason string           `json:"book_now_reason,omitempty"`
	PrebookReason string           `json:"prebook_reason,omitempty"`
}

// Eligibility is the admission outcome for a whole menu at one instant.
type Eligibility struct {
	Window     entity.MealWindow `json:"window"`
	NextWindow entity.MealWindow `json:"next_window"`
	Items      []Decision        `json:"items"`
}

// Evaluate decides both booking modes for every item at now.
func (c *Controller) Evaluate(menu []*entity.MenuItem, now time.Time) Eligibility {
	current := c.cal.WindowAt(now)
	out := Eligibility{
		Window:     current,
		NextWindow: c.cal.Next(current),
		Items:      make([]Decision, 0, len(menu)),
	}

	for _, item := range menu {
		d := Decision{Item: item}

		if err := c.CanBookNow(item, now); err != nil {
			d.BookNowReason = domainerrors.Kind(err)
		} else {
			d.BookNow = true
		}

		if err := c.CanPrebook(item, now); err != nil {
			d.PrebookReason = domainerrors.Kind(err)
		} else {
			d.Prebook = true
		}

		out.Items = append(out.Items, d)
	}

	return out
}

// EligibleWindows returns the windows whose items can currently be booked or pre-booked,
// current window first. Outside every window the result is empty.
func (c *Controller) EligibleWindows(now time.Time) []entity.MealWindow {
	current := c.cal.WindowAt(now)
	if current == entity.WindowNone {
		return nil
	}

	return []entity.MealWindow{current, c.cal.Next(current)}
}
