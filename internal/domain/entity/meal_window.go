package entity

import "strings"

// MealWindow is one of the four admission windows of a canteen day.
// It is derived from wall-clock time and never stored.
type MealWindow string

const (
	WindowNone      MealWindow = ""
	WindowBreakfast MealWindow = "Breakfast"
	WindowLunch     MealWindow = "Lunch"
	WindowSnacks    MealWindow = "Snacks"
	WindowDinner    MealWindow = "Dinner"
)

// CategoryOther is the category assigned to menu items that name no meal window.
const CategoryOther = "Other"

// MealWindows lists the named windows in cyclic order.
var MealWindows = []MealWindow{WindowBreakfast, WindowLunch, WindowSnacks, WindowDinner}

// String returns the string representation of the window.
func (w MealWindow) String() string {
	if w == WindowNone {
		return "none"
	}

	return string(w)
}

// IsValid reports whether w is one of the four named windows.
func (w MealWindow) IsValid() bool {
	switch w {
	case WindowBreakfast, WindowLunch, WindowSnacks, WindowDinner:
		return true
	default:
		return false
	}
}

// Next returns the cyclic successor: Breakfast, Lunch, Snacks, Dinner, Breakfast.
// The successor of WindowNone is WindowNone.
func (w MealWindow) Next() MealWindow {
	switch w {
	case WindowBreakfast:
		return WindowLunch
	case WindowLunch:
		return WindowSnacks
	case WindowSnacks:
		return WindowDinner
	case WindowDinner:
		return WindowBreakfast
	default:
		return WindowNone
	}
}

// ParseMealWindow matches a window name case-insensitively.
func ParseMealWindow(s string) (MealWindow, bool) {
	for _, w := range MealWindows {
		if strings.EqualFold(strings.TrimSpace(s), string(w)) {
			return w, true
		}
	}

	return WindowNone, false
}
