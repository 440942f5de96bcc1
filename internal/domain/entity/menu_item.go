package entity

import (
	"strings"
	"time"
)

// MenuItem is a catalog entry managed by vendors.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	// Available is stored loosely: a boolean or free text such as "Yes".
	// Use IsAvailable to interpret it.
	Available any       `json:"available"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Window returns the meal window named by the item's category, or WindowNone for "Other".
func (m *MenuItem) Window() MealWindow {
	w, _ := ParseMealWindow(m.Category)

	return w
}

// IsAvailable reports whether the item is bookable as far as its own flag is concerned.
func (m *MenuItem) IsAvailable() bool {
	return IsAvailable(m.Available)
}

// NormalizeCategory maps a missing or unknown category to CategoryOther.
func NormalizeCategory(category string) string {
	if w, ok := ParseMealWindow(category); ok {
		return string(w)
	}

	return CategoryOther
}

var truthyAvailability = map[string]struct{}{
	"yes":       {},
	"y":         {},
	"true":      {},
	"available": {},
}

// IsAvailable normalizes a loosely-typed availability value. Only boolean true and the
// strings yes, y, true, available (case and surrounding whitespace ignored) count as available.
func IsAvailable(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case *bool:
		return value != nil && *value
	case string:
		_, ok := truthyAvailability[strings.ToLower(strings.TrimSpace(value))]

		return ok
	default:
		return false
	}
}
