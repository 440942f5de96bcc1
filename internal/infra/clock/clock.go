// Package clock provides the wall clock in the canteen's configured time zone.
package clock

import (
	"time"

	"canteen/internal/domain/service"
)

type systemClock struct {
	loc *time.Location
}

// New returns a Clock reporting time.Now in loc.
func New(loc *time.Location) service.Clock {
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
