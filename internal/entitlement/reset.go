package entitlement

import (
	"time"

	"github.com/teambition/rrule-go"
)

// nextMidnight returns the first local midnight strictly after now.
func nextMidnight(now time.Time) time.Time {
	start := DateOf(now).Midnight(now.Location())
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Count:   2,
	})
	if err != nil {
		return start.AddDate(0, 0, 1)
	}
	next := r.After(now, false)
	if next.IsZero() {
		return start.AddDate(0, 0, 1)
	}
	return next
}
