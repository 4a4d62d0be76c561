// Package reward models the rewarded-ad step that earns a bonus prompt.
package reward

import (
	"context"
	"time"
)

// DefaultAdDuration is how long the simulated ad plays.
const DefaultAdDuration = 2 * time.Second

// Ad plays a rewarded ad and returns nil once the user has earned the reward.
type Ad interface {
	Watch(ctx context.Context) error
}

// Simulated stands in for a real ad network: it waits Duration and then
// reports success.
type Simulated struct {
	Duration time.Duration
}

// NewSimulated returns a Simulated ad. A non-positive duration selects
// DefaultAdDuration.
func NewSimulated(d time.Duration) *Simulated {
	if d <= 0 {
		d = DefaultAdDuration
	}
	return &Simulated{Duration: d}
}

// Watch blocks for the ad duration or until ctx is done. An ad cut short by
// cancellation earns nothing.
func (s *Simulated) Watch(ctx context.Context) error {
	timer := time.NewTimer(s.Duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Func adapts a function to the Ad interface.
type Func func(ctx context.Context) error

func (f Func) Watch(ctx context.Context) error { return f(ctx) }
