package playback

import (
	"context"
	"time"
)

// Ticker receives elapsed wall time from a Clock.
type Ticker interface {
	Tick(delta float64)
}

// DefaultTickInterval is the progress clock period.
const DefaultTickInterval = time.Second

// Clock drives Tick on a fixed interval. It stands in for an audio
// engine's position callbacks: progress is modeled from wall time.
type Clock struct {
	target   Ticker
	interval time.Duration
}

// NewClock creates a clock for target. Non-positive intervals use
// DefaultTickInterval.
func NewClock(target Ticker, interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{target: target, interval: interval}
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Run ticks until ctx is done, passing the measured elapsed time so a
// late tick does not lose progress.
func (c *Clock) Run(ctx context.Context) error {
	t := time.NewTicker(c.interval)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			c.target.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}
