package testing

import (
	"sync/atomic"
	"time"
)

// DefaultTime is where a new ManualClock starts.
var DefaultTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// ManualClock is an engine.Clock that only moves when told to. Vesting
// windows in tests are driven through it.
type ManualClock struct {
	now atomic.Pointer[time.Time]
}

// NewManualClock creates a ManualClock set to DefaultTime.
func NewManualClock() *ManualClock {
	return NewManualClockAt(DefaultTime)
}

// NewManualClockAt creates a ManualClock set to t.
func NewManualClockAt(t time.Time) *ManualClock {
	c := &ManualClock{}
	c.Set(t)
	return c
}

func (c *ManualClock) Now() time.Time {
	return *c.now.Load()
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	for {
		old := c.now.Load()
		next := old.Add(d)
		if c.now.CompareAndSwap(old, &next) {
			return
		}
	}
}

func (c *ManualClock) Set(t time.Time) {
	c.now.Store(&t)
}
