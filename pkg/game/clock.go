package game

import (
	"context"
	"sync"
	"time"
)

// Clock calls a function at a fixed interval until its context ends.
type Clock struct {
	interval time.Duration
	paused   bool
	reset    chan struct{}

	mu sync.Mutex
}

// DefaultInterval replaces a non-positive interval given to NewClock.
const DefaultInterval = 800 * time.Millisecond

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Clock{interval: interval, reset: make(chan struct{}, 1)}
}

func (c *Clock) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := "running"
	if c.paused {
		state = "paused"
	}

	return c.interval.String() + " " + state
}

// Run blocks, calling tick once per interval while the clock is not paused.
func (c *Clock) Run(ctx context.Context, tick func()) {
	t := time.NewTicker(c.Interval())
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.reset:
			t.Reset(c.Interval())
		case <-t.C:
			if !c.Paused() {
				tick()
			}
		}
	}
}

func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.interval
}

// SetInterval changes the tick rate of a running clock.
func (c *Clock) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()

	select {
	case c.reset <- struct{}{}:
	default:
	}
}

func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused
}

func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused = true
}

func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused = false
}
