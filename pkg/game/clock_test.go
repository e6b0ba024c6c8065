package game

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	c := NewClock(2 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		c.Run(ctx, func() { atomic.AddInt32(&ticks, 1) })
		close(done)
	}()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestClockPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	c := NewClock(time.Millisecond)
	c.Pause()
	assert.True(t, c.Paused())
	go c.Run(ctx, func() { atomic.AddInt32(&ticks, 1) })

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&ticks))

	c.Resume()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) > 0 }, time.Second, time.Millisecond)
}

func TestNewClockNonPositiveInterval(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		c := NewClock(d)
		assert.Equal(t, DefaultInterval, c.Interval())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotPanics(t, func() { NewClock(0).Run(ctx, func() {}) })
}

func TestClockSetInterval(t *testing.T) {
	c := NewClock(time.Second)
	c.SetInterval(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, c.Interval())

	c.SetInterval(0)
	assert.Equal(t, 5*time.Millisecond, c.Interval())
	assert.Equal(t, "5ms running", c.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	go c.Run(ctx, func() { atomic.AddInt32(&ticks, 1) })
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 2 }, time.Second, time.Millisecond)
}
