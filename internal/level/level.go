// Package level implements the on-screen level counter that advances on a
// repeating timer.
package level

import (
	"fmt"
	"time"
)

const (
	// DefaultInterval is how often the level goes up.
	DefaultInterval = 2 * time.Second
	// DefaultStart is the level shown when the board opens.
	DefaultStart = 1
)

// Timer is a repeating interval timer driven by frame deltas.
type Timer struct {
	period   time.Duration
	elapsed  time.Duration
	finished int
}

// NewTimer creates a repeating timer. A non-positive period never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer and returns how many periods completed during this
// tick. A long frame can complete more than one.
func (t *Timer) Tick(delta time.Duration) int {
	t.finished = 0
	if t.period <= 0 || delta <= 0 {
		return 0
	}
	t.elapsed += delta
	if t.elapsed >= t.period {
		t.finished = int(t.elapsed / t.period)
		t.elapsed %= t.period
	}
	return t.finished
}

// JustFinished reports whether the last Tick completed a period.
func (t *Timer) JustFinished() bool { return t.finished > 0 }

// Elapsed is the time accumulated towards the next period.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Period returns the timer period.
func (t *Timer) Period() time.Duration { return t.period }

// Reset clears accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
}

// Label formats a level for display.
func Label(level int) string {
	return fmt.Sprintf("Level %d", level)
}

// Counter pairs a level with its label. Label always equals Label(Level).
type Counter struct {
	level int
	label string
	timer *Timer
}

// NewCounter creates a counter at start that goes up by one every interval.
func NewCounter(start int, interval time.Duration) *Counter {
	c := &Counter{timer: NewTimer(interval)}
	c.Set(start)
	return c
}

// Advance feeds a frame delta into the timer and returns the number of levels gained.
func (c *Counter) Advance(delta time.Duration) int {
	n := c.timer.Tick(delta)
	if n > 0 {
		c.Set(c.level + n)
	}
	return n
}

// Set jumps to a level and regenerates the label.
func (c *Counter) Set(level int) {
	c.level = level
	c.label = Label(level)
}

// Reset returns to a level and restarts the interval.
func (c *Counter) Reset(level int) {
	c.timer.Reset()
	c.Set(level)
}

// Level returns the current level.
func (c *Counter) Level() int { return c.level }

// Label returns the display text, "Level {n}".
func (c *Counter) Label() string { return c.label }

// Timer exposes the underlying interval timer.
func (c *Counter) Timer() *Timer { return c.timer }
