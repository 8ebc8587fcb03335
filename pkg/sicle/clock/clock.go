// Package clock provides a scalable simulation clock and a queue of delayed
// callbacks that run on simulation time. The router freezes the clock while
// paused; anything scheduled on it waits with the rest of the game.
package clock

import (
	"sort"
	"time"

	"go.uber.org/atomic"
)

// Clock accumulates simulation time from real frame deltas multiplied by a
// time scale. The scale may be read from other goroutines (audio, for
// example); Advance and the scheduling methods belong to the frame thread.
type Clock struct {
	scale   *atomic.Float64
	elapsed time.Duration
	frames  uint64

	nextID uint64
	tasks  []task
}

type task struct {
	id  uint64
	due time.Duration
	fn  func()
}

// TaskID identifies a scheduled callback for cancellation.
type TaskID uint64

func New() *Clock {
	return &Clock{scale: atomic.NewFloat64(1)}
}

// SetTimeScale sets the multiplier applied to real time. Negative values are
// clamped to zero.
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale.Store(scale)
}

// TimeScale returns the current multiplier.
func (c *Clock) TimeScale() float64 {
	return c.scale.Load()
}

// Frozen reports whether simulation time is stopped.
func (c *Clock) Frozen() bool {
	return c.scale.Load() == 0
}

// Elapsed returns the simulation time accumulated so far.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Frames returns the number of Advance calls.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Advance adds one frame of real time dt, scaled, and runs every callback
// that has come due, in due order. It returns the scaled delta.
func (c *Clock) Advance(dt time.Duration) time.Duration {
	c.frames++
	scaled := time.Duration(float64(dt) * c.scale.Load())
	c.elapsed += scaled
	c.runDue()
	return scaled
}

// After schedules fn to run once d of simulation time has passed.
func (c *Clock) After(d time.Duration, fn func()) TaskID {
	c.nextID++
	t := task{id: c.nextID, due: c.elapsed + d, fn: fn}

	// Keep tasks sorted by due time; equal due times keep scheduling order.
	i := sort.Search(len(c.tasks), func(i int) bool { return c.tasks[i].due > t.due })
	c.tasks = append(c.tasks, task{})
	copy(c.tasks[i+1:], c.tasks[i:])
	c.tasks[i] = t
	return TaskID(t.id)
}

// Cancel removes a scheduled callback. It reports whether it was still pending.
func (c *Clock) Cancel(id TaskID) bool {
	for i, t := range c.tasks {
		if t.id == uint64(id) {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of scheduled callbacks.
func (c *Clock) Pending() int {
	return len(c.tasks)
}

func (c *Clock) runDue() {
	for len(c.tasks) > 0 && c.tasks[0].due <= c.elapsed {
		t := c.tasks[0]
		c.tasks = c.tasks[1:]
		if t.fn != nil {
			t.fn()
		}
	}
}
