package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceScalesTime(t *testing.T) {
	c := New()
	assert.Equal(t, 1.0, c.TimeScale())

	assert.Equal(t, 100*time.Millisecond, c.Advance(100*time.Millisecond))

	c.SetTimeScale(0.5)
	assert.Equal(t, 50*time.Millisecond, c.Advance(100*time.Millisecond))
	assert.Equal(t, 150*time.Millisecond, c.Elapsed())
	assert.Equal(t, uint64(2), c.Frames())
}

func TestFrozenClock(t *testing.T) {
	c := New()
	c.SetTimeScale(0)
	assert.True(t, c.Frozen())

	assert.Zero(t, c.Advance(time.Second))
	assert.Zero(t, c.Elapsed())
	assert.Equal(t, uint64(1), c.Frames())

	c.SetTimeScale(-3)
	assert.Zero(t, c.TimeScale())
}

func TestAfterRunsInDueOrder(t *testing.T) {
	c := New()
	var order []string
	c.After(300*time.Millisecond, func() { order = append(order, "third") })
	c.After(100*time.Millisecond, func() { order = append(order, "first") })
	c.After(200*time.Millisecond, func() { order = append(order, "second a") })
	c.After(200*time.Millisecond, func() { order = append(order, "second b") })
	assert.Equal(t, 4, c.Pending())

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"first"}, order)

	c.Advance(time.Second)
	assert.Equal(t, []string{"first", "second a", "second b", "third"}, order)
	assert.Zero(t, c.Pending())
}

func TestAfterWaitsWhileFrozen(t *testing.T) {
	c := New()
	fired := false
	c.After(time.Second, func() { fired = true })

	c.SetTimeScale(0)
	for range 120 {
		c.Advance(16 * time.Millisecond)
	}
	assert.False(t, fired)

	c.SetTimeScale(1)
	c.Advance(time.Second)
	assert.True(t, fired)
}

func TestAfterIsRelativeToElapsed(t *testing.T) {
	c := New()
	c.Advance(time.Second)

	fired := false
	c.After(500*time.Millisecond, func() { fired = true })
	c.Advance(400 * time.Millisecond)
	assert.False(t, fired)
	c.Advance(100 * time.Millisecond)
	assert.True(t, fired)
}

func TestCancel(t *testing.T) {
	c := New()
	fired := false
	id := c.After(time.Millisecond, func() { fired = true })

	assert.True(t, c.Cancel(id))
	assert.False(t, c.Cancel(id))

	c.Advance(time.Second)
	assert.False(t, fired)
}

func TestCallbackMaySchedule(t *testing.T) {
	c := New()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			c.After(100*time.Millisecond, tick)
		}
	}
	c.After(100*time.Millisecond, tick)

	for range 5 {
		c.Advance(100 * time.Millisecond)
	}
	assert.Equal(t, 3, count)
	assert.Zero(t, c.Pending())
}
