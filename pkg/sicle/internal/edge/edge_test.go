package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

func TestPressHoldRelease(t *testing.T) {
	tr := New()

	tr.Set(keys.A, true)
	assert.False(t, tr.Down(keys.A), "nothing is visible before Advance")
	assert.True(t, tr.Level(keys.A))

	tr.Advance()
	assert.True(t, tr.Down(keys.A))
	assert.True(t, tr.Held(keys.A))
	assert.False(t, tr.Up(keys.A))

	tr.Set(keys.A, true)
	tr.Advance()
	assert.False(t, tr.Down(keys.A), "a repeated level is not a new press")
	assert.True(t, tr.Held(keys.A))

	tr.Set(keys.A, false)
	tr.Advance()
	assert.False(t, tr.Held(keys.A))
	assert.True(t, tr.Up(keys.A))

	tr.Advance()
	assert.False(t, tr.Up(keys.A))
}

func TestTapBetweenFrames(t *testing.T) {
	tr := New()

	tr.Set(keys.Space, true)
	tr.Set(keys.Space, false)
	tr.Advance()

	assert.True(t, tr.Down(keys.Space))
	assert.True(t, tr.Up(keys.Space))
	assert.False(t, tr.Held(keys.Space))
}

func TestReleaseOfUnpressedKeyIsIgnored(t *testing.T) {
	tr := New()
	tr.Set(keys.B, false)
	tr.Advance()
	assert.False(t, tr.Up(keys.B))
}

func TestHeldKeyKeepsStateAcrossUnrelatedRelease(t *testing.T) {
	tr := New()
	tr.Set(keys.LeftArrow, true)
	pad := keys.JoystickButton(1, 0)
	tr.Set(pad, true)
	tr.Advance()
	tr.Advance()

	tr.Set(pad, false)
	tr.Set(keys.LeftArrow, true)
	tr.Advance()
	assert.True(t, tr.Up(pad))
	assert.False(t, tr.Held(pad))
	assert.False(t, tr.Down(keys.LeftArrow))
	assert.True(t, tr.Held(keys.LeftArrow))
}
