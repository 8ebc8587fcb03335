package sdlsource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicle-games/sicle/pkg/sicle/internal/edge"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

type fakePad struct {
	buttons []byte
}

func (p *fakePad) NumButtons() int {
	return len(p.buttons)
}

func (p *fakePad) Button(button int) byte {
	return p.buttons[button]
}

func TestUnpluggedPadReleasesHeldButtons(t *testing.T) {
	edges := edge.New()
	pad := &fakePad{buttons: []byte{1, 0}}
	held := keys.JoystickButton(1, 0)
	anyHeld := keys.JoystickButton(0, 0)

	// Keyboard held through the hot-plug
	edges.Set(keys.LeftArrow, true)
	setJoystickButtons(edges, []buttonReader{pad})
	edges.Advance()
	setJoystickButtons(edges, []buttonReader{pad})
	edges.Advance()
	assert.True(t, edges.Held(held))
	assert.True(t, edges.Held(anyHeld))

	edges.Set(keys.LeftArrow, true)
	setJoystickButtons(edges, nil)
	edges.Advance()

	assert.True(t, edges.Up(held))
	assert.False(t, edges.Held(held))
	assert.True(t, edges.Up(anyHeld))
	assert.False(t, edges.Down(keys.LeftArrow), "a key held through a refresh is not pressed again")
	assert.True(t, edges.Held(keys.LeftArrow))
}

func TestPadKeepsHeldButtonsWhenAnotherIsAdded(t *testing.T) {
	edges := edge.New()
	first := &fakePad{buttons: []byte{0, 1}}
	held := keys.JoystickButton(1, 1)

	setJoystickButtons(edges, []buttonReader{first})
	edges.Advance()
	assert.True(t, edges.Down(held))

	setJoystickButtons(edges, []buttonReader{first, &fakePad{buttons: []byte{0, 0, 0}}})
	edges.Advance()
	assert.False(t, edges.Down(held))
	assert.False(t, edges.Up(held))
	assert.True(t, edges.Held(held))
}

func TestButtonsPastPadCountReadReleased(t *testing.T) {
	edges := edge.New()
	setJoystickButtons(edges, []buttonReader{&fakePad{buttons: []byte{1}}})
	edges.Advance()

	assert.True(t, edges.Held(keys.JoystickButton(1, 0)))
	assert.False(t, edges.Held(keys.JoystickButton(1, 1)))
	assert.False(t, edges.Held(keys.JoystickButton(2, 0)))
}
