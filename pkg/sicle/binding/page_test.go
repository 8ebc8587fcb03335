package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

func TestPageWrappersSelectKind(t *testing.T) {
	p := NewPage("Menu", discardLogger())
	assert.Equal(t, PageName("Menu"), p.Name())

	var calls []string
	down := p.AddListenerDown(keys.Return, func() { calls = append(calls, "down") }, false)
	p.AddListenerHeld(keys.Return, func() { calls = append(calls, "held") }, false)
	p.AddListenerUp(keys.Return, func() { calls = append(calls, "up") }, false)

	for _, kind := range Kinds {
		p.Event(kind, keys.Return).Invoke()
	}
	assert.Equal(t, []string{"down", "held", "up"}, calls)

	assert.True(t, p.RemoveListenerDown(keys.Return, down))
	assert.Zero(t, p.Event(KindDown, keys.Return).Len())
}

func TestPageSetAndRemoveKeyEvents(t *testing.T) {
	p := NewPage("Menu", discardLogger())
	shared := NewEvent(func() {})

	p.SetKeyDownEvent(keys.Space, shared)
	p.SetKeyHeldEvent(keys.Space, shared)
	p.SetKeyUpEvent(keys.Space, shared)

	for _, kind := range Kinds {
		assert.Same(t, shared, p.Event(kind, keys.Space), kind.String())
	}

	p.RemoveKeyDown(keys.Space)
	p.RemoveKeyHeld(keys.Space)
	p.RemoveKeyUp(keys.Space)
	for _, kind := range Kinds {
		assert.False(t, p.Has(kind, keys.Space), kind.String())
	}
}

func TestPageRemoveListenerHeldAndUp(t *testing.T) {
	p := NewPage("Menu", discardLogger())

	held := p.AddListenerHeld(keys.A, func() {}, false)
	up := p.AddListenerUp(keys.A, func() {}, false)

	assert.True(t, p.RemoveListenerHeld(keys.A, held))
	assert.True(t, p.RemoveListenerUp(keys.A, up))
	assert.False(t, p.RemoveListenerUp(keys.A, up))
}

func TestPageSharedEventAcrossPages(t *testing.T) {
	game := NewPage("Default", discardLogger())
	paused := NewPage("Paused", discardLogger())

	count := 0
	ev := NewEvent(func() { count++ })
	game.SetKeyDownEvent(keys.M, ev)
	paused.SetKeyDownEvent(keys.M, ev)

	// Adding to the shared event through one page is visible from the other
	game.AddListenerDown(keys.M, func() { count += 10 }, false)
	paused.Event(KindDown, keys.M).Invoke()
	assert.Equal(t, 11, count)
}
