// Package edge turns raw key level changes into per-frame down/held/up
// answers. Sources feed it level changes as they observe them and call
// Advance once per frame; the answers then stay fixed until the next Advance.
package edge

import (
	"maps"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// Tracker latches key edges between frames. A press and release that both
// happen between two Advance calls still produce a down edge and an up edge
// in the same frame.
type Tracker struct {
	level    map[keys.Key]bool
	pressed  map[keys.Key]bool
	released map[keys.Key]bool

	frameDown map[keys.Key]bool
	frameHeld map[keys.Key]bool
	frameUp   map[keys.Key]bool
}

func New() *Tracker {
	return &Tracker{
		level:     make(map[keys.Key]bool),
		pressed:   make(map[keys.Key]bool),
		released:  make(map[keys.Key]bool),
		frameDown: make(map[keys.Key]bool),
		frameHeld: make(map[keys.Key]bool),
		frameUp:   make(map[keys.Key]bool),
	}
}

// Set records the key's current level. Repeating the same level is ignored,
// so polled sources can call it for every key every frame.
func (t *Tracker) Set(k keys.Key, down bool) {
	if t.level[k] == down {
		return
	}
	if down {
		t.level[k] = true
		t.pressed[k] = true
	} else {
		delete(t.level, k)
		t.released[k] = true
	}
}

// Advance publishes the changes recorded since the previous call as the
// current frame.
func (t *Tracker) Advance() {
	t.frameDown, t.pressed = t.pressed, t.frameDown
	t.frameUp, t.released = t.released, t.frameUp
	clear(t.pressed)
	clear(t.released)
	t.frameHeld = maps.Clone(t.level)
}

func (t *Tracker) Down(k keys.Key) bool {
	return t.frameDown[k]
}

func (t *Tracker) Held(k keys.Key) bool {
	return t.frameHeld[k]
}

func (t *Tracker) Up(k keys.Key) bool {
	return t.frameUp[k]
}

// Level reports the most recently recorded level, ignoring frame latching.
func (t *Tracker) Level(k keys.Key) bool {
	return t.level[k]
}
