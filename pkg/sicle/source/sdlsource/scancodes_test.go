package sdlsource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

func TestEveryKeyboardKeyHasAScancode(t *testing.T) {
	seen := make(map[uint32]bool)
	for _, k := range keys.KeyboardKeys() {
		sc, ok := Scancode(k)
		if assert.True(t, ok, "missing scancode for %s", k) {
			assert.False(t, seen[uint32(sc)], "scancode for %s reused", k)
			seen[uint32(sc)] = true
		}
	}
}

func TestScancodeRejectsJoystickKeys(t *testing.T) {
	_, ok := Scancode(keys.JoystickButton(1, 0))
	assert.False(t, ok)
}
