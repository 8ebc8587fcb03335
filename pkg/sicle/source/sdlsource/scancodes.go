package sdlsource

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

var keyboardScancodes = map[keys.Key]sdl.Scancode{
	keys.A: sdl.SCANCODE_A,
	keys.B: sdl.SCANCODE_B,
	keys.C: sdl.SCANCODE_C,
	keys.D: sdl.SCANCODE_D,
	keys.E: sdl.SCANCODE_E,
	keys.F: sdl.SCANCODE_F,
	keys.G: sdl.SCANCODE_G,
	keys.H: sdl.SCANCODE_H,
	keys.I: sdl.SCANCODE_I,
	keys.J: sdl.SCANCODE_J,
	keys.K: sdl.SCANCODE_K,
	keys.L: sdl.SCANCODE_L,
	keys.M: sdl.SCANCODE_M,
	keys.N: sdl.SCANCODE_N,
	keys.O: sdl.SCANCODE_O,
	keys.P: sdl.SCANCODE_P,
	keys.Q: sdl.SCANCODE_Q,
	keys.R: sdl.SCANCODE_R,
	keys.S: sdl.SCANCODE_S,
	keys.T: sdl.SCANCODE_T,
	keys.U: sdl.SCANCODE_U,
	keys.V: sdl.SCANCODE_V,
	keys.W: sdl.SCANCODE_W,
	keys.X: sdl.SCANCODE_X,
	keys.Y: sdl.SCANCODE_Y,
	keys.Z: sdl.SCANCODE_Z,

	keys.Alpha0: sdl.SCANCODE_0,
	keys.Alpha1: sdl.SCANCODE_1,
	keys.Alpha2: sdl.SCANCODE_2,
	keys.Alpha3: sdl.SCANCODE_3,
	keys.Alpha4: sdl.SCANCODE_4,
	keys.Alpha5: sdl.SCANCODE_5,
	keys.Alpha6: sdl.SCANCODE_6,
	keys.Alpha7: sdl.SCANCODE_7,
	keys.Alpha8: sdl.SCANCODE_8,
	keys.Alpha9: sdl.SCANCODE_9,

	keys.UpArrow:    sdl.SCANCODE_UP,
	keys.DownArrow:  sdl.SCANCODE_DOWN,
	keys.LeftArrow:  sdl.SCANCODE_LEFT,
	keys.RightArrow: sdl.SCANCODE_RIGHT,

	keys.Space:        sdl.SCANCODE_SPACE,
	keys.Return:       sdl.SCANCODE_RETURN,
	keys.Escape:       sdl.SCANCODE_ESCAPE,
	keys.Tab:          sdl.SCANCODE_TAB,
	keys.Backspace:    sdl.SCANCODE_BACKSPACE,
	keys.LeftShift:    sdl.SCANCODE_LSHIFT,
	keys.RightShift:   sdl.SCANCODE_RSHIFT,
	keys.LeftControl:  sdl.SCANCODE_LCTRL,
	keys.RightControl: sdl.SCANCODE_RCTRL,
	keys.LeftAlt:      sdl.SCANCODE_LALT,
	keys.RightAlt:     sdl.SCANCODE_RALT,

	keys.F1:  sdl.SCANCODE_F1,
	keys.F2:  sdl.SCANCODE_F2,
	keys.F3:  sdl.SCANCODE_F3,
	keys.F4:  sdl.SCANCODE_F4,
	keys.F5:  sdl.SCANCODE_F5,
	keys.F6:  sdl.SCANCODE_F6,
	keys.F7:  sdl.SCANCODE_F7,
	keys.F8:  sdl.SCANCODE_F8,
	keys.F9:  sdl.SCANCODE_F9,
	keys.F10: sdl.SCANCODE_F10,
	keys.F11: sdl.SCANCODE_F11,
	keys.F12: sdl.SCANCODE_F12,
}

// Scancode returns the SDL scancode read for a keyboard key.
func Scancode(k keys.Key) (sdl.Scancode, bool) {
	sc, ok := keyboardScancodes[k]
	return sc, ok
}
