package evdevsource

import (
	"github.com/holoplot/go-evdev"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

var keyboardCodes = map[evdev.EvCode]keys.Key{
	evdev.KEY_A: keys.A,
	evdev.KEY_B: keys.B,
	evdev.KEY_C: keys.C,
	evdev.KEY_D: keys.D,
	evdev.KEY_E: keys.E,
	evdev.KEY_F: keys.F,
	evdev.KEY_G: keys.G,
	evdev.KEY_H: keys.H,
	evdev.KEY_I: keys.I,
	evdev.KEY_J: keys.J,
	evdev.KEY_K: keys.K,
	evdev.KEY_L: keys.L,
	evdev.KEY_M: keys.M,
	evdev.KEY_N: keys.N,
	evdev.KEY_O: keys.O,
	evdev.KEY_P: keys.P,
	evdev.KEY_Q: keys.Q,
	evdev.KEY_R: keys.R,
	evdev.KEY_S: keys.S,
	evdev.KEY_T: keys.T,
	evdev.KEY_U: keys.U,
	evdev.KEY_V: keys.V,
	evdev.KEY_W: keys.W,
	evdev.KEY_X: keys.X,
	evdev.KEY_Y: keys.Y,
	evdev.KEY_Z: keys.Z,

	evdev.KEY_0: keys.Alpha0,
	evdev.KEY_1: keys.Alpha1,
	evdev.KEY_2: keys.Alpha2,
	evdev.KEY_3: keys.Alpha3,
	evdev.KEY_4: keys.Alpha4,
	evdev.KEY_5: keys.Alpha5,
	evdev.KEY_6: keys.Alpha6,
	evdev.KEY_7: keys.Alpha7,
	evdev.KEY_8: keys.Alpha8,
	evdev.KEY_9: keys.Alpha9,

	evdev.KEY_UP:    keys.UpArrow,
	evdev.KEY_DOWN:  keys.DownArrow,
	evdev.KEY_LEFT:  keys.LeftArrow,
	evdev.KEY_RIGHT: keys.RightArrow,

	evdev.KEY_SPACE:      keys.Space,
	evdev.KEY_ENTER:      keys.Return,
	evdev.KEY_ESC:        keys.Escape,
	evdev.KEY_TAB:        keys.Tab,
	evdev.KEY_BACKSPACE:  keys.Backspace,
	evdev.KEY_LEFTSHIFT:  keys.LeftShift,
	evdev.KEY_RIGHTSHIFT: keys.RightShift,
	evdev.KEY_LEFTCTRL:   keys.LeftControl,
	evdev.KEY_RIGHTCTRL:  keys.RightControl,
	evdev.KEY_LEFTALT:    keys.LeftAlt,
	evdev.KEY_RIGHTALT:   keys.RightAlt,

	evdev.KEY_F1:  keys.F1,
	evdev.KEY_F2:  keys.F2,
	evdev.KEY_F3:  keys.F3,
	evdev.KEY_F4:  keys.F4,
	evdev.KEY_F5:  keys.F5,
	evdev.KEY_F6:  keys.F6,
	evdev.KEY_F7:  keys.F7,
	evdev.KEY_F8:  keys.F8,
	evdev.KEY_F9:  keys.F9,
	evdev.KEY_F10: keys.F10,
	evdev.KEY_F11: keys.F11,
	evdev.KEY_F12: keys.F12,
}

// DefaultButtons numbers gamepad buttons the way the Linux joystick driver
// does, which is the numbering the Linux gamepad table in package keys uses.
var DefaultButtons = map[evdev.EvCode]int{
	evdev.BTN_SOUTH:  0,
	evdev.BTN_EAST:   1,
	evdev.BTN_NORTH:  2,
	evdev.BTN_WEST:   3,
	evdev.BTN_TL:     4,
	evdev.BTN_TR:     5,
	evdev.BTN_SELECT: 6,
	evdev.BTN_START:  7,
	evdev.BTN_MODE:   8,
	evdev.BTN_THUMBL: 9,
	evdev.BTN_THUMBR: 10,
}

// AxisMapping reads one absolute axis. Unipolar axes such as triggers map
// to [0, 1]; all others map to [-1, 1] around the centre of their range.
type AxisMapping struct {
	Code     evdev.EvCode
	Invert   bool
	Unipolar bool
}

// DefaultAxes reads the sticks and triggers, with the hat switch standing in
// for the generic axes when the left stick is at rest. Vertical axes are
// inverted so that up is positive.
var DefaultAxes = map[keys.Axis][]AxisMapping{
	keys.AxisHorizontal:      {{Code: evdev.ABS_X}, {Code: evdev.ABS_HAT0X}},
	keys.AxisVertical:        {{Code: evdev.ABS_Y, Invert: true}, {Code: evdev.ABS_HAT0Y, Invert: true}},
	keys.AxisLeftHorizontal:  {{Code: evdev.ABS_X}},
	keys.AxisLeftVertical:    {{Code: evdev.ABS_Y, Invert: true}},
	keys.AxisRightHorizontal: {{Code: evdev.ABS_RX}},
	keys.AxisRightVertical:   {{Code: evdev.ABS_RY, Invert: true}},
	keys.AxisLeftTrigger:     {{Code: evdev.ABS_Z, Unipolar: true}},
	keys.AxisRightTrigger:    {{Code: evdev.ABS_RZ, Unipolar: true}},
}
