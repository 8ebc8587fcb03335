package keys

import "github.com/sicle-games/sicle/pkg/sicle/constants"

// Raw joystick button numbers reported by each platform's driver for the
// logical pad buttons. Linux and Windows expose the D-pad as axes, so those
// buttons are absent there.
var gamepadButtonTables = map[constants.Platform]map[constants.GamepadButton]int{
	constants.PlatformLinux: {
		constants.GamepadButtonA:          0,
		constants.GamepadButtonB:          1,
		constants.GamepadButtonX:          2,
		constants.GamepadButtonY:          3,
		constants.GamepadButtonLB:         4,
		constants.GamepadButtonRB:         5,
		constants.GamepadButtonBack:       6,
		constants.GamepadButtonStart:      7,
		constants.GamepadButtonLeftStick:  9,
		constants.GamepadButtonRightStick: 10,
	},
	constants.PlatformOSX: {
		constants.GamepadButtonDpadUp:     5,
		constants.GamepadButtonDpadDown:   6,
		constants.GamepadButtonDpadLeft:   7,
		constants.GamepadButtonDpadRight:  8,
		constants.GamepadButtonStart:      9,
		constants.GamepadButtonBack:       10,
		constants.GamepadButtonLeftStick:  11,
		constants.GamepadButtonRightStick: 12,
		constants.GamepadButtonLB:         13,
		constants.GamepadButtonRB:         14,
		constants.GamepadButtonA:          16,
		constants.GamepadButtonB:          17,
		constants.GamepadButtonX:          18,
		constants.GamepadButtonY:          19,
	},
	constants.PlatformWindows: {
		constants.GamepadButtonA:          0,
		constants.GamepadButtonB:          1,
		constants.GamepadButtonX:          2,
		constants.GamepadButtonY:          3,
		constants.GamepadButtonLB:         4,
		constants.GamepadButtonRB:         5,
		constants.GamepadButtonBack:       6,
		constants.GamepadButtonStart:      7,
		constants.GamepadButtonLeftStick:  8,
		constants.GamepadButtonRightStick: 9,
	},
}

// ForGamepad returns the key a logical pad button produces on platform for
// the given player. Players 1 through Joysticks get that pad's key; any other
// player number yields the any-joystick key. None is returned when the
// platform has no mapping for the button.
func ForGamepad(button constants.GamepadButton, platform constants.Platform, player int) Key {
	table, ok := gamepadButtonTables[platform]
	if !ok {
		return None
	}
	raw, ok := table[button]
	if !ok {
		return None
	}
	if player < 1 || player > Joysticks {
		player = 0
	}
	return JoystickButton(player, raw)
}

// GamepadButtonFor is the inverse of ForGamepad: it reports which logical
// button a joystick key represents on platform.
func GamepadButtonFor(k Key, platform constants.Platform) (constants.GamepadButton, bool) {
	_, raw, ok := k.Joystick()
	if !ok {
		return constants.GamepadButtonNone, false
	}
	for button, b := range gamepadButtonTables[platform] {
		if b == raw {
			return button, true
		}
	}
	return constants.GamepadButtonNone, false
}
