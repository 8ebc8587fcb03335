// Package keys defines the identifiers the router binds listeners to: physical
// keys (keyboard keys and joystick buttons) and named analog axes.
package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Parse for names that do not identify a key.
var ErrUnknownKey = errors.New("unknown key")

// Key identifies a physical input. Keyboard keys occupy the low range;
// joystick buttons are encoded from joystickBase upward as
// (player, button) pairs. The zero value is None.
type Key uint16

// Axis names an analog input such as a stick or trigger.
type Axis string

// Axes with a conventional meaning. Sources map these to device axes.
const (
	AxisHorizontal      Axis = "Horizontal"
	AxisVertical        Axis = "Vertical"
	AxisLeftHorizontal  Axis = "LeftHorizontal"
	AxisLeftVertical    Axis = "LeftVertical"
	AxisRightHorizontal Axis = "RightHorizontal"
	AxisRightVertical   Axis = "RightVertical"
	AxisLeftTrigger     Axis = "LeftTrigger"
	AxisRightTrigger    Axis = "RightTrigger"
)

const (
	joystickBase = 0x1000

	// JoystickButtons is the number of raw buttons addressable per joystick.
	JoystickButtons = 20
	// Joysticks is the number of addressable joysticks, not counting the
	// any-joystick slot 0.
	Joysticks = 4
)

// Keyboard keys.
const (
	None Key = iota
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	Alpha0
	Alpha1
	Alpha2
	Alpha3
	Alpha4
	Alpha5
	Alpha6
	Alpha7
	Alpha8
	Alpha9
	UpArrow
	DownArrow
	LeftArrow
	RightArrow
	Space
	Return
	Escape
	Tab
	Backspace
	LeftShift
	RightShift
	LeftControl
	RightControl
	LeftAlt
	RightAlt
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	lastKeyboardKey
)

var keyboardNames = [...]string{
	None:         "None",
	A:            "A",
	B:            "B",
	C:            "C",
	D:            "D",
	E:            "E",
	F:            "F",
	G:            "G",
	H:            "H",
	I:            "I",
	J:            "J",
	K:            "K",
	L:            "L",
	M:            "M",
	N:            "N",
	O:            "O",
	P:            "P",
	Q:            "Q",
	R:            "R",
	S:            "S",
	T:            "T",
	U:            "U",
	V:            "V",
	W:            "W",
	X:            "X",
	Y:            "Y",
	Z:            "Z",
	Alpha0:       "Alpha0",
	Alpha1:       "Alpha1",
	Alpha2:       "Alpha2",
	Alpha3:       "Alpha3",
	Alpha4:       "Alpha4",
	Alpha5:       "Alpha5",
	Alpha6:       "Alpha6",
	Alpha7:       "Alpha7",
	Alpha8:       "Alpha8",
	Alpha9:       "Alpha9",
	UpArrow:      "UpArrow",
	DownArrow:    "DownArrow",
	LeftArrow:    "LeftArrow",
	RightArrow:   "RightArrow",
	Space:        "Space",
	Return:       "Return",
	Escape:       "Escape",
	Tab:          "Tab",
	Backspace:    "Backspace",
	LeftShift:    "LeftShift",
	RightShift:   "RightShift",
	LeftControl:  "LeftControl",
	RightControl: "RightControl",
	LeftAlt:      "LeftAlt",
	RightAlt:     "RightAlt",
	F1:           "F1",
	F2:           "F2",
	F3:           "F3",
	F4:           "F4",
	F5:           "F5",
	F6:           "F6",
	F7:           "F7",
	F8:           "F8",
	F9:           "F9",
	F10:          "F10",
	F11:          "F11",
	F12:          "F12",
}

// KeyboardKeys returns every keyboard key in declaration order, excluding None.
func KeyboardKeys() []Key {
	out := make([]Key, 0, int(lastKeyboardKey)-1)
	for k := A; k < lastKeyboardKey; k++ {
		out = append(out, k)
	}
	return out
}

// JoystickButton returns the key for a raw button on a joystick. Player 0 is
// the any-joystick slot; players 1 through Joysticks address one pad each.
// Out of range arguments yield None.
func JoystickButton(player, button int) Key {
	if player < 0 || player > Joysticks || button < 0 || button >= JoystickButtons {
		return None
	}
	return Key(joystickBase + player*JoystickButtons + button)
}

// IsKeyboard reports whether k is a keyboard key.
func (k Key) IsKeyboard() bool {
	return k > None && k < lastKeyboardKey
}

// IsJoystick reports whether k is a joystick button.
func (k Key) IsJoystick() bool {
	return k >= joystickBase && int(k) < joystickBase+(Joysticks+1)*JoystickButtons
}

// Joystick decodes a joystick key. ok is false for keyboard keys.
func (k Key) Joystick() (player, button int, ok bool) {
	if !k.IsJoystick() {
		return 0, 0, false
	}
	off := int(k) - joystickBase
	return off / JoystickButtons, off % JoystickButtons, true
}

func (k Key) String() string {
	if k < lastKeyboardKey {
		return keyboardNames[k]
	}
	if player, button, ok := k.Joystick(); ok {
		if player == 0 {
			return "JoystickButton" + strconv.Itoa(button)
		}
		return fmt.Sprintf("Joystick%dButton%d", player, button)
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Parse returns the key named s. Names are those produced by String and are
// matched case-insensitively.
func Parse(s string) (Key, error) {
	name := strings.TrimSpace(s)
	for i, n := range keyboardNames {
		if strings.EqualFold(n, name) {
			return Key(i), nil
		}
	}

	lower := strings.ToLower(name)
	if rest, ok := strings.CutPrefix(lower, "joystickbutton"); ok {
		if button, err := strconv.Atoi(rest); err == nil {
			if k := JoystickButton(0, button); k != None {
				return k, nil
			}
		}
		return None, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	if rest, ok := strings.CutPrefix(lower, "joystick"); ok {
		playerPart, buttonPart, found := strings.Cut(rest, "button")
		if found {
			player, perr := strconv.Atoi(playerPart)
			button, berr := strconv.Atoi(buttonPart)
			if perr == nil && berr == nil && player > 0 {
				if k := JoystickButton(player, button); k != None {
					return k, nil
				}
			}
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// MarshalText implements encoding.TextMarshaler so keys read naturally in
// TOML and JSON documents.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
