// Package constants defines shared constants, types, and configuration values
// used throughout the sicle input routing packages.
package constants

import (
	"runtime"
	"strings"
)

// Environment variable names read by the config package.
const (
	EnvPrefix         = "SICLE_"
	DeadzoneEnvVar    = EnvPrefix + "DEADZONE"
	UseGamepadEnvVar  = EnvPrefix + "USE_GAMEPAD"
	PlatformEnvVar    = EnvPrefix + "PLATFORM"
	PlayerEnvVar      = EnvPrefix + "PLAYER"
	DebugInputEnvVar  = EnvPrefix + "DEBUG_INPUT"
	LogLevelEnvVar    = EnvPrefix + "LOG_LEVEL"
	LogPathEnvVar     = EnvPrefix + "LOG_PATH"
	BindingsEnvVar    = EnvPrefix + "BINDINGS"
	LanguageEnvVar    = EnvPrefix + "LANGUAGE"
	InputDeviceEnvVar = EnvPrefix + "INPUT_DEVICE"
)

// Page names every router registers at construction.
const (
	DefaultPageName = "Default"
	PausedPageName  = "Paused"
)

// DefaultDeadzone is the axis magnitude below which analog input is ignored.
const DefaultDeadzone = 0.2

// AnyPlayer selects the joystick keys that respond to every connected pad.
const AnyPlayer = -1

// MaxPlayers is the highest player index with dedicated joystick keys.
const MaxPlayers = 4

// GamepadButton represents a logical pad button, independent of the driver's
// raw button numbering. The raw number differs per platform; see keys.ForGamepad.
type GamepadButton int

const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonLB
	GamepadButtonRB
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	GamepadButtonDpadRight
	GamepadButtonDpadUp
)

// GamepadButtons lists every assignable button in declaration order.
var GamepadButtons = []GamepadButton{
	GamepadButtonA,
	GamepadButtonB,
	GamepadButtonX,
	GamepadButtonY,
	GamepadButtonBack,
	GamepadButtonStart,
	GamepadButtonLB,
	GamepadButtonRB,
	GamepadButtonLeftStick,
	GamepadButtonRightStick,
	GamepadButtonDpadDown,
	GamepadButtonDpadLeft,
	GamepadButtonDpadRight,
	GamepadButtonDpadUp,
}

func (gb GamepadButton) GetName() string {
	switch gb {
	case GamepadButtonNone:
		return "None"
	case GamepadButtonA:
		return "A"
	case GamepadButtonB:
		return "B"
	case GamepadButtonX:
		return "X"
	case GamepadButtonY:
		return "Y"
	case GamepadButtonBack:
		return "Back"
	case GamepadButtonStart:
		return "Start"
	case GamepadButtonLB:
		return "LB"
	case GamepadButtonRB:
		return "RB"
	case GamepadButtonLeftStick:
		return "LeftStick"
	case GamepadButtonRightStick:
		return "RightStick"
	case GamepadButtonDpadDown:
		return "DpadDown"
	case GamepadButtonDpadLeft:
		return "DpadLeft"
	case GamepadButtonDpadRight:
		return "DpadRight"
	case GamepadButtonDpadUp:
		return "DpadUp"
	default:
		return "Unknown"
	}
}

func (gb GamepadButton) String() string {
	return gb.GetName()
}

// ParseGamepadButton returns the button whose name matches s, ignoring case.
// The second result is false when no button matches.
func ParseGamepadButton(s string) (GamepadButton, bool) {
	if strings.EqualFold(s, "none") || s == "" {
		return GamepadButtonNone, true
	}
	for _, gb := range GamepadButtons {
		if strings.EqualFold(gb.GetName(), s) {
			return gb, true
		}
	}
	return GamepadButtonNone, false
}

// Platform identifies the desktop OS whose driver numbering the gamepad
// tables follow.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux
	PlatformOSX
	PlatformWindows
)

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformOSX:
		return "osx"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParsePlatform accepts the String form as well as GOOS names.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return PlatformLinux
	case "osx", "darwin", "macos":
		return PlatformOSX
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// CurrentPlatform returns the platform the binary was built for.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}
