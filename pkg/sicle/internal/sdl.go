package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// sdlInputSubsystems are the SDL subsystems an input source needs. Video is
// left to the host: keyboard state only updates for a window it created.
const sdlInputSubsystems = sdl.INIT_EVENTS | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER

// InitSDLInput starts the SDL input subsystems. It is safe to call when the
// host has already initialised SDL; SDL reference counts subsystems.
func InitSDLInput() error {
	if err := sdl.InitSubSystem(sdlInputSubsystems); err != nil {
		GetInternalLogger().Error("Failed to initialise SDL input", "error", err)
		return err
	}
	sdl.JoystickEventState(sdl.ENABLE)
	return nil
}

// QuitSDLInput releases the subsystems taken by InitSDLInput.
func QuitSDLInput() {
	sdl.QuitSubSystem(sdlInputSubsystems)
}
