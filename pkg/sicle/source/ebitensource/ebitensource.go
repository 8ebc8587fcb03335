// Package ebitensource reads keyboard and gamepad state from an Ebitengine
// game. Call Poll at the start of Game.Update, then the router's Tick:
//
//	func (g *Game) Update() error {
//		g.input.Poll()
//		g.router.Tick()
//		return nil
//	}
package ebitensource

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// Source implements router.Source over ebiten's per-tick input state.
// Gamepads are numbered as players in connection order.
type Source struct {
	down map[keys.Key]bool
	held map[keys.Key]bool
	up   map[keys.Key]bool
	axes map[keys.Axis]float64

	gamepads []ebiten.GamepadID
}

func New() *Source {
	return &Source{
		down: make(map[keys.Key]bool),
		held: make(map[keys.Key]bool),
		up:   make(map[keys.Key]bool),
		axes: make(map[keys.Axis]float64),
	}
}

// Poll latches the state ebiten reports for the current tick.
func (s *Source) Poll() {
	clear(s.down)
	clear(s.held)
	clear(s.up)
	clear(s.axes)

	for k, ek := range keyboardKeys {
		s.latch(k,
			inpututil.IsKeyJustPressed(ek),
			ebiten.IsKeyPressed(ek),
			inpututil.IsKeyJustReleased(ek))
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for i, id := range s.gamepads {
		if i >= keys.Joysticks {
			break
		}
		s.pollGamepad(i+1, id)
	}

	s.pollAxes()
}

func (s *Source) pollGamepad(player int, id ebiten.GamepadID) {
	n := min(ebiten.GamepadButtonCount(id), keys.JoystickButtons)
	for b := 0; b < n; b++ {
		eb := ebiten.GamepadButton(b)
		down := inpututil.IsGamepadButtonJustPressed(id, eb)
		held := ebiten.IsGamepadButtonPressed(id, eb)
		up := inpututil.IsGamepadButtonJustReleased(id, eb)

		s.latch(keys.JoystickButton(player, b), down, held, up)
		s.latch(keys.JoystickButton(0, b), down, held, up)
	}
}

// latch ORs into the frame sets so several pads can share the any-joystick slot.
func (s *Source) latch(k keys.Key, down, held, up bool) {
	if down {
		s.down[k] = true
	}
	if held {
		s.held[k] = true
	}
	if up {
		s.up[k] = true
	}
}

func (s *Source) pollAxes() {
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		s.firstNonZero(keys.AxisLeftHorizontal, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		s.firstNonZero(keys.AxisLeftVertical, -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		s.firstNonZero(keys.AxisRightHorizontal, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
		s.firstNonZero(keys.AxisRightVertical, -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))
		s.firstNonZero(keys.AxisLeftTrigger, ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft))
		s.firstNonZero(keys.AxisRightTrigger, ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight))
	}

	s.axes[keys.AxisHorizontal] = s.axes[keys.AxisLeftHorizontal]
	s.axes[keys.AxisVertical] = s.axes[keys.AxisLeftVertical]
	if s.axes[keys.AxisHorizontal] == 0 {
		s.axes[keys.AxisHorizontal] = s.keyPair(keys.LeftArrow, keys.RightArrow)
	}
	if s.axes[keys.AxisVertical] == 0 {
		s.axes[keys.AxisVertical] = s.keyPair(keys.DownArrow, keys.UpArrow)
	}
}

func (s *Source) firstNonZero(a keys.Axis, v float64) {
	if s.axes[a] == 0 {
		s.axes[a] = v
	}
}

func (s *Source) keyPair(negative, positive keys.Key) float64 {
	var v float64
	if s.held[negative] {
		v--
	}
	if s.held[positive] {
		v++
	}
	return v
}

// Gamepads returns the number of connected gamepads seen by the last Poll.
func (s *Source) Gamepads() int {
	return len(s.gamepads)
}

func (s *Source) KeyDown(k keys.Key) bool {
	return s.down[k]
}

func (s *Source) KeyHeld(k keys.Key) bool {
	return s.held[k]
}

func (s *Source) KeyUp(k keys.Key) bool {
	return s.up[k]
}

func (s *Source) Axis(a keys.Axis) float64 {
	return s.axes[a]
}
