// Package sdlsource reads keyboard and joystick state through SDL2.
//
// The host owns the window and the event loop. Once per frame, after pumping
// or polling SDL events, call Poll and then the router's Tick.
package sdlsource

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sicle-games/sicle/pkg/sicle"
	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/internal/edge"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

const axisMax = 32767.0

// AxisMapping describes where an axis value comes from. The joystick axis
// wins when it is outside the rest position; otherwise the keyboard pair,
// if set, produces -1, 0 or 1.
type AxisMapping struct {
	Player   int // 1-based; 0 reads the first joystick that reports a value
	Index    int // raw joystick axis number
	Invert   bool
	Negative keys.Key
	Positive keys.Key
}

// DefaultAxes matches the usual two-stick layout with arrow key fallbacks on
// the generic axes.
var DefaultAxes = map[keys.Axis]AxisMapping{
	keys.AxisHorizontal:      {Index: 0, Negative: keys.LeftArrow, Positive: keys.RightArrow},
	keys.AxisVertical:        {Index: 1, Invert: true, Negative: keys.DownArrow, Positive: keys.UpArrow},
	keys.AxisLeftHorizontal:  {Index: 0},
	keys.AxisLeftVertical:    {Index: 1},
	keys.AxisRightHorizontal: {Index: 3},
	keys.AxisRightVertical:   {Index: 4},
	keys.AxisLeftTrigger:     {Index: 2},
	keys.AxisRightTrigger:    {Index: 5},
}

// Source implements router.Source over SDL keyboard and joystick state.
type Source struct {
	edges     *edge.Tracker
	scancodes map[keys.Key]sdl.Scancode
	joysticks []*sdl.Joystick
	axes      map[keys.Axis]AxisMapping
	values    map[keys.Axis]float64
}

// Option configures a Source.
type Option func(*Source)

// WithAxes replaces the axis mappings.
func WithAxes(axes map[keys.Axis]AxisMapping) Option {
	return func(s *Source) {
		s.axes = axes
	}
}

// New initialises the SDL input subsystems and opens every attached joystick.
func New(opts ...Option) (*Source, error) {
	if err := internal.InitSDLInput(); err != nil {
		return nil, sicle.NewSourceError("init_sdl", err)
	}

	s := &Source{
		edges:     edge.New(),
		scancodes: keyboardScancodes,
		axes:      DefaultAxes,
		values:    make(map[keys.Axis]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Refresh()
	return s, nil
}

// Refresh closes and reopens joysticks. Call it after SDL reports a device
// being added or removed. Buttons held on a pad that is gone are released on
// the next Poll; keyboard state is untouched.
func (s *Source) Refresh() {
	s.closeJoysticks()

	n := sdl.NumJoysticks()
	for i := 0; i < n && len(s.joysticks) < keys.Joysticks; i++ {
		j := sdl.JoystickOpen(i)
		if j == nil {
			internal.GetInternalLogger().Warn("Failed to open joystick", "index", i, "error", sdl.GetError())
			continue
		}
		internal.GetInternalLogger().Debug("Opened joystick",
			"index", i, "name", j.Name(), "buttons", j.NumButtons(), "axes", j.NumAxes())
		s.joysticks = append(s.joysticks, j)
	}
}

// Joysticks returns the number of open joysticks.
func (s *Source) Joysticks() int {
	return len(s.joysticks)
}

// Poll samples SDL state and starts a new frame.
func (s *Source) Poll() {
	sdl.PumpEvents()

	state := sdl.GetKeyboardState()
	for k, sc := range s.scancodes {
		if int(sc) < len(state) {
			s.edges.Set(k, state[sc] != 0)
		}
	}

	pads := make([]buttonReader, len(s.joysticks))
	for i, j := range s.joysticks {
		pads[i] = j
	}
	setJoystickButtons(s.edges, pads)

	s.edges.Advance()

	for a, m := range s.axes {
		s.values[a] = s.readAxis(m)
	}
}

type buttonReader interface {
	NumButtons() int
	Button(button int) byte
}

// setJoystickButtons records every joystick slot. Slots without an open pad
// or past the pad's button count read as released.
func setJoystickButtons(edges *edge.Tracker, pads []buttonReader) {
	var anyPressed [keys.JoystickButtons]bool
	for p := range keys.Joysticks {
		var pad buttonReader
		n := 0
		if p < len(pads) {
			pad = pads[p]
			n = min(pad.NumButtons(), keys.JoystickButtons)
		}
		for b := range keys.JoystickButtons {
			pressed := b < n && pad.Button(b) != 0
			edges.Set(keys.JoystickButton(p+1, b), pressed)
			anyPressed[b] = anyPressed[b] || pressed
		}
	}
	for b, pressed := range anyPressed {
		edges.Set(keys.JoystickButton(0, b), pressed)
	}
}

func (s *Source) readAxis(m AxisMapping) float64 {
	var v float64
	switch {
	case m.Player > 0 && m.Player <= len(s.joysticks):
		v = joystickAxis(s.joysticks[m.Player-1], m.Index)
	case m.Player == 0:
		for _, j := range s.joysticks {
			if v = joystickAxis(j, m.Index); v != 0 {
				break
			}
		}
	}
	if m.Invert {
		v = -v
	}
	if v != 0 {
		return v
	}

	if m.Negative != keys.None && s.edges.Held(m.Negative) {
		v--
	}
	if m.Positive != keys.None && s.edges.Held(m.Positive) {
		v++
	}
	return v
}

func joystickAxis(j *sdl.Joystick, index int) float64 {
	if index < 0 || index >= j.NumAxes() {
		return 0
	}
	v := float64(j.Axis(index)) / axisMax
	return max(-1, min(1, v))
}

func (s *Source) KeyDown(k keys.Key) bool {
	return s.edges.Down(k)
}

func (s *Source) KeyHeld(k keys.Key) bool {
	return s.edges.Held(k)
}

func (s *Source) KeyUp(k keys.Key) bool {
	return s.edges.Up(k)
}

func (s *Source) Axis(a keys.Axis) float64 {
	return s.values[a]
}

// Close closes the joysticks and releases the SDL input subsystems.
func (s *Source) Close() {
	s.closeJoysticks()
	internal.QuitSDLInput()
}

func (s *Source) closeJoysticks() {
	for _, j := range s.joysticks {
		j.Close()
	}
	s.joysticks = nil
}
