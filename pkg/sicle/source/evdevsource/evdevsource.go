// Package evdevsource reads a Linux input device directly through evdev.
//
// It suits handhelds and kiosks that run without a display server, where SDL
// has no window to deliver keyboard focus to. A background goroutine reads
// events; Poll latches what arrived since the previous frame.
package evdevsource

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/sicle-games/sicle/pkg/sicle"
	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/internal/edge"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// ErrNoDevice is returned by Find when no device matches.
var ErrNoDevice = errors.New("no matching input device")

// Device is the part of *evdev.InputDevice the source uses.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

type absInfoer interface {
	AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error)
}

// Source implements router.Source over one evdev device. Its buttons are
// reported for the configured player and for the any-joystick slot.
type Source struct {
	dev     Device
	player  int
	buttons map[evdev.EvCode]int
	axes    map[keys.Axis][]AxisMapping

	mu     sync.Mutex
	edges  *edge.Tracker
	raw    map[evdev.EvCode]int32
	info   map[evdev.EvCode]evdev.AbsInfo
	values map[keys.Axis]float64

	running atomic.Bool
	events  atomic.Uint64
}

// Option configures a Source.
type Option func(*Source)

// WithPlayer reports buttons as belonging to player 1 through keys.Joysticks.
// The default is player 1.
func WithPlayer(player int) Option {
	return func(s *Source) {
		if player >= 1 && player <= keys.Joysticks {
			s.player = player
		}
	}
}

// WithButtons replaces the button numbering.
func WithButtons(buttons map[evdev.EvCode]int) Option {
	return func(s *Source) {
		s.buttons = buttons
	}
}

// WithAxes replaces the axis mappings.
func WithAxes(axes map[keys.Axis][]AxisMapping) Option {
	return func(s *Source) {
		s.axes = axes
	}
}

// Open opens the device node at path.
func Open(path string, opts ...Option) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, sicle.NewSourceError("open_device", fmt.Errorf("%s: %w", path, err))
	}
	if name, err := dev.Name(); err == nil {
		internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name)
	}
	return New(dev, opts...), nil
}

// Find resolves a device selector: an absolute device path is returned as is,
// anything else is matched case-insensitively against device names.
func Find(selector string) (string, error) {
	if strings.HasPrefix(selector, "/") {
		return selector, nil
	}
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", sicle.NewSourceError("list_devices", err)
	}
	want := strings.ToLower(selector)
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p.Name), want) {
			return p.Path, nil
		}
	}
	return "", sicle.NewSourceError("find_device", fmt.Errorf("%w: %q", ErrNoDevice, selector))
}

// New wraps an already opened device.
func New(dev Device, opts ...Option) *Source {
	s := &Source{
		dev:     dev,
		player:  1,
		buttons: DefaultButtons,
		axes:    DefaultAxes,
		edges:   edge.New(),
		raw:     make(map[evdev.EvCode]int32),
		info:    make(map[evdev.EvCode]evdev.AbsInfo),
		values:  make(map[keys.Axis]float64),
	}
	for _, opt := range opts {
		opt(s)
	}

	if ai, ok := dev.(absInfoer); ok {
		infos, err := ai.AbsInfos()
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to read axis ranges", "error", err)
		} else {
			s.info = infos
		}
	}
	return s
}

// Run reads events until ctx is cancelled or the device fails. Cancelling ctx
// closes the device, which is the only way to interrupt a blocked read.
func (s *Source) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return sicle.NewSourceError("run", errors.New("already running"))
	}
	defer s.running.Store(false)

	stop := context.AfterFunc(ctx, func() {
		_ = s.dev.Close()
	})
	defer stop()

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return sicle.NewSourceError("read_device", err)
		}
		s.Handle(ev)
	}
}

// Running reports whether Run is active.
func (s *Source) Running() bool {
	return s.running.Load()
}

// Events returns the number of key and axis events handled.
func (s *Source) Events() uint64 {
	return s.events.Load()
}

// Handle applies one event. Run calls it for every event read; it is exported
// for replaying recorded event streams.
func (s *Source) Handle(ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_KEY:
		s.handleKey(ev.Code, ev.Value)
	case evdev.EV_ABS:
		s.mu.Lock()
		s.raw[ev.Code] = ev.Value
		s.mu.Unlock()
		s.events.Inc()
	}
}

func (s *Source) handleKey(code evdev.EvCode, value int32) {
	// 2 is autorepeat; the tracker derives held state itself
	if value == 2 {
		return
	}
	down := value != 0

	s.mu.Lock()
	defer s.mu.Unlock()

	if k, ok := keyboardCodes[code]; ok {
		s.edges.Set(k, down)
		s.events.Inc()
		return
	}
	if b, ok := s.buttons[code]; ok {
		s.edges.Set(keys.JoystickButton(s.player, b), down)
		s.edges.Set(keys.JoystickButton(0, b), down)
		s.events.Inc()
	}
}

// Poll starts a new frame.
func (s *Source) Poll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges.Advance()
	for a, ms := range s.axes {
		s.values[a] = s.readAxis(ms)
	}
}

func (s *Source) readAxis(ms []AxisMapping) float64 {
	for _, m := range ms {
		raw, ok := s.raw[m.Code]
		if !ok {
			continue
		}
		v := normalize(raw, s.info[m.Code], m.Unipolar)
		if m.Invert {
			v = -v
		}
		if v != 0 {
			return v
		}
	}
	return 0
}

// normalize scales raw into [-1, 1], or [0, 1] for unipolar axes. Devices
// that report no range are assumed to use a signed 16 bit range. Bipolar
// values within the device's flat zone of the centre read as exactly 0.
func normalize(raw int32, info evdev.AbsInfo, unipolar bool) float64 {
	lo, hi := float64(info.Minimum), float64(info.Maximum)
	if hi <= lo {
		lo, hi = -32768, 32767
	}
	r := float64(raw)

	if unipolar {
		v := (r - lo) / (hi - lo)
		return max(0, min(1, v))
	}

	centre := (lo + hi) / 2
	offset := r - centre
	if math.Abs(offset) <= max(float64(info.Flat), 0.5) {
		return 0
	}
	v := offset / ((hi - lo) / 2)
	return max(-1, min(1, v))
}

func (s *Source) KeyDown(k keys.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges.Down(k)
}

func (s *Source) KeyHeld(k keys.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges.Held(k)
}

func (s *Source) KeyUp(k keys.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges.Up(k)
}

func (s *Source) Axis(a keys.Axis) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[a]
}

// Close closes the device.
func (s *Source) Close() error {
	return s.dev.Close()
}
