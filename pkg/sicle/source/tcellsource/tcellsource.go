// Package tcellsource reads keyboard input from a terminal through tcell.
//
// Terminals only report presses, repeated while a key is held. The source
// treats a key as held until no press has arrived for the hold time, then
// reports the release. The hold time should cover the terminal's autorepeat
// delay or a held key will flicker up and down once before repeats start.
package tcellsource

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/atomic"

	"github.com/sicle-games/sicle/pkg/sicle/internal/edge"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// DefaultHoldTime covers the usual 250 to 500ms autorepeat delay.
const DefaultHoldTime = 550 * time.Millisecond

var namedKeys = map[tcell.Key]keys.Key{
	tcell.KeyUp:         keys.UpArrow,
	tcell.KeyDown:       keys.DownArrow,
	tcell.KeyLeft:       keys.LeftArrow,
	tcell.KeyRight:      keys.RightArrow,
	tcell.KeyEnter:      keys.Return,
	tcell.KeyEscape:     keys.Escape,
	tcell.KeyTab:        keys.Tab,
	tcell.KeyBackspace:  keys.Backspace,
	tcell.KeyBackspace2: keys.Backspace,
	tcell.KeyF1:         keys.F1,
	tcell.KeyF2:         keys.F2,
	tcell.KeyF3:         keys.F3,
	tcell.KeyF4:         keys.F4,
	tcell.KeyF5:         keys.F5,
	tcell.KeyF6:         keys.F6,
	tcell.KeyF7:         keys.F7,
	tcell.KeyF8:         keys.F8,
	tcell.KeyF9:         keys.F9,
	tcell.KeyF10:        keys.F10,
	tcell.KeyF11:        keys.F11,
	tcell.KeyF12:        keys.F12,
}

// Translate returns the keys a terminal key event stands for: the key itself
// followed by any modifiers. It returns nil for events with no keyboard key.
func Translate(ev *tcell.EventKey) []keys.Key {
	var out []keys.Key
	mods := ev.Modifiers()

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			out = append(out, keys.Space)
		case r >= 'a' && r <= 'z':
			out = append(out, keys.A+keys.Key(r-'a'))
		case r >= 'A' && r <= 'Z':
			out = append(out, keys.A+keys.Key(r-'A'))
			mods |= tcell.ModShift
		case r >= '0' && r <= '9':
			out = append(out, keys.Alpha0+keys.Key(r-'0'))
		default:
			return nil
		}
	default:
		if named, ok := namedKeys[k]; ok {
			out = append(out, named)
		} else if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			out = append(out, keys.A+keys.Key(k-tcell.KeyCtrlA))
			mods |= tcell.ModCtrl
		} else {
			return nil
		}
	}

	if mods&tcell.ModShift != 0 {
		out = append(out, keys.LeftShift)
	}
	if mods&tcell.ModCtrl != 0 {
		out = append(out, keys.LeftControl)
	}
	if mods&tcell.ModAlt != 0 {
		out = append(out, keys.LeftAlt)
	}
	return out
}

// Source implements router.Source over a tcell screen. Run reads events on
// its own goroutine; Poll and the queries belong to the frame thread.
type Source struct {
	screen tcell.Screen

	mu       sync.Mutex
	edges    *edge.Tracker
	lastSeen map[keys.Key]time.Time
	holdTime time.Duration
	now      func() time.Time

	running atomic.Bool
	events  atomic.Uint64
}

// Option configures a Source.
type Option func(*Source)

// WithHoldTime sets how long a key stays held after its last press event.
func WithHoldTime(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.holdTime = d
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		s.now = now
	}
}

// New wraps an initialised screen.
func New(screen tcell.Screen, opts ...Option) *Source {
	s := &Source{
		screen:   screen,
		edges:    edge.New(),
		lastSeen: make(map[keys.Key]time.Time),
		holdTime: DefaultHoldTime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run feeds terminal events into the source until ctx is cancelled or the
// screen is finalised. Only one Run may be active.
func (s *Source) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := s.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		s.Handle(ev)
	}
}

// Handle records one terminal event. It reports whether the event pressed a
// known key.
func (s *Source) Handle(ev tcell.Event) bool {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	pressed := Translate(keyEv)
	if len(pressed) == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, k := range pressed {
		s.edges.Set(k, true)
		s.lastSeen[k] = now
	}
	s.events.Inc()
	return true
}

// Poll releases keys whose hold time has run out and latches the frame.
func (s *Source) Poll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, seen := range s.lastSeen {
		if now.Sub(seen) >= s.holdTime {
			s.edges.Set(k, false)
			delete(s.lastSeen, k)
		}
	}
	s.edges.Advance()
}

// Events returns the number of key events handled.
func (s *Source) Events() uint64 {
	return s.events.Load()
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

// Axis reports the arrow keys as digital Horizontal and Vertical axes, up and
// right positive. Other axes read zero.
func (s *Source) Axis(a keys.Axis) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a {
	case keys.AxisHorizontal:
		return s.pair(keys.LeftArrow, keys.RightArrow)
	case keys.AxisVertical:
		return s.pair(keys.DownArrow, keys.UpArrow)
	default:
		return 0
	}
}

func (s *Source) pair(negative, positive keys.Key) float64 {
	var v float64
	if s.edges.Held(negative) {
		v--
	}
	if s.edges.Held(positive) {
		v++
	}
	return v
}
