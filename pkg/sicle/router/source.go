package router

import (
	"go.uber.org/atomic"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// Source answers raw input queries for the current frame. Implementations
// latch device state once per frame (see the source packages) so that all
// queries made during one Tick agree with each other.
type Source interface {
	// KeyDown reports a fresh press this frame.
	KeyDown(k keys.Key) bool
	// KeyHeld reports that the key is currently down.
	KeyHeld(k keys.Key) bool
	// KeyUp reports a release this frame.
	KeyUp(k keys.Key) bool
	// Axis returns the unfiltered analog value.
	Axis(a keys.Axis) float64
}

// Clock is the simulation clock the router freezes while paused.
// A scale of 0 stops simulation time and 1 restores normal speed.
type Clock interface {
	SetTimeScale(scale float64)
}

// Lock reports whether input must be withheld for the current frame.
type Lock interface {
	Locked() bool
}

// TransitionLock is a Lock held while the game moves between contexts, such
// as a room or scene transition, so input does not leak into the new context
// half way through. It may be toggled from any goroutine.
type TransitionLock struct {
	transitioning atomic.Bool
}

// Begin takes the lock. It reports false if a transition is already running.
func (l *TransitionLock) Begin() bool {
	return l.transitioning.CompareAndSwap(false, true)
}

// End releases the lock.
func (l *TransitionLock) End() {
	l.transitioning.Store(false)
}

// Locked reports whether a transition is in progress.
func (l *TransitionLock) Locked() bool {
	return l.transitioning.Load()
}

type nopClock struct{}

func (nopClock) SetTimeScale(float64) {}
