package binding

import (
	"time"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// Default repeat timing, matching the feel of menu navigation on handhelds.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)

// Repeater turns a key that is held across frames into discrete pulses:
// one on the first held frame, one after the initial delay, then one every
// interval until released.
//
// Install Held as the key's held listener and Release as its up listener.
type Repeater struct {
	fire Action

	repeatDelay    time.Duration
	repeatInterval time.Duration
	now            func() time.Time

	held        bool
	hasRepeated bool
	lastPulse   time.Time
}

// NewRepeater creates a Repeater with default timing.
func NewRepeater(fire Action) *Repeater {
	return NewRepeaterWithTiming(fire, DefaultRepeatDelay, DefaultRepeatInterval)
}

// NewRepeaterWithTiming creates a Repeater with custom timing.
func NewRepeaterWithTiming(fire Action, delay, interval time.Duration) *Repeater {
	return &Repeater{
		fire:           fire,
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

// WithClock replaces the wall clock, mainly for tests.
func (r *Repeater) WithClock(now func() time.Time) *Repeater {
	r.now = now
	return r
}

// Held is called once per frame while the key is down.
func (r *Repeater) Held() {
	now := r.now()
	if !r.held {
		r.held = true
		r.hasRepeated = false
		r.lastPulse = now
		r.pulse()
		return
	}

	// Use repeatDelay for first repeat, then repeatInterval for subsequent repeats
	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	if now.Sub(r.lastPulse) >= threshold {
		r.lastPulse = now
		r.hasRepeated = true
		r.pulse()
	}
}

// Release resets the repeat state.
func (r *Repeater) Release() {
	r.held = false
	r.hasRepeated = false
}

// IsHeld reports whether the key is currently considered held.
func (r *Repeater) IsHeld() bool {
	return r.held
}

func (r *Repeater) pulse() {
	if r.fire != nil {
		r.fire()
	}
}

// BindRepeat installs a Repeater for key on p: Held on the held slot and
// Release on the up slot. The returned IDs allow later removal.
func BindRepeat(p *Page, key keys.Key, r *Repeater) (held, up ListenerID) {
	held = p.AddListenerHeld(key, r.Held, false)
	up = p.AddListenerUp(key, r.Release, false)
	return held, up
}
