package binding

import "go.uber.org/atomic"

// Action is a listener for a digital key event.
type Action func()

// AxisAction is a listener for an analog axis; it receives the raw value.
type AxisAction func(value float64)

// ListenerID identifies one registration. IDs are never reused, so removing
// by a stale ID cannot detach an unrelated listener.
type ListenerID uint64

var lastListenerID = atomic.NewUint64(0)

func nextListenerID() ListenerID {
	return ListenerID(lastListenerID.Inc())
}

type listener[F any] struct {
	id ListenerID
	fn F
}

type listeners[F any] struct {
	entries []listener[F]
}

func (l *listeners[F]) add(fn F) ListenerID {
	id := nextListenerID()
	l.entries = append(l.entries, listener[F]{id: id, fn: fn})
	return id
}

func (l *listeners[F]) remove(id ListenerID) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot copies the current entries so invocation is unaffected by
// listeners that add or remove registrations while running.
func (l *listeners[F]) snapshot() []listener[F] {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]listener[F], len(l.entries))
	copy(out, l.entries)
	return out
}

// Event is an ordered list of key listeners. Listeners run in registration
// order. An Event may be installed in several tables at once.
type Event struct {
	list listeners[Action]
}

// NewEvent returns an Event with the given listeners already registered.
func NewEvent(fns ...Action) *Event {
	e := &Event{}
	for _, fn := range fns {
		e.Add(fn)
	}
	return e
}

// Add appends a listener and returns its ID.
func (e *Event) Add(fn Action) ListenerID {
	return e.list.add(fn)
}

// Remove detaches the listener with the given ID. It reports whether one was found.
func (e *Event) Remove(id ListenerID) bool {
	return e.list.remove(id)
}

// Clear detaches every listener.
func (e *Event) Clear() {
	e.list.entries = nil
}

// Len returns the number of registered listeners.
func (e *Event) Len() int {
	return len(e.list.entries)
}

// Invoke calls every listener registered at the time of the call.
func (e *Event) Invoke() {
	for _, l := range e.list.snapshot() {
		if l.fn != nil {
			l.fn()
		}
	}
}

// AxisEvent is the analog counterpart of Event.
type AxisEvent struct {
	list listeners[AxisAction]
}

// NewAxisEvent returns an AxisEvent with the given listeners already registered.
func NewAxisEvent(fns ...AxisAction) *AxisEvent {
	e := &AxisEvent{}
	for _, fn := range fns {
		e.Add(fn)
	}
	return e
}

func (e *AxisEvent) Add(fn AxisAction) ListenerID {
	return e.list.add(fn)
}

func (e *AxisEvent) Remove(id ListenerID) bool {
	return e.list.remove(id)
}

func (e *AxisEvent) Clear() {
	e.list.entries = nil
}

func (e *AxisEvent) Len() int {
	return len(e.list.entries)
}

// Invoke calls every listener registered at the time of the call with value.
func (e *AxisEvent) Invoke(value float64) {
	for _, l := range e.list.snapshot() {
		if l.fn != nil {
			l.fn(value)
		}
	}
}
