package binding

import (
	"log/slog"
	"slices"

	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// Kind selects which digital edge a key binding reacts to.
type Kind int

const (
	KindDown Kind = iota // pressed this frame
	KindHeld             // down this frame
	KindUp               // released this frame

	kindCount
)

// Kinds lists the digital kinds in dispatch order.
var Kinds = [...]Kind{KindDown, KindHeld, KindUp}

func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindHeld:
		return "held"
	case KindUp:
		return "up"
	default:
		return "unknown"
	}
}

type keySlots struct {
	events map[keys.Key]*Event
	order  []keys.Key
}

func (s *keySlots) get(k keys.Key) (*Event, bool) {
	ev, ok := s.events[k]
	return ev, ok
}

func (s *keySlots) set(k keys.Key, ev *Event) {
	if _, ok := s.events[k]; !ok {
		s.order = append(s.order, k)
	}
	s.events[k] = ev
}

func (s *keySlots) delete(k keys.Key) bool {
	if _, ok := s.events[k]; !ok {
		return false
	}
	delete(s.events, k)
	s.order = slices.DeleteFunc(slices.Clone(s.order), func(o keys.Key) bool { return o == k })
	return true
}

// Table maps keys and axes to listener lists. Iteration over keys follows
// the order in which their slots were first created.
//
// A Table is not safe for concurrent use; the router mutates and reads it
// from the frame thread only.
type Table struct {
	owner  string
	logger *slog.Logger

	slots [kindCount]keySlots

	axes      map[keys.Axis]*AxisEvent
	axisOrder []keys.Axis
}

// NewTable creates an empty table. owner names the table in diagnostics;
// a nil logger selects the package's internal logger.
func NewTable(owner string, logger *slog.Logger) *Table {
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	t := &Table{
		owner:  owner,
		logger: logger,
		axes:   make(map[keys.Axis]*AxisEvent),
	}
	for i := range t.slots {
		t.slots[i].events = make(map[keys.Key]*Event)
	}
	return t
}

func (t *Table) slotsFor(kind Kind) *keySlots {
	if kind < 0 || kind >= kindCount {
		return nil
	}
	return &t.slots[kind]
}

// AddListener registers fn for kind on key, creating the slot if needed.
// With replaceExisting the slot's current listeners are dropped first.
func (t *Table) AddListener(kind Kind, key keys.Key, fn Action, replaceExisting bool) ListenerID {
	s := t.slotsFor(kind)
	if s == nil {
		t.logger.Error("Invalid binding kind", "page", t.owner, "kind", int(kind))
		return 0
	}
	ev, ok := s.get(key)
	if !ok || ev == nil || replaceExisting {
		ev = &Event{}
		s.set(key, ev)
	}
	return ev.Add(fn)
}

// RemoveListener detaches one listener from key's slot. A missing slot is
// reported as a warning and leaves the table unchanged.
func (t *Table) RemoveListener(kind Kind, key keys.Key, id ListenerID) bool {
	s := t.slotsFor(kind)
	if s == nil {
		return false
	}
	ev, ok := s.get(key)
	if !ok || ev == nil {
		t.logger.Warn("Tried to remove listener but key is not bound",
			"page", t.owner, "kind", kind.String(), "key", key.String())
		return false
	}
	return ev.Remove(id)
}

// SetEvent installs ev as the whole listener list for key. Overwriting a
// slot that still has listeners is allowed but reported. A nil ev installs
// an empty list.
func (t *Table) SetEvent(kind Kind, key keys.Key, ev *Event) {
	s := t.slotsFor(kind)
	if s == nil {
		return
	}
	if old, ok := s.get(key); ok && old != nil && old.Len() > 0 && old != ev {
		t.logger.Warn("Overwrote key binding",
			"page", t.owner, "kind", kind.String(), "key", key.String(), "listeners", old.Len())
	}
	if ev == nil {
		ev = &Event{}
	}
	s.set(key, ev)
}

// RemoveKey drops key's slot for kind.
func (t *Table) RemoveKey(kind Kind, key keys.Key) {
	s := t.slotsFor(kind)
	if s == nil {
		return
	}
	if !s.delete(key) {
		t.logger.Warn("Tried to remove key but it is not set",
			"page", t.owner, "kind", kind.String(), "key", key.String())
	}
}

// Has reports whether key has a slot for kind.
func (t *Table) Has(kind Kind, key keys.Key) bool {
	s := t.slotsFor(kind)
	if s == nil {
		return false
	}
	_, ok := s.get(key)
	return ok
}

// Event returns key's listener list for kind, or nil.
func (t *Table) Event(kind Kind, key keys.Key) *Event {
	s := t.slotsFor(kind)
	if s == nil {
		return nil
	}
	ev, _ := s.get(key)
	return ev
}

// Keys returns a copy of the keys bound for kind.
func (t *Table) Keys(kind Kind) []keys.Key {
	s := t.slotsFor(kind)
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// AddAxisListener registers fn on axis. With newEvent the axis's current
// listeners are dropped first.
func (t *Table) AddAxisListener(axis keys.Axis, fn AxisAction, newEvent bool) ListenerID {
	ev, ok := t.axes[axis]
	if !ok || ev == nil || newEvent {
		ev = &AxisEvent{}
		t.setAxis(axis, ev)
	}
	return ev.Add(fn)
}

// RemoveAxisListener detaches one listener from axis.
func (t *Table) RemoveAxisListener(axis keys.Axis, id ListenerID) bool {
	ev, ok := t.axes[axis]
	if !ok || ev == nil {
		t.logger.Warn("Tried to remove listener but axis is not bound",
			"page", t.owner, "axis", string(axis))
		return false
	}
	return ev.Remove(id)
}

// SetAxisEvent installs ev as the whole listener list for axis.
func (t *Table) SetAxisEvent(axis keys.Axis, ev *AxisEvent) {
	if old, ok := t.axes[axis]; ok && old != nil && old.Len() > 0 && old != ev {
		t.logger.Warn("Overwrote axis binding",
			"page", t.owner, "axis", string(axis), "listeners", old.Len())
	}
	if ev == nil {
		ev = &AxisEvent{}
	}
	t.setAxis(axis, ev)
}

// RemoveAxis drops axis's slot. Removing an unbound axis is a no-op.
func (t *Table) RemoveAxis(axis keys.Axis) {
	if _, ok := t.axes[axis]; !ok {
		return
	}
	delete(t.axes, axis)
	t.axisOrder = slices.DeleteFunc(slices.Clone(t.axisOrder), func(a keys.Axis) bool { return a == axis })
}

// AxisEvent returns axis's listener list, or nil.
func (t *Table) AxisEvent(axis keys.Axis) *AxisEvent {
	return t.axes[axis]
}

// Axes returns a copy of the bound axes.
func (t *Table) Axes() []keys.Axis {
	return slices.Clone(t.axisOrder)
}

func (t *Table) setAxis(axis keys.Axis, ev *AxisEvent) {
	if _, ok := t.axes[axis]; !ok {
		t.axisOrder = append(t.axisOrder, axis)
	}
	t.axes[axis] = ev
}
