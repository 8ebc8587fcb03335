package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokesInRegistrationOrder(t *testing.T) {
	var calls []string
	ev := NewEvent(
		func() { calls = append(calls, "first") },
		func() { calls = append(calls, "second") },
	)
	ev.Add(func() { calls = append(calls, "third") })

	ev.Invoke()

	assert.Equal(t, []string{"first", "second", "third"}, calls)
	assert.Equal(t, 3, ev.Len())
}

func TestEventRemoveByID(t *testing.T) {
	var calls []string
	ev := NewEvent()
	ev.Add(func() { calls = append(calls, "a") })
	id := ev.Add(func() { calls = append(calls, "b") })
	ev.Add(func() { calls = append(calls, "c") })

	assert.True(t, ev.Remove(id))
	assert.False(t, ev.Remove(id), "already removed")

	ev.Invoke()
	assert.Equal(t, []string{"a", "c"}, calls)
}

func TestEventIDsAreUniqueAcrossEvents(t *testing.T) {
	a, b := NewEvent(), NewEvent()
	idA := a.Add(func() {})
	idB := b.Add(func() {})

	assert.NotEqual(t, idA, idB)
	assert.False(t, b.Remove(idA), "ID from another event must not match")
}

func TestEventMutationDuringInvoke(t *testing.T) {
	ev := NewEvent()
	var calls []string
	var lateID ListenerID

	ev.Add(func() {
		calls = append(calls, "remover")
		ev.Remove(lateID)
		ev.Add(func() { calls = append(calls, "added") })
	})
	lateID = ev.Add(func() { calls = append(calls, "late") })

	ev.Invoke()
	assert.Equal(t, []string{"remover", "late"}, calls, "the snapshot taken at Invoke runs to completion")

	calls = nil
	ev.Invoke()
	assert.Equal(t, []string{"remover", "added"}, calls)
}

func TestEventClear(t *testing.T) {
	called := false
	ev := NewEvent(func() { called = true })

	ev.Clear()
	ev.Invoke()

	assert.False(t, called)
	assert.Zero(t, ev.Len())
}

func TestEventNilListenerIsSkipped(t *testing.T) {
	called := false
	ev := NewEvent(nil, func() { called = true })

	assert.NotPanics(t, ev.Invoke)
	assert.True(t, called)
}

func TestAxisEventPassesValue(t *testing.T) {
	var got []float64
	ev := NewAxisEvent(func(v float64) { got = append(got, v) })
	id := ev.Add(func(v float64) { got = append(got, -v) })

	ev.Invoke(0.5)
	assert.Equal(t, []float64{0.5, -0.5}, got)

	assert.True(t, ev.Remove(id))
	ev.Clear()
	assert.Zero(t, ev.Len())
}
