package binding

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestTableAddListenerCreatesSlot(t *testing.T) {
	tbl := NewTable("test", discardLogger())
	assert.False(t, tbl.Has(KindDown, keys.A))

	count := 0
	tbl.AddListener(KindDown, keys.A, func() { count++ }, false)
	tbl.AddListener(KindDown, keys.A, func() { count++ }, false)

	require.True(t, tbl.Has(KindDown, keys.A))
	assert.False(t, tbl.Has(KindHeld, keys.A), "kinds are independent")

	tbl.Event(KindDown, keys.A).Invoke()
	assert.Equal(t, 2, count)
}

func TestTableAddListenerReplaceExisting(t *testing.T) {
	tbl := NewTable("test", discardLogger())
	var calls []string

	tbl.AddListener(KindUp, keys.B, func() { calls = append(calls, "old") }, false)
	shared := tbl.Event(KindUp, keys.B)

	tbl.AddListener(KindUp, keys.B, func() { calls = append(calls, "new") }, true)
	tbl.Event(KindUp, keys.B).Invoke()
	assert.Equal(t, []string{"new"}, calls)

	calls = nil
	shared.Invoke()
	assert.Equal(t, []string{"old"}, calls, "replacing installs a fresh event and leaves the old one intact")
}

func TestTableKeysKeepFirstBindOrder(t *testing.T) {
	tbl := NewTable("test", discardLogger())
	for _, k := range []keys.Key{keys.C, keys.A, keys.B, keys.A} {
		tbl.AddListener(KindHeld, k, func() {}, false)
	}
	assert.Equal(t, []keys.Key{keys.C, keys.A, keys.B}, tbl.Keys(KindHeld))

	ks := tbl.Keys(KindHeld)
	ks[0] = keys.Z
	assert.Equal(t, keys.C, tbl.Keys(KindHeld)[0], "Keys returns a copy")
}

func TestTableRemoveListener(t *testing.T) {
	logger, buf := bufferLogger()
	tbl := NewTable("test", logger)

	called := false
	id := tbl.AddListener(KindDown, keys.Space, func() { called = true }, false)

	assert.True(t, tbl.RemoveListener(KindDown, keys.Space, id))
	tbl.Event(KindDown, keys.Space).Invoke()
	assert.False(t, called)
	assert.True(t, tbl.Has(KindDown, keys.Space), "the slot stays, empty")

	assert.False(t, tbl.RemoveListener(KindDown, keys.Return, id))
	assert.Contains(t, buf.String(), "key is not bound")
}

func TestTableSetEventWarnsOnOverwrite(t *testing.T) {
	logger, buf := bufferLogger()
	tbl := NewTable("test", logger)

	tbl.SetEvent(KindDown, keys.A, NewEvent(func() {}))
	assert.Empty(t, buf.String(), "first install is silent")

	replacement := NewEvent()
	tbl.SetEvent(KindDown, keys.A, replacement)
	assert.Contains(t, buf.String(), "Overwrote key binding")
	assert.Same(t, replacement, tbl.Event(KindDown, keys.A))

	tbl.SetEvent(KindDown, keys.B, nil)
	require.NotNil(t, tbl.Event(KindDown, keys.B))
	assert.Zero(t, tbl.Event(KindDown, keys.B).Len())
}

func TestTableSetEventSameEventIsSilent(t *testing.T) {
	logger, buf := bufferLogger()
	tbl := NewTable("test", logger)

	ev := NewEvent(func() {})
	tbl.SetEvent(KindHeld, keys.A, ev)
	tbl.SetEvent(KindHeld, keys.A, ev)
	assert.Empty(t, buf.String())
}

func TestTableRemoveKey(t *testing.T) {
	logger, buf := bufferLogger()
	tbl := NewTable("test", logger)

	tbl.AddListener(KindDown, keys.A, func() {}, false)
	tbl.AddListener(KindDown, keys.B, func() {}, false)

	tbl.RemoveKey(KindDown, keys.A)
	assert.False(t, tbl.Has(KindDown, keys.A))
	assert.Nil(t, tbl.Event(KindDown, keys.A))
	assert.Equal(t, []keys.Key{keys.B}, tbl.Keys(KindDown))

	tbl.RemoveKey(KindDown, keys.A)
	assert.Contains(t, buf.String(), "not set")
}

func TestTableInvalidKind(t *testing.T) {
	tbl := NewTable("test", discardLogger())

	assert.Zero(t, tbl.AddListener(Kind(42), keys.A, func() {}, false))
	assert.False(t, tbl.Has(Kind(42), keys.A))
	assert.Nil(t, tbl.Keys(Kind(-1)))
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestTableAxes(t *testing.T) {
	tbl := NewTable("test", discardLogger())
	var got []float64

	id := tbl.AddAxisListener(keys.AxisHorizontal, func(v float64) { got = append(got, v) }, false)
	tbl.AddAxisListener(keys.AxisVertical, func(float64) {}, false)
	assert.Equal(t, []keys.Axis{keys.AxisHorizontal, keys.AxisVertical}, tbl.Axes())

	tbl.AxisEvent(keys.AxisHorizontal).Invoke(0.75)
	assert.Equal(t, []float64{0.75}, got)

	assert.True(t, tbl.RemoveAxisListener(keys.AxisHorizontal, id))
	assert.False(t, tbl.RemoveAxisListener(keys.AxisLeftTrigger, id))

	tbl.RemoveAxis(keys.AxisHorizontal)
	tbl.RemoveAxis(keys.AxisHorizontal)
	assert.Equal(t, []keys.Axis{keys.AxisVertical}, tbl.Axes())
	assert.Nil(t, tbl.AxisEvent(keys.AxisHorizontal))
}

func TestTableAxisReplace(t *testing.T) {
	logger, buf := bufferLogger()
	tbl := NewTable("test", logger)

	first := 0
	tbl.AddAxisListener(keys.AxisVertical, func(float64) { first++ }, false)
	tbl.AddAxisListener(keys.AxisVertical, func(float64) {}, true)
	tbl.AxisEvent(keys.AxisVertical).Invoke(1)
	assert.Zero(t, first)

	tbl.SetAxisEvent(keys.AxisVertical, NewAxisEvent())
	assert.Contains(t, buf.String(), "Overwrote axis binding")
	assert.Len(t, tbl.Axes(), 1)
}
