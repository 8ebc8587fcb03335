package sicle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
	"github.com/sicle-games/sicle/pkg/sicle/clock"
	"github.com/sicle-games/sicle/pkg/sicle/config"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/router"
	"github.com/sicle-games/sicle/pkg/sicle/source/scripted"
)

func writeBindings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestNewRouterWithoutBindings(t *testing.T) {
	r, err := NewRouter(scripted.New(), Options{})
	require.NoError(t, err)
	assert.Equal(t, router.DefaultPage, r.CurrentName())
	assert.Empty(t, r.PauseKeys())
}

func TestNewRouterAppliesBindingsAndClock(t *testing.T) {
	path := writeBindings(t, `
pause_keys = ["P"]

[[page]]
name = "Default"
  [[page.key]]
  key = "Space"
  down = "jump"
`)

	jumps := 0
	clk := clock.New()
	src := scripted.New()
	r, err := NewRouter(src, Options{
		Env:          config.Env{Deadzone: 0.4},
		Clock:        clk,
		BindingsFile: path,
		Actions: config.Actions{
			Keys: map[string]binding.Action{"jump": func() { jumps++ }},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.4, r.Deadzone())

	src.Tap(keys.Space)
	src.Poll()
	r.Tick()
	assert.Equal(t, 1, jumps)

	src.Tap(keys.P)
	src.Poll()
	r.Tick()
	assert.True(t, r.IsPaused())
	assert.True(t, clk.Frozen())
	assert.Zero(t, clk.Advance(time.Second))
}

func TestNewRouterBindingsFileOverridesEnv(t *testing.T) {
	path := writeBindings(t, `pause_keys = ["Escape"]`)

	r, err := NewRouter(scripted.New(), Options{
		Env:          config.Env{BindingsFile: filepath.Join(t.TempDir(), "missing.toml")},
		BindingsFile: path,
	})
	require.NoError(t, err)
	assert.Equal(t, []keys.Key{keys.Escape}, r.PauseKeys())
}

func TestNewRouterReturnsRouterOnBadBindings(t *testing.T) {
	path := writeBindings(t, `
[[page]]
name = "Default"
  [[page.key]]
  key = "Space"
  down = "jump"
`)

	r, err := NewRouter(scripted.New(), Options{BindingsFile: path})
	require.NotNil(t, r)
	assert.ErrorIs(t, err, ErrUnknownAction)

	r, err = NewRouter(scripted.New(), Options{BindingsFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.NotNil(t, r)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRouterExtraOptionsWin(t *testing.T) {
	lock := &router.TransitionLock{}
	r, err := NewRouter(scripted.New(), Options{
		Env:          config.Env{Deadzone: 0.3},
		Lock:         lock,
		ExtraOptions: []router.Option{router.WithDeadzone(0.05)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.05, r.Deadzone())
}
