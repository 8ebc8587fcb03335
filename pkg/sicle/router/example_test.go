package router_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/router"
	"github.com/sicle-games/sicle/pkg/sicle/source/scripted"
)

// Page names used by the examples
const (
	PageDialogue binding.PageName = "Dialogue"
	PageShop     binding.PageName = "Shop"
)

// simClock stands in for the game's simulation clock
type simClock struct{}

func (simClock) SetTimeScale(scale float64) {
	fmt.Printf("time scale %v\n", scale)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Example shows a held movement key being released when the game pauses.
func Example() {
	src := scripted.New()
	r := router.New(src, router.WithClock(simClock{}), router.WithLogger(quietLogger()))
	r.AddPauseKey(keys.Escape)

	game := r.DefaultPage()
	game.AddListenerHeld(keys.LeftArrow, func() { fmt.Println("move left") }, false)
	game.AddListenerUp(keys.LeftArrow, func() { fmt.Println("stop") }, false)

	frame := func() {
		src.Poll()
		r.Tick()
	}

	src.Press(keys.LeftArrow)
	frame()
	frame()

	src.Tap(keys.Escape)
	frame()
	fmt.Println("page:", r.CurrentName())

	// Still held, but the Paused page has no movement bindings
	frame()

	src.Tap(keys.Escape)
	frame()
	fmt.Println("page:", r.CurrentName())

	// Output:
	// move left
	// move left
	// stop
	// time scale 0
	// page: Paused
	// time scale 1
	// page: Default
}

// Example_dialogue pushes a dialogue page that takes over the confirm key
// and closes itself.
func Example_dialogue() {
	src := scripted.New()
	r := router.New(src, router.WithLogger(quietLogger()))

	r.DefaultPage().AddListenerDown(keys.E, func() {
		fmt.Println("talk")
		if err := r.Push(PageDialogue); err != nil {
			fmt.Println(err)
		}
	}, false)

	lines := []string{"Hello.", "Goodbye."}
	dialogue := r.Page(PageDialogue, true)
	dialogue.AddListenerDown(keys.E, func() {
		fmt.Println(lines[0])
		lines = lines[1:]
		if len(lines) == 0 {
			r.Pop()
		}
	}, false)

	for range 4 {
		src.Tap(keys.E)
		src.Poll()
		r.Tick()
	}
	fmt.Println("page:", r.CurrentName(), "depth:", r.Depth())

	// Output:
	// talk
	// Hello.
	// Goodbye.
	// talk
	// page: Dialogue depth: 2
}

// ExampleRouter_Bind binds one action to a key and a pad button and keeps it
// usable while paused.
func ExampleRouter_Bind() {
	src := scripted.New()
	r := router.New(src,
		router.WithLogger(quietLogger()),
		router.WithGamepad(constants.PlatformLinux, constants.AnyPlayer))

	err := r.Bind(router.KeyBinding{
		Key:              keys.M,
		Gamepad:          constants.GamepadButtonBack,
		UsableWhenPaused: true,
		OnDown:           binding.NewEvent(func() { fmt.Println("map") }),
	})
	if err != nil {
		fmt.Println(err)
	}

	if err := r.Bind(router.KeyBinding{Page: PageShop, Key: keys.B}); err != nil {
		fmt.Println(err)
	}

	r.SetPaused(true)
	src.Tap(r.GamepadKey(constants.GamepadButtonBack))
	src.Poll()
	r.Tick()

	// Output:
	// bind B: page not found: "Shop"
	// map
}
