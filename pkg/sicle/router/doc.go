// Package router dispatches per-frame input to a stack of input pages.
//
// Each page is a binding table (see package binding). Only the page on top of
// the stack receives input, which lets a dialogue box or pause menu take over
// the controls and hand them back when it closes.
//
// # Basic Usage
//
//	r := router.New(src, router.WithClock(simClock))
//
//	r.DefaultPage().AddListenerHeld(keys.LeftArrow, player.MoveLeft, false)
//	r.DefaultPage().AddListenerUp(keys.LeftArrow, player.StopHorizontal, false)
//
//	dialogue := r.Page("Dialogue", true)
//	dialogue.AddListenerDown(keys.Return, box.Advance, false)
//
//	r.AddPauseKey(keys.Escape)
//
//	for running {
//	    src.Poll()
//	    r.Tick()
//	}
//
// # Page Stack
//
// The Default page is pushed at construction and can never be popped. Push
// of the page already on top is ignored, so opening the same menu twice does
// not require two pops to close it.
//
// # Pausing
//
// SetPaused(true) first sends a synthetic up event to every key the active
// page is tracking, so a held movement key cannot stay stuck while the game is
// frozen. It then sets the clock scale to zero and pushes the Paused page.
// SetPaused(false) restores the clock and pops.
//
// # Transitions
//
// A Lock passed with WithLock is checked at the start of every Tick. While it
// reports locked no input is dispatched. TransitionLock is a ready-made Lock
// that loaders on other goroutines can hold.
package router
