package router

import (
	"log/slog"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
)

// Option configures a Router at construction.
type Option func(*Router)

// WithDeadzone sets the axis deadzone. The default is 0.2.
func WithDeadzone(deadzone float64) Option {
	return func(r *Router) {
		r.SetDeadzone(deadzone)
	}
}

// WithClock sets the simulation clock frozen while paused.
func WithClock(c Clock) Option {
	return func(r *Router) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithLock sets the lock consulted at the start of every Tick.
func WithLock(l Lock) Option {
	return func(r *Router) {
		r.lock = l
	}
}

// WithLogger sets the logger for the router and the pages it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithDebugInput logs every dispatched key and axis at debug level.
func WithDebugInput(enabled bool) Option {
	return func(r *Router) {
		r.debugInput = enabled
	}
}

// WithGamepad makes Bind also bind the gamepad key for each binding's
// button, using platform's button numbering and the given player
// (constants.AnyPlayer for any pad).
func WithGamepad(platform constants.Platform, player int) Option {
	return func(r *Router) {
		r.useGamepad = true
		r.platform = platform
		r.player = player
	}
}
