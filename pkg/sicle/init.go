// Package sicle provides layered input routing for frame-driven games.
//
// Input is organised into pages: named tables that bind keys, gamepad buttons
// and analog axes to listeners. Pages are stacked, and only the top page
// receives input, so a pause menu or dialogue box can take over the controls
// and hand them back when it closes.
//
// The package ties together logging and configuration. The routing itself
// lives in the router and binding packages, and device backends live under
// source/.
package sicle

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sicle-games/sicle/pkg/sicle/config"
	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/router"
)

// Options configures logging and router construction.
type Options struct {
	LogPath      string          // Full path for log file including filename (creates parent directories)
	LogLevel     string          // Application log level: debug, info, warn or error
	DebugInput   bool            // Trace every dispatched key and axis
	Env          config.Env      // Settings normally read from SICLE_* variables
	Clock        router.Clock    // Simulation clock frozen while paused
	Lock         router.Lock     // Transition lock checked at the start of every frame
	ExtraOptions []router.Option // Applied after the options derived from Env
	BindingsFile string          // Overrides Env.BindingsFile when set
	Actions      config.Actions  // Actions a bindings file may name
}

// OptionsFromEnv reads SICLE_* variables into Options.
func OptionsFromEnv() (Options, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return Options{}, err
	}
	return Options{
		LogPath:    e.LogPath,
		LogLevel:   e.LogLevel,
		DebugInput: e.DebugInput,
		Env:        e,
	}, nil
}

// Init configures logging. Call it before creating routers so their
// diagnostics reach the configured destinations.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
	if options.DebugInput || options.Env.DebugInput {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}
}

// NewRouter builds a router over src from options, applying the bindings
// file when one is configured. The router is returned even when the
// bindings contain errors, so a game can start with partial controls.
func NewRouter(src router.Source, options Options) (*router.Router, error) {
	opts := options.Env.RouterOptions()
	if options.DebugInput {
		opts = append(opts, router.WithDebugInput(true))
	}
	if options.Clock != nil {
		opts = append(opts, router.WithClock(options.Clock))
	}
	if options.Lock != nil {
		opts = append(opts, router.WithLock(options.Lock))
	}
	opts = append(opts, options.ExtraOptions...)

	r := router.New(src, opts...)

	path := options.BindingsFile
	if path == "" {
		path = options.Env.BindingsFile
	}
	if path == "" {
		return r, nil
	}

	b, err := config.LoadBindings(path)
	if err != nil {
		return r, fmt.Errorf("load bindings: %w", err)
	}
	if err := b.Apply(r, options.Actions); err != nil {
		internal.GetInternalLogger().Warn("Bindings applied with errors", "path", path, "error", err)
		return r, fmt.Errorf("apply bindings: %w", err)
	}
	return r, nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput replaces stdout as the console log destination. Call before
// Init. The log file, if any, is still written.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
