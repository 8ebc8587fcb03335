// Command inputprobe opens an input backend, routes it through a router with
// every key and axis bound, and logs what gets dispatched. It is the quickest
// way to check a device mapping or a bindings file on new hardware.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sicle-games/sicle/pkg/sicle"
	"github.com/sicle-games/sicle/pkg/sicle/clock"
	"github.com/sicle-games/sicle/pkg/sicle/platform/cannoli"
	"github.com/sicle-games/sicle/pkg/sicle/prompt"
	"github.com/sicle-games/sicle/pkg/sicle/router"
	"github.com/sicle-games/sicle/pkg/sicle/source/evdevsource"
	"github.com/sicle-games/sicle/pkg/sicle/source/sdlsource"
)

const frameTime = time.Second / 60

type flags struct {
	backend  string
	device   string
	bindings string
	language string
	logLevel string
	logPath  string
	debug    bool

	fullscreen bool
	borderless bool
	palette    string
}

// SDL must be driven from the thread that initialised it.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	options, err := sicle.OptionsFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	f := parseFlags(options)
	options.LogLevel = f.logLevel
	options.LogPath = f.logPath
	options.DebugInput = f.debug
	options.BindingsFile = f.bindings

	if f.backend == "terminal" {
		// The screen owns stdout
		sicle.SetLogOutput(io.Discard)
	}
	sicle.Init(options)
	defer sicle.Close()
	logger := sicle.GetLogger()

	labels, err := prompt.NewLabeler(f.language)
	if err != nil {
		logger.Error("Failed to load input labels", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	options.Clock = clk
	p := newProbe(clk, labels, logger, options.Env.PlatformOrCurrent())
	options.Actions = p.actions()

	switch f.backend {
	case "sdl":
		err = runSDL(ctx, p, options, windowOptions{
			fullscreen: f.fullscreen,
			borderless: f.borderless,
			palette:    paletteNamed(f.palette),
		})
	case "evdev":
		err = runEvdev(ctx, p, options, f.device)
	case "terminal":
		err = runTerminal(ctx, p, options)
	default:
		err = fmt.Errorf("unknown backend %q", f.backend)
	}
	if err != nil {
		logger.Error("Input probe failed", "backend", f.backend, "error", err)
		return 1
	}
	return 0
}

func parseFlags(options sicle.Options) flags {
	f := flags{
		backend:  "sdl",
		device:   options.Env.InputDevice,
		bindings: options.Env.BindingsFile,
		language: options.Env.Language,
		logLevel: options.LogLevel,
		logPath:  options.LogPath,
		debug:    options.DebugInput,
	}

	flag.StringVar(&f.backend, "backend", f.backend, "Input backend (sdl, evdev, terminal)")
	flag.StringVar(&f.device, "device", f.device, "evdev device path or name fragment")
	flag.StringVar(&f.bindings, "bindings", f.bindings, "Bindings file (TOML path or http(s) URL)")
	flag.StringVar(&f.language, "lang", f.language, "Language for key and button labels")
	flag.StringVar(&f.logLevel, "log-level", f.logLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logPath, "log-path", f.logPath, "Also write logs to this file")
	flag.BoolVar(&f.debug, "debug", f.debug, "Trace every dispatched key and axis")
	flag.BoolVar(&f.fullscreen, "fullscreen", false, "Open the SDL window fullscreen")
	flag.BoolVar(&f.borderless, "borderless", false, "Open the SDL window without decorations")
	flag.StringVar(&f.palette, "palette", "default", "Button glyph colours (default, cannoli)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inputprobe - log routed input from a device\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputprobe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEscape or Start toggles pause, Q quits.\n")
		fmt.Fprintf(os.Stderr, "Options default to the SICLE_* environment variables.\n")
	}

	flag.Parse()
	return f
}

// newRouter builds the router and attaches the probe. Bindings file errors
// are logged and the probe runs with whatever was applied.
func newRouter(src router.Source, p *probe, options sicle.Options) *router.Router {
	r, err := sicle.NewRouter(src, options)
	if err != nil {
		p.logger.Warn("Bindings not fully applied", "error", err)
	}
	p.attach(r)
	p.logger.Info("Input probe ready",
		"page", string(r.CurrentName()),
		"deadzone", r.Deadzone(),
		"pause_keys", len(r.PauseKeys()),
		"language", p.labels.Language().String())
	return r
}

func paletteNamed(name string) prompt.Palette {
	if name == "cannoli" {
		return cannoli.Palette()
	}
	return prompt.DefaultPalette
}

func runSDL(ctx context.Context, p *probe, options sicle.Options, winOpts windowOptions) error {
	win, err := openWindow("inputprobe", winOpts)
	if err != nil {
		return sicle.NewSourceError("open_window", err)
	}
	defer win.close()

	src, err := sdlsource.New()
	if err != nil {
		return err
	}
	defer src.Close()
	p.logger.Info("SDL input ready", "joysticks", src.Joysticks())

	r := newRouter(src, p, options)

	last := time.Now()
	for ctx.Err() == nil && !p.quit {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				p.requestQuit()
			case *sdl.JoyDeviceAddedEvent, *sdl.JoyDeviceRemovedEvent:
				src.Refresh()
				p.logger.Info("Joysticks changed", "joysticks", src.Joysticks())
			}
		}

		src.Poll()
		r.Tick()

		now := time.Now()
		p.clock.Advance(now.Sub(last))
		last = now

		win.draw(p)
		p.endFrame()
	}
	return nil
}

func runEvdev(ctx context.Context, p *probe, options sicle.Options, device string) error {
	if device == "" {
		return errors.New("evdev backend needs -device or SICLE_INPUT_DEVICE")
	}
	path, err := evdevsource.Find(device)
	if err != nil {
		return err
	}
	src, err := evdevsource.Open(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readErr := make(chan error, 1)
	go func() {
		readErr <- src.Run(ctx)
	}()

	r := newRouter(src, p, options)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	last := time.Now()
	for !p.quit {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case now := <-ticker.C:
			src.Poll()
			r.Tick()
			p.clock.Advance(now.Sub(last))
			last = now
			p.endFrame()
		}
	}

	cancel()
	if err := <-readErr; err != nil {
		p.logger.Warn("Device reader stopped with error", "error", err)
	}
	p.logger.Info("Input probe stopped", "presses", p.presses, "events", src.Events())
	return nil
}
