package main

import (
	"log/slog"
	"time"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
	"github.com/sicle-games/sicle/pkg/sicle/clock"
	"github.com/sicle-games/sicle/pkg/sicle/config"
	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/prompt"
	"github.com/sicle-games/sicle/pkg/sicle/router"
)

const heartbeatInterval = 5 * time.Second

// probe listens to every key and axis on the Default and Paused pages and
// logs what the router dispatches.
type probe struct {
	router   *router.Router
	clock    *clock.Clock
	labels   *prompt.Labeler
	logger   *slog.Logger
	platform constants.Platform

	held       map[keys.Key]bool
	axes       map[keys.Axis]float64
	lastKey    keys.Key
	lastButton constants.GamepadButton
	presses    int
	quit       bool
}

func newProbe(clk *clock.Clock, labels *prompt.Labeler, logger *slog.Logger, platform constants.Platform) *probe {
	return &probe{
		clock:    clk,
		labels:   labels,
		logger:   logger,
		platform: platform,
		held:     make(map[keys.Key]bool),
		axes:     make(map[keys.Axis]float64),
	}
}

// actions are the names a bindings file can use with the probe.
func (p *probe) actions() config.Actions {
	return config.Actions{
		Keys: map[string]binding.Action{
			"quit":   p.requestQuit,
			"pause":  func() { p.router.TogglePause() },
			"resume": func() { p.router.SetPaused(false) },
			"log":    func() { p.logger.Info("Bound action fired", "page", string(p.router.CurrentName())) },
		},
		Axes: map[string]binding.AxisAction{
			"log_axis": func(v float64) { p.logger.Info("Bound axis fired", "value", v) },
		},
	}
}

// attach installs the probe's listeners on r.
func (p *probe) attach(r *router.Router) {
	p.router = r

	probed := append(keys.KeyboardKeys(), joystickKeys()...)
	for _, page := range []*binding.Page{r.DefaultPage(), r.PausedPage()} {
		for _, k := range probed {
			page.AddListenerDown(k, p.onDown(k), false)
			page.AddListenerUp(k, p.onUp(k), false)
		}
		for _, a := range probedAxes {
			page.AddAxisListener(a, p.onAxis(a), false)
		}
		page.AddListenerDown(keys.Q, p.requestQuit, false)
	}

	r.AddPauseKey(keys.Escape)
	if start := keys.ForGamepad(constants.GamepadButtonStart, p.platform, constants.AnyPlayer); start != keys.None {
		r.AddPauseKey(start)
	}

	r.OnPageChange(func(from, to binding.PageName) {
		p.logger.Info("Page changed", "from", string(from), "to", string(to))
		if to == router.PausedPage {
			p.logger.Info(p.labels.Paused())
		}
	})

	p.scheduleHeartbeat()
}

var probedAxes = []keys.Axis{
	keys.AxisHorizontal,
	keys.AxisVertical,
	keys.AxisLeftHorizontal,
	keys.AxisLeftVertical,
	keys.AxisRightHorizontal,
	keys.AxisRightVertical,
	keys.AxisLeftTrigger,
	keys.AxisRightTrigger,
}

// joystickKeys returns the any-joystick key for every raw button.
func joystickKeys() []keys.Key {
	out := make([]keys.Key, 0, keys.JoystickButtons)
	for b := 0; b < keys.JoystickButtons; b++ {
		out = append(out, keys.JoystickButton(0, b))
	}
	return out
}

func (p *probe) onDown(k keys.Key) binding.Action {
	return func() {
		p.held[k] = true
		p.lastKey = k
		p.presses++
		if gb, ok := keys.GamepadButtonFor(k, p.platform); ok {
			p.lastButton = gb
		}
		p.logger.Info("Key down",
			"key", k.String(),
			"label", p.labels.Key(k, p.platform),
			"page", string(p.router.CurrentName()))
	}
}

func (p *probe) onUp(k keys.Key) binding.Action {
	return func() {
		// Pausing releases every bound key; only report keys seen going down
		if !p.held[k] {
			return
		}
		delete(p.held, k)
		p.logger.Info("Key up", "key", k.String(), "page", string(p.router.CurrentName()))
	}
}

func (p *probe) onAxis(a keys.Axis) binding.AxisAction {
	return func(v float64) {
		p.axes[a] = v
		p.logger.Debug("Axis", "axis", string(a), "value", v)
	}
}

// endFrame clears axis values so a stick returning to rest reads as zero.
func (p *probe) endFrame() {
	clear(p.axes)
}

func (p *probe) requestQuit() {
	p.quit = true
	p.logger.Info("Quit requested")
}

// scheduleHeartbeat logs on simulation time, so it stops while paused.
func (p *probe) scheduleHeartbeat() {
	p.clock.After(heartbeatInterval, func() {
		p.logger.Info("Heartbeat",
			"elapsed", p.clock.Elapsed().String(),
			"frames", p.clock.Frames(),
			"presses", p.presses)
		p.scheduleHeartbeat()
	})
}
