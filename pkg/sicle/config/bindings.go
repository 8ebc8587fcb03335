package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/router"
)

// ErrUnknownAction is reported when a bindings file names an action that is
// not in the Actions passed to Apply.
var ErrUnknownAction = errors.New("unknown action")

// Bindings is the decoded form of a bindings file:
//
//	deadzone = 0.25
//	pause_keys = ["Escape"]
//
//	[[page]]
//	name = "Default"
//
//	  [[page.key]]
//	  key = "LeftArrow"
//	  gamepad = "DpadLeft"
//	  held = "move_left"
//	  up = "stop_horizontal"
//
//	  [[page.axis]]
//	  axis = "Horizontal"
//	  action = "move_horizontal"
type Bindings struct {
	Deadzone  *float64     `toml:"deadzone" yaml:"deadzone"`
	PauseKeys []keys.Key   `toml:"pause_keys" yaml:"pause_keys"`
	Pages     []PageConfig `toml:"page" yaml:"page"`
}

// PageConfig lists the bindings of one page.
type PageConfig struct {
	Name string       `toml:"name" yaml:"name"`
	Keys []KeyConfig  `toml:"key" yaml:"key"`
	Axes []AxisConfig `toml:"axis" yaml:"axis"`
}

// KeyConfig binds one key, and optionally a gamepad button, to named actions.
type KeyConfig struct {
	Key        keys.Key `toml:"key" yaml:"key"`
	Gamepad    string   `toml:"gamepad" yaml:"gamepad"`
	Down       string   `toml:"down" yaml:"down"`
	Held       string   `toml:"held" yaml:"held"`
	Up         string   `toml:"up" yaml:"up"`
	WhenPaused bool     `toml:"when_paused" yaml:"when_paused"`

	// Repeat turns Held into a repeating pulse; see binding.Repeater.
	Repeat         bool     `toml:"repeat" yaml:"repeat"`
	RepeatDelay    Duration `toml:"repeat_delay" yaml:"repeat_delay"`
	RepeatInterval Duration `toml:"repeat_interval" yaml:"repeat_interval"`
}

// AxisConfig binds an axis to a named axis action.
type AxisConfig struct {
	Axis   keys.Axis `toml:"axis" yaml:"axis"`
	Action string    `toml:"action" yaml:"action"`
}

// Duration decodes TOML strings such as "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Actions are the callbacks a bindings file may refer to by name.
type Actions struct {
	Keys map[string]binding.Action
	Axes map[string]binding.AxisAction
}

// LoadBindings reads a bindings file, TOML unless the name ends in .yaml or
// .yml. Locations that are http or https URLs are fetched with FetchBindings.
func LoadBindings(path string) (*Bindings, error) {
	if IsRemote(path) {
		return FetchBindings(context.Background(), nil, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bindings file: %w", err)
	}
	defer f.Close()

	return decoderFor(path)(f)
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func decoderFor(name string) func(io.Reader) (*Bindings, error) {
	if isYAML(name) {
		return DecodeBindingsYAML
	}
	return DecodeBindings
}

// DecodeBindingsYAML reads bindings in YAML form. Field names match the TOML
// form and unknown fields are rejected the same way.
func DecodeBindingsYAML(r io.Reader) (*Bindings, error) {
	var b Bindings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}
	return &b, nil
}

// DecodeBindings reads bindings from r. Keys the schema does not know are
// rejected so typos surface at load time.
func DecodeBindings(r io.Reader) (*Bindings, error) {
	var b Bindings
	md, err := toml.NewDecoder(r).Decode(&b)
	if err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("decoding bindings: unknown fields: %s", strings.Join(names, ", "))
	}
	return &b, nil
}

// Apply installs the bindings on r. Pages are created as needed. Every
// problem is collected and returned together; valid bindings are installed
// regardless.
func (b *Bindings) Apply(r *router.Router, actions Actions) error {
	var errs []error

	if b.Deadzone != nil {
		r.SetDeadzone(*b.Deadzone)
	}
	for _, k := range b.PauseKeys {
		r.AddPauseKey(k)
	}

	for _, pc := range b.Pages {
		name := binding.PageName(pc.Name)
		page := r.Page(name, true)

		for _, kc := range pc.Keys {
			kb, err := kc.keyBinding(name, actions)
			if err != nil {
				errs = append(errs, fmt.Errorf("page %q key %s: %w", pc.Name, kc.Key, err))
				continue
			}
			if err := r.Bind(kb); err != nil {
				errs = append(errs, err)
			}
		}

		for _, ac := range pc.Axes {
			fn, ok := actions.Axes[ac.Action]
			if !ok {
				errs = append(errs, fmt.Errorf("page %q axis %s: %w: %q", pc.Name, ac.Axis, ErrUnknownAction, ac.Action))
				continue
			}
			page.AddAxisListener(ac.Axis, fn, false)
		}
	}

	return errors.Join(errs...)
}

func (kc KeyConfig) keyBinding(page binding.PageName, actions Actions) (router.KeyBinding, error) {
	kb := router.KeyBinding{
		Page:             page,
		Key:              kc.Key,
		UsableWhenPaused: kc.WhenPaused,
	}

	button, ok := constants.ParseGamepadButton(kc.Gamepad)
	if !ok {
		return kb, fmt.Errorf("unknown gamepad button %q", kc.Gamepad)
	}
	kb.Gamepad = button

	if kc.Key == keys.None && button == constants.GamepadButtonNone {
		return kb, errors.New("binding has neither key nor gamepad button")
	}

	lookup := func(name string) (binding.Action, error) {
		fn, ok := actions.Keys[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		return fn, nil
	}

	if kc.Down != "" {
		fn, err := lookup(kc.Down)
		if err != nil {
			return kb, err
		}
		kb.OnDown = binding.NewEvent(fn)
	}

	if kc.Held != "" {
		fn, err := lookup(kc.Held)
		if err != nil {
			return kb, err
		}
		if kc.Repeat {
			delay, interval := binding.DefaultRepeatDelay, binding.DefaultRepeatInterval
			if kc.RepeatDelay.Duration > 0 {
				delay = kc.RepeatDelay.Duration
			}
			if kc.RepeatInterval.Duration > 0 {
				interval = kc.RepeatInterval.Duration
			}
			rep := binding.NewRepeaterWithTiming(fn, delay, interval)
			kb.OnHeld = binding.NewEvent(rep.Held)
			if kb.OnUp == nil {
				kb.OnUp = binding.NewEvent()
			}
			kb.OnUp.Add(rep.Release)
		} else {
			kb.OnHeld = binding.NewEvent(fn)
		}
	}

	if kc.Up != "" {
		fn, err := lookup(kc.Up)
		if err != nil {
			return kb, err
		}
		if kb.OnUp == nil {
			kb.OnUp = binding.NewEvent()
		}
		kb.OnUp.Add(fn)
	}

	return kb, nil
}
