// Package config loads router settings from the environment and key
// bindings from TOML files.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/router"
)

// Env holds the settings read from SICLE_* environment variables.
type Env struct {
	Deadzone     float64 `env:"DEADZONE" envDefault:"0.2"`
	UseGamepad   bool    `env:"USE_GAMEPAD"`
	Platform     string  `env:"PLATFORM"`
	Player       int     `env:"PLAYER" envDefault:"-1"`
	DebugInput   bool    `env:"DEBUG_INPUT"`
	LogLevel     string  `env:"LOG_LEVEL" envDefault:"info"`
	LogPath      string  `env:"LOG_PATH"`
	BindingsFile string  `env:"BINDINGS"`
	Language     string  `env:"LANGUAGE" envDefault:"en"`
	InputDevice  string  `env:"INPUT_DEVICE"`
}

// ParseEnv loads configuration from the process environment.
func ParseEnv() (Env, error) {
	return ParseEnvFrom(nil)
}

// ParseEnvFrom loads configuration from vars instead of the process
// environment when vars is non-nil.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var cfg Env
	opts := env.Options{Prefix: constants.EnvPrefix}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// PlatformOrCurrent resolves the configured platform, falling back to the
// build platform when unset or unrecognised.
func (e Env) PlatformOrCurrent() constants.Platform {
	if p := constants.ParsePlatform(e.Platform); p != constants.PlatformUnknown {
		return p
	}
	return constants.CurrentPlatform()
}

// LogLevelValue parses LogLevel.
func (e Env) LogLevelValue() slog.Level {
	return internal.ParseLevel(e.LogLevel)
}

// RouterOptions converts the settings into router options. A zero Deadzone
// is treated as unset so a zero Env keeps the router defaults.
func (e Env) RouterOptions() []router.Option {
	opts := []router.Option{
		router.WithDebugInput(e.DebugInput),
	}
	if e.Deadzone > 0 {
		opts = append(opts, router.WithDeadzone(e.Deadzone))
	}
	if e.UseGamepad {
		opts = append(opts, router.WithGamepad(e.PlatformOrCurrent(), e.Player))
	}
	return opts
}
