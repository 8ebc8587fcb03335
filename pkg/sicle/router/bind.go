package router

import (
	"fmt"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// KeyBinding describes one key's listeners on a page. Nil events are not
// bound. The events are installed by reference, so a binding that is also
// usable while paused shares one listener list between both pages.
type KeyBinding struct {
	Page             binding.PageName        // empty means Default
	Key              keys.Key                // keyboard key, may be None
	Gamepad          constants.GamepadButton // pad button, may be None
	UsableWhenPaused bool

	OnDown *binding.Event
	OnHeld *binding.Event
	OnUp   *binding.Event
}

// UseGamepad reports whether Bind also binds gamepad buttons.
func (r *Router) UseGamepad() bool {
	return r.useGamepad
}

// GamepadKey returns the key for button under the router's gamepad settings.
func (r *Router) GamepadKey(button constants.GamepadButton) keys.Key {
	return keys.ForGamepad(button, r.platform, r.player)
}

// Bind installs kb. The target page must exist.
func (r *Router) Bind(kb KeyBinding) error {
	page, err := r.LookupPage(kb.Page)
	if err != nil {
		r.logger.Error("Cannot bind key on unregistered page", "page", string(kb.Page), "key", kb.Key.String())
		return fmt.Errorf("bind %s: %w", kb.Key, err)
	}

	targets := []*binding.Page{page}
	if kb.UsableWhenPaused && page != r.PausedPage() {
		targets = append(targets, r.PausedPage())
	}

	bound := make([]keys.Key, 0, 2)
	if kb.Key != keys.None {
		bound = append(bound, kb.Key)
	}
	if r.useGamepad && kb.Gamepad != constants.GamepadButtonNone {
		if k := r.GamepadKey(kb.Gamepad); k != keys.None {
			bound = append(bound, k)
		} else {
			r.logger.Warn("Gamepad button has no key on this platform",
				"button", kb.Gamepad.GetName(), "platform", r.platform.String())
		}
	}

	for _, p := range targets {
		for _, k := range bound {
			if kb.OnDown != nil {
				p.SetKeyDownEvent(k, kb.OnDown)
			}
			if kb.OnHeld != nil {
				p.SetKeyHeldEvent(k, kb.OnHeld)
			}
			if kb.OnUp != nil {
				p.SetKeyUpEvent(k, kb.OnUp)
			}
		}
	}
	return nil
}
