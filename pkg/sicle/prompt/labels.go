// Package prompt produces the player-facing side of a binding: localized
// names for buttons and keys, "Press A to confirm" prompts, and rasterized
// button glyphs for on-screen hints.
package prompt

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

//go:embed locales/*.toml
var localeFS embed.FS

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

// Supported returns the languages with a catalog.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		paths, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			bundleErr = fmt.Errorf("glob locale catalogs: %w", err)
			return
		}
		for _, path := range paths {
			if _, err := b.LoadMessageFileFS(localeFS, path); err != nil {
				bundleErr = fmt.Errorf("load catalog %s: %w", path, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Labeler localizes input names for one language.
type Labeler struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLabeler returns a Labeler for the closest supported match to lang, a
// BCP 47 tag or Accept-Language style list. Unknown languages get English.
func NewLabeler(lang string) (*Labeler, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if lang = strings.TrimSpace(lang); lang != "" {
		if desired, _, err := language.ParseAcceptLanguage(lang); err == nil && len(desired) > 0 {
			_, index, confidence := tagMatcher.Match(desired...)
			if confidence != language.No {
				tag = supportedTags[index]
			}
		}
	}

	return &Labeler{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String()),
	}, nil
}

// Language returns the language labels are produced in.
func (l *Labeler) Language() language.Tag {
	return l.tag
}

// Button returns the display name of a gamepad button.
func (l *Labeler) Button(gb constants.GamepadButton) string {
	return l.localize("Button"+gb.GetName(), gb.GetName(), nil)
}

// Key returns the display name of a key. Joystick keys are named by the
// logical button they stand for on platform when there is one.
func (l *Labeler) Key(k keys.Key, platform constants.Platform) string {
	if k.IsJoystick() {
		if gb, ok := keys.GamepadButtonFor(k, platform); ok {
			return l.Button(gb)
		}
	}
	return l.localize("Key"+k.String(), k.String(), nil)
}

// Action returns the display name of an action. Actions without a catalog
// entry are shown as given.
func (l *Labeler) Action(action string) string {
	return l.localize("Action"+action, action, nil)
}

// Prompt returns a hint such as "Press A to confirm".
func (l *Labeler) Prompt(action string, gb constants.GamepadButton) string {
	return l.localize("Prompt", "Press {{.Button}} to {{.Action}}", map[string]string{
		"Button": l.Button(gb),
		"Action": l.Action(action),
	})
}

// IconPrompt returns a compact hint with the button as an icon-font glyph,
// for hosts that draw text with a Material Design Icons font.
func (l *Labeler) IconPrompt(action string, gb constants.GamepadButton) string {
	return gb.Icon() + " " + l.Action(action)
}

// Paused returns the banner shown while paused.
func (l *Labeler) Paused() string {
	return l.localize("PausedBanner", "Paused", nil)
}

func (l *Labeler) localize(id, fallback string, data map[string]string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   data,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if msg == "" {
		internal.GetInternalLogger().Debug("Missing input label", "id", id, "language", l.tag.String(), "error", err)
		return fallback
	}
	return msg
}
