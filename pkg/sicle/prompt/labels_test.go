package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

func TestLabelerEnglish(t *testing.T) {
	l, err := NewLabeler("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, l.Language())
	assert.Equal(t, "Left Bumper", l.Button(constants.GamepadButtonLB))
	assert.Equal(t, "Space", l.Key(keys.Space, constants.PlatformLinux))
	assert.Equal(t, "Press A to confirm", l.Prompt("Confirm", constants.GamepadButtonA))
	assert.Equal(t, "Paused", l.Paused())
}

func TestLabelerPortuguese(t *testing.T) {
	l, err := NewLabeler("pt-BR")
	require.NoError(t, err)

	assert.Equal(t, "Iniciar", l.Button(constants.GamepadButtonStart))
	assert.Equal(t, "Pressione Iniciar para pausar", l.Prompt("Pause", constants.GamepadButtonStart))
	assert.Equal(t, "Pausado", l.Paused())
}

func TestLabelerFallsBackToEnglishCatalog(t *testing.T) {
	l, err := NewLabeler("pt-BR")
	require.NoError(t, err)

	// Face buttons are not translated and come from the English catalog
	assert.Equal(t, "A", l.Button(constants.GamepadButtonA))
	assert.Equal(t, "Enter", l.Key(keys.Return, constants.PlatformLinux))
}

func TestLabelerUnknownLanguage(t *testing.T) {
	for _, lang := range []string{"", "xx", "not a tag!"} {
		l, err := NewLabeler(lang)
		require.NoError(t, err)
		assert.Equal(t, "Start", l.Button(constants.GamepadButtonStart), "lang %q", lang)
	}
}

func TestLabelerAcceptLanguageList(t *testing.T) {
	l, err := NewLabeler("fr-FR, pt-BR;q=0.8, en;q=0.5")
	require.NoError(t, err)
	assert.Equal(t, "Pausado", l.Paused())
}

func TestLabelerUncataloguedNames(t *testing.T) {
	l, err := NewLabeler("en")
	require.NoError(t, err)

	assert.Equal(t, "jump", l.Action("jump"))
	assert.Equal(t, "F5", l.Key(keys.F5, constants.PlatformLinux))
}

func TestLabelerJoystickKeysUseButtonNames(t *testing.T) {
	l, err := NewLabeler("en")
	require.NoError(t, err)

	start := keys.ForGamepad(constants.GamepadButtonStart, constants.PlatformLinux, constants.AnyPlayer)
	assert.Equal(t, "Start", l.Key(start, constants.PlatformLinux))

	unmapped := keys.JoystickButton(0, 19)
	assert.Equal(t, unmapped.String(), l.Key(unmapped, constants.PlatformLinux))
}

func TestSupportedIsACopy(t *testing.T) {
	tags := Supported()
	tags[0] = language.Japanese
	assert.Equal(t, language.English, Supported()[0])
}

func TestIconPrompt(t *testing.T) {
	l, err := NewLabeler("pt-BR")
	require.NoError(t, err)

	assert.Equal(t, constants.IconStart+" pausar", l.IconPrompt("Pause", constants.GamepadButtonStart))
}
