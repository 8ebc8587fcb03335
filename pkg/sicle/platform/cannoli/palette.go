// Package cannoli provides button glyph colours for the Cannoli custom
// firmware. Cannoli is a community-developed CFW for retro handheld gaming
// devices; its prompts are drawn as monochrome pills on a teal accent.
package cannoli

import (
	"github.com/sicle-games/sicle/pkg/sicle/prompt"
)

// Palette returns Cannoli's glyph colours. Face buttons share the accent.
func Palette() prompt.Palette {
	return prompt.Palette{
		Fill:    prompt.HexColor(0x008080),
		Accent:  prompt.HexColor(0xFFFFFF),
		Outline: prompt.HexColor(0x000000),
	}
}
