package prompt

import (
	"fmt"
	"maps"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
)

// Palette colours button glyphs. Colours are SVG colour strings; see HexColor.
// Custom firmware usually ships its own, see the platform packages.
type Palette struct {
	Fill    string // bumpers, sticks and menu buttons
	Accent  string // D-pad arrows and stick caps
	Outline string
	Faces   map[constants.GamepadButton]string // face buttons, falling back to Accent
}

// DefaultPalette uses the common A green, B red, X blue, Y yellow convention.
var DefaultPalette = Palette{
	Fill:    "#2b2b2b",
	Accent:  "#f2f2f2",
	Outline: "#f2f2f2",
	Faces: map[constants.GamepadButton]string{
		constants.GamepadButtonA: "#3fa34d",
		constants.GamepadButtonB: "#d64541",
		constants.GamepadButtonX: "#2f6fd6",
		constants.GamepadButtonY: "#e0b12f",
	},
}

// HexColor formats a 0xRRGGBB value as an SVG colour.
func HexColor(rgb uint32) string {
	return fmt.Sprintf("#%06x", rgb&0xFFFFFF)
}

// WithFaces returns a copy of p with the given face colours replacing its own.
func (p Palette) WithFaces(faces map[constants.GamepadButton]string) Palette {
	out := p
	out.Faces = maps.Clone(p.Faces)
	if out.Faces == nil {
		out.Faces = make(map[constants.GamepadButton]string, len(faces))
	}
	maps.Copy(out.Faces, faces)
	return out
}

func (p Palette) face(gb constants.GamepadButton) string {
	if c, ok := p.Faces[gb]; ok {
		return c
	}
	return p.Accent
}

func (p Palette) outline() string {
	return fmt.Sprintf(`stroke="%s" stroke-width="3"`, p.Outline)
}
