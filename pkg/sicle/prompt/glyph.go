package prompt

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
)

const glyphViewBox = 64

var dpadArrows = map[constants.GamepadButton]string{
	constants.GamepadButtonDpadUp:    "M32 8 L52 36 L12 36 Z",
	constants.GamepadButtonDpadDown:  "M32 56 L52 28 L12 28 Z",
	constants.GamepadButtonDpadLeft:  "M8 32 L36 12 L36 52 Z",
	constants.GamepadButtonDpadRight: "M56 32 L28 12 L28 52 Z",
}

// GlyphSVG returns an SVG drawing of the button on a 64x64 canvas in the
// default palette.
func GlyphSVG(gb constants.GamepadButton) string {
	return DefaultPalette.GlyphSVG(gb)
}

// RasterizeGlyph draws the button's glyph into a size x size RGBA image in the
// default palette.
func RasterizeGlyph(gb constants.GamepadButton, size int) (*image.RGBA, error) {
	return DefaultPalette.Rasterize(gb, size)
}

// GlyphSVG returns an SVG drawing of the button on a 64x64 canvas.
func (p Palette) GlyphSVG(gb constants.GamepadButton) string {
	var body string
	switch gb {
	case constants.GamepadButtonA, constants.GamepadButtonB, constants.GamepadButtonX, constants.GamepadButtonY:
		body = fmt.Sprintf(`<circle cx="32" cy="32" r="28" fill="%s" %s/>`, p.face(gb), p.outline())
	case constants.GamepadButtonLB, constants.GamepadButtonRB:
		body = fmt.Sprintf(`<rect x="4" y="18" width="56" height="28" rx="12" fill="%s" %s/>`, p.Fill, p.outline())
	case constants.GamepadButtonBack, constants.GamepadButtonStart:
		body = fmt.Sprintf(`<rect x="8" y="22" width="48" height="20" rx="10" fill="%s" %s/>`, p.Fill, p.outline())
	case constants.GamepadButtonLeftStick, constants.GamepadButtonRightStick:
		body = fmt.Sprintf(`<circle cx="32" cy="32" r="28" fill="%s" %s/><circle cx="32" cy="32" r="14" fill="%s"/>`,
			p.Fill, p.outline(), p.Accent)
	case constants.GamepadButtonDpadUp, constants.GamepadButtonDpadDown, constants.GamepadButtonDpadLeft, constants.GamepadButtonDpadRight:
		body = fmt.Sprintf(`<path d="%s" fill="%s"/>`, dpadArrows[gb], p.Accent)
	default:
		body = fmt.Sprintf(`<circle cx="32" cy="32" r="28" fill="none" %s/>`, p.outline())
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">%s</svg>`,
		glyphViewBox, glyphViewBox, glyphViewBox, glyphViewBox, body)
}

// Rasterize draws the button's glyph into a size x size RGBA image.
func (p Palette) Rasterize(gb constants.GamepadButton, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph size must be positive, got %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(p.GlyphSVG(gb)))
	if err != nil {
		return nil, fmt.Errorf("parse glyph for %s: %w", gb, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
