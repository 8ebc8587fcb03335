package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
)

func TestRasterizeEveryButton(t *testing.T) {
	buttons := append([]constants.GamepadButton{constants.GamepadButtonNone}, constants.GamepadButtons...)
	for _, gb := range buttons {
		t.Run(gb.String(), func(t *testing.T) {
			img, err := RasterizeGlyph(gb, 32)
			require.NoError(t, err)
			assert.Equal(t, 32, img.Bounds().Dx())
			assert.Equal(t, 32, img.Bounds().Dy())
			assert.True(t, hasInk(img.Pix), "glyph is blank")
		})
	}
}

func TestRasterizeRejectsBadSize(t *testing.T) {
	_, err := RasterizeGlyph(constants.GamepadButtonA, 0)
	assert.Error(t, err)
}

func TestFaceButtonCentreUsesItsColour(t *testing.T) {
	img, err := RasterizeGlyph(constants.GamepadButtonB, 64)
	require.NoError(t, err)

	c := img.RGBAAt(32, 32)
	assert.Greater(t, c.R, c.G, "B is drawn red")
	assert.Equal(t, uint8(0xff), c.A)
}

func TestGlyphCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewGlyphCacheWithSize(2)

	a1, err := c.Glyph(constants.GamepadButtonA, 16)
	require.NoError(t, err)
	_, err = c.Glyph(constants.GamepadButtonB, 16)
	require.NoError(t, err)

	a2, err := c.Glyph(constants.GamepadButtonA, 16)
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	_, err = c.Glyph(constants.GamepadButtonX, 16)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.contains(constants.GamepadButtonA, 16))
	assert.False(t, c.contains(constants.GamepadButtonB, 16))
	assert.True(t, c.contains(constants.GamepadButtonX, 16))

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestGlyphCacheKeysBySize(t *testing.T) {
	c := NewGlyphCache()

	small, err := c.Glyph(constants.GamepadButtonY, 16)
	require.NoError(t, err)
	large, err := c.Glyph(constants.GamepadButtonY, 48)
	require.NoError(t, err)

	assert.NotSame(t, small, large)
	assert.Equal(t, 2, c.Len())
}

func hasInk(pix []uint8) bool {
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			return true
		}
	}
	return false
}

func TestPaletteOverridesFaces(t *testing.T) {
	p := DefaultPalette.WithFaces(map[constants.GamepadButton]string{
		constants.GamepadButtonB: HexColor(0x0000FF),
	})
	assert.Contains(t, p.GlyphSVG(constants.GamepadButtonB), `fill="#0000ff"`)
	assert.Contains(t, DefaultPalette.GlyphSVG(constants.GamepadButtonB), `fill="#d64541"`, "default palette untouched")

	img, err := p.Rasterize(constants.GamepadButtonB, 64)
	require.NoError(t, err)
	c := img.RGBAAt(32, 32)
	assert.Greater(t, c.B, c.R)
}

func TestPaletteFaceFallsBackToAccent(t *testing.T) {
	p := Palette{Fill: "#000000", Accent: "#123456", Outline: "#ffffff"}
	assert.Contains(t, p.GlyphSVG(constants.GamepadButtonY), `fill="#123456"`)
}

func TestPaletteGlyphCache(t *testing.T) {
	p := DefaultPalette.WithFaces(map[constants.GamepadButton]string{
		constants.GamepadButtonA: HexColor(0xFF0000),
	})
	c := NewPaletteGlyphCache(p, 4)

	img, err := c.Glyph(constants.GamepadButtonA, 32)
	require.NoError(t, err)
	centre := img.RGBAAt(16, 16)
	assert.Greater(t, centre.R, centre.G)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#008080", HexColor(0x008080))
	assert.Equal(t, "#ffffff", HexColor(0xFFFFFFFF))
}
