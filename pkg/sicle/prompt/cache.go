package prompt

import (
	"image"
	"sync"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
)

const defaultMaxGlyphs = 32

type glyphKey struct {
	button constants.GamepadButton
	size   int
}

// GlyphCache keeps recently rasterized glyphs, evicting the least recently
// used once full. It is safe for concurrent use.
type GlyphCache struct {
	palette Palette

	mu      sync.Mutex
	glyphs  map[glyphKey]*image.RGBA
	order   []glyphKey // least recently used first
	maxSize int
}

func NewGlyphCache() *GlyphCache {
	return NewGlyphCacheWithSize(defaultMaxGlyphs)
}

func NewGlyphCacheWithSize(maxSize int) *GlyphCache {
	return NewPaletteGlyphCache(DefaultPalette, maxSize)
}

// NewPaletteGlyphCache returns a cache that draws glyphs in palette.
func NewPaletteGlyphCache(palette Palette, maxSize int) *GlyphCache {
	maxSize = max(1, maxSize)
	return &GlyphCache{
		palette: palette,
		glyphs:  make(map[glyphKey]*image.RGBA),
		order:   make([]glyphKey, 0, maxSize),
		maxSize: maxSize,
	}
}

// Glyph returns the cached glyph, rasterizing it on a miss.
func (c *GlyphCache) Glyph(gb constants.GamepadButton, size int) (*image.RGBA, error) {
	key := glyphKey{button: gb, size: size}

	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.glyphs[key]; ok {
		c.moveToEnd(key)
		return img, nil
	}

	img, err := c.palette.Rasterize(gb, size)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.glyphs[key] = img
	c.order = append(c.order, key)
	return img, nil
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.glyphs)
}

// Clear drops every cached glyph.
func (c *GlyphCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.glyphs)
	c.order = c.order[:0]
}

func (c *GlyphCache) moveToEnd(key glyphKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *GlyphCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.glyphs, oldest)
}

func (c *GlyphCache) contains(gb constants.GamepadButton, size int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.glyphs[glyphKey{button: gb, size: size}]
	return ok
}
