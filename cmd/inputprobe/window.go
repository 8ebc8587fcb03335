package main

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/prompt"
)

const (
	windowWidth  = 480
	windowHeight = 320
	glyphSize    = 128
	barLength    = 100
)

// window shows the last gamepad button as a glyph and the stick positions as
// bars. Keyboard input also needs it: SDL only reports keys to a focused window.
type window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	glyphs   *prompt.GlyphCache
	textures map[constants.GamepadButton]*sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

// windowOptions are the display settings a handheld may need.
type windowOptions struct {
	fullscreen bool // at desktop resolution, as handheld firmware expects
	borderless bool
	palette    prompt.Palette
}

func (o windowOptions) flags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if o.fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if o.borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	return flags
}

func openWindow(title string, opts windowOptions) (*window, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight, opts.flags())
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		renderer, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		win.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, err
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{
		window:   win,
		renderer: renderer,
		glyphs:   prompt.NewPaletteGlyphCache(opts.palette, 32),
		textures: make(map[constants.GamepadButton]*sdl.Texture),
		hasVSync: vsync,
	}, nil
}

func (w *window) draw(p *probe) {
	if p.router.IsPaused() {
		w.renderer.SetDrawColor(0x40, 0x10, 0x10, 0xff)
	} else {
		w.renderer.SetDrawColor(0x18, 0x18, 0x18, 0xff)
	}
	w.renderer.Clear()

	if p.lastButton != constants.GamepadButtonNone {
		if tex := w.glyphTexture(p.lastButton); tex != nil {
			w.renderer.Copy(tex, nil, &sdl.Rect{
				X: (windowWidth - glyphSize) / 2,
				Y: (windowHeight - glyphSize) / 2,
				W: glyphSize,
				H: glyphSize,
			})
		}
	}

	w.renderer.SetDrawColor(0xf2, 0xf2, 0xf2, 0xff)
	w.drawBar(40, p.axes[keys.AxisLeftHorizontal], p.axes[keys.AxisLeftVertical])
	w.drawBar(windowWidth-40, p.axes[keys.AxisRightHorizontal], p.axes[keys.AxisRightVertical])

	w.present()
}

// drawBar draws a crosshair offset from (cx, centre) by the stick position.
func (w *window) drawBar(cx int32, x, y float64) {
	cy := int32(windowHeight / 2)
	dx := int32(x * barLength / 4)
	dy := int32(-y * barLength / 4)
	w.renderer.FillRect(&sdl.Rect{X: cx + dx - 2, Y: cy + dy - 12, W: 4, H: 24})
	w.renderer.FillRect(&sdl.Rect{X: cx + dx - 12, Y: cy + dy - 2, W: 24, H: 4})
}

func (w *window) glyphTexture(gb constants.GamepadButton) *sdl.Texture {
	if tex, ok := w.textures[gb]; ok {
		return tex
	}
	img, err := w.glyphs.Glyph(gb, glyphSize)
	if err != nil {
		return nil
	}
	tex, err := w.textureFromImage(img)
	if err != nil {
		return nil
	}
	w.textures[gb] = tex
	return tex
}

// textureFromImage uploads RGBA pixels. ABGR8888 is RGBA byte order on the
// little endian machines this runs on.
func (w *window) textureFromImage(img *image.RGBA) (*sdl.Texture, error) {
	width, height := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, width, height, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	pixels := surface.Pixels()
	rowBytes := int(width) * 4
	for y := 0; y < int(height); y++ {
		copy(pixels[y*int(surface.Pitch):y*int(surface.Pitch)+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}

	tex, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

// present swaps buffers and holds roughly 60fps when VSync is unavailable.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) close() {
	for _, tex := range w.textures {
		tex.Destroy()
	}
	w.glyphs.Clear()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
