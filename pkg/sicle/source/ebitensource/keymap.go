package ebitensource

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

var keyboardKeys = map[keys.Key]ebiten.Key{
	keys.A: ebiten.KeyA,
	keys.B: ebiten.KeyB,
	keys.C: ebiten.KeyC,
	keys.D: ebiten.KeyD,
	keys.E: ebiten.KeyE,
	keys.F: ebiten.KeyF,
	keys.G: ebiten.KeyG,
	keys.H: ebiten.KeyH,
	keys.I: ebiten.KeyI,
	keys.J: ebiten.KeyJ,
	keys.K: ebiten.KeyK,
	keys.L: ebiten.KeyL,
	keys.M: ebiten.KeyM,
	keys.N: ebiten.KeyN,
	keys.O: ebiten.KeyO,
	keys.P: ebiten.KeyP,
	keys.Q: ebiten.KeyQ,
	keys.R: ebiten.KeyR,
	keys.S: ebiten.KeyS,
	keys.T: ebiten.KeyT,
	keys.U: ebiten.KeyU,
	keys.V: ebiten.KeyV,
	keys.W: ebiten.KeyW,
	keys.X: ebiten.KeyX,
	keys.Y: ebiten.KeyY,
	keys.Z: ebiten.KeyZ,

	keys.Alpha0: ebiten.KeyDigit0,
	keys.Alpha1: ebiten.KeyDigit1,
	keys.Alpha2: ebiten.KeyDigit2,
	keys.Alpha3: ebiten.KeyDigit3,
	keys.Alpha4: ebiten.KeyDigit4,
	keys.Alpha5: ebiten.KeyDigit5,
	keys.Alpha6: ebiten.KeyDigit6,
	keys.Alpha7: ebiten.KeyDigit7,
	keys.Alpha8: ebiten.KeyDigit8,
	keys.Alpha9: ebiten.KeyDigit9,

	keys.UpArrow:    ebiten.KeyArrowUp,
	keys.DownArrow:  ebiten.KeyArrowDown,
	keys.LeftArrow:  ebiten.KeyArrowLeft,
	keys.RightArrow: ebiten.KeyArrowRight,

	keys.Space:        ebiten.KeySpace,
	keys.Return:       ebiten.KeyEnter,
	keys.Escape:       ebiten.KeyEscape,
	keys.Tab:          ebiten.KeyTab,
	keys.Backspace:    ebiten.KeyBackspace,
	keys.LeftShift:    ebiten.KeyShiftLeft,
	keys.RightShift:   ebiten.KeyShiftRight,
	keys.LeftControl:  ebiten.KeyControlLeft,
	keys.RightControl: ebiten.KeyControlRight,
	keys.LeftAlt:      ebiten.KeyAltLeft,
	keys.RightAlt:     ebiten.KeyAltRight,

	keys.F1:  ebiten.KeyF1,
	keys.F2:  ebiten.KeyF2,
	keys.F3:  ebiten.KeyF3,
	keys.F4:  ebiten.KeyF4,
	keys.F5:  ebiten.KeyF5,
	keys.F6:  ebiten.KeyF6,
	keys.F7:  ebiten.KeyF7,
	keys.F8:  ebiten.KeyF8,
	keys.F9:  ebiten.KeyF9,
	keys.F10: ebiten.KeyF10,
	keys.F11: ebiten.KeyF11,
	keys.F12: ebiten.KeyF12,
}

// EbitenKey returns the ebiten key read for a keyboard key.
func EbitenKey(k keys.Key) (ebiten.Key, bool) {
	ek, ok := keyboardKeys[k]
	return ek, ok
}
