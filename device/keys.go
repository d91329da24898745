// Package device feeds Ebitengine keyboard, mouse and gamepad input into an
// input.Input, standing in for the browser's DOM event listeners.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gamekit/input"
)

var keyCodes = map[ebiten.Key]input.KeyCode{
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyNumpadEnter:  input.KeyEnter,
	ebiten.KeyShiftLeft:    input.KeyShift,
	ebiten.KeyShiftRight:   input.KeyShift,
	ebiten.KeyControlLeft:  input.KeyControl,
	ebiten.KeyControlRight: input.KeyControl,
	ebiten.KeyAltLeft:      input.KeyAlt,
	ebiten.KeyAltRight:     input.KeyAlt,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeyArrowDown:    input.KeyDown,
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
		ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
		ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
		ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
		ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		keyCodes[k] = input.KeyA + input.KeyCode(i)
	}

	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		keyCodes[k] = input.Key0 + input.KeyCode(i)
	}

	fkeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range fkeys {
		keyCodes[k] = input.KeyF1 + input.KeyCode(i)
	}
}

// KeyCodeOf returns the browser key code for an Ebitengine key.
func KeyCodeOf(k ebiten.Key) (input.KeyCode, bool) {
	code, ok := keyCodes[k]
	return code, ok
}

// mouseButtons lists Ebitengine mouse buttons in browser button order:
// left, middle, right, back, forward.
var mouseButtons = [input.MouseButtonCount]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
	ebiten.MouseButton3,
	ebiten.MouseButton4,
}
