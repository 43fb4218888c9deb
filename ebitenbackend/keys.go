package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble"
)

var keyMap = map[ebiten.Key]bramble.Key{
	ebiten.KeyA: bramble.KeyA,
	ebiten.KeyB: bramble.KeyB,
	ebiten.KeyC: bramble.KeyC,
	ebiten.KeyD: bramble.KeyD,
	ebiten.KeyE: bramble.KeyE,
	ebiten.KeyF: bramble.KeyF,
	ebiten.KeyG: bramble.KeyG,
	ebiten.KeyH: bramble.KeyH,
	ebiten.KeyI: bramble.KeyI,
	ebiten.KeyJ: bramble.KeyJ,
	ebiten.KeyK: bramble.KeyK,
	ebiten.KeyL: bramble.KeyL,
	ebiten.KeyM: bramble.KeyM,
	ebiten.KeyN: bramble.KeyN,
	ebiten.KeyO: bramble.KeyO,
	ebiten.KeyP: bramble.KeyP,
	ebiten.KeyQ: bramble.KeyQ,
	ebiten.KeyR: bramble.KeyR,
	ebiten.KeyS: bramble.KeyS,
	ebiten.KeyT: bramble.KeyT,
	ebiten.KeyU: bramble.KeyU,
	ebiten.KeyV: bramble.KeyV,
	ebiten.KeyW: bramble.KeyW,
	ebiten.KeyX: bramble.KeyX,
	ebiten.KeyY: bramble.KeyY,
	ebiten.KeyZ: bramble.KeyZ,

	ebiten.KeyDigit0: bramble.Key0,
	ebiten.KeyDigit1: bramble.Key1,
	ebiten.KeyDigit2: bramble.Key2,
	ebiten.KeyDigit3: bramble.Key3,
	ebiten.KeyDigit4: bramble.Key4,
	ebiten.KeyDigit5: bramble.Key5,
	ebiten.KeyDigit6: bramble.Key6,
	ebiten.KeyDigit7: bramble.Key7,
	ebiten.KeyDigit8: bramble.Key8,
	ebiten.KeyDigit9: bramble.Key9,

	ebiten.KeyF1:  bramble.KeyF1,
	ebiten.KeyF2:  bramble.KeyF2,
	ebiten.KeyF3:  bramble.KeyF3,
	ebiten.KeyF4:  bramble.KeyF4,
	ebiten.KeyF5:  bramble.KeyF5,
	ebiten.KeyF6:  bramble.KeyF6,
	ebiten.KeyF7:  bramble.KeyF7,
	ebiten.KeyF8:  bramble.KeyF8,
	ebiten.KeyF9:  bramble.KeyF9,
	ebiten.KeyF10: bramble.KeyF10,
	ebiten.KeyF11: bramble.KeyF11,
	ebiten.KeyF12: bramble.KeyF12,

	ebiten.KeyEscape:       bramble.KeyEscape,
	ebiten.KeyEnter:        bramble.KeyEnter,
	ebiten.KeyNumpadEnter:  bramble.KeyEnter,
	ebiten.KeyTab:          bramble.KeyTab,
	ebiten.KeyBackspace:    bramble.KeyBackspace,
	ebiten.KeyDelete:       bramble.KeyDelete,
	ebiten.KeyInsert:       bramble.KeyInsert,
	ebiten.KeySpace:        bramble.KeySpace,
	ebiten.KeyArrowLeft:    bramble.KeyLeft,
	ebiten.KeyArrowRight:   bramble.KeyRight,
	ebiten.KeyArrowUp:      bramble.KeyUp,
	ebiten.KeyArrowDown:    bramble.KeyDown,
	ebiten.KeyHome:         bramble.KeyHome,
	ebiten.KeyEnd:          bramble.KeyEnd,
	ebiten.KeyPageUp:       bramble.KeyPageUp,
	ebiten.KeyPageDown:     bramble.KeyPageDown,
	ebiten.KeyShiftLeft:    bramble.KeyShift,
	ebiten.KeyShiftRight:   bramble.KeyShift,
	ebiten.KeyControlLeft:  bramble.KeyControl,
	ebiten.KeyControlRight: bramble.KeyControl,
	ebiten.KeyAltLeft:      bramble.KeyAlt,
	ebiten.KeyAltRight:     bramble.KeyAlt,
	ebiten.KeyMetaLeft:     bramble.KeySuper,
	ebiten.KeyMetaRight:    bramble.KeySuper,
	ebiten.KeyCapsLock:     bramble.KeyCapsLock,
	ebiten.KeyMinus:        bramble.KeyMinus,
	ebiten.KeyEqual:        bramble.KeyEqual,
	ebiten.KeyComma:        bramble.KeyComma,
	ebiten.KeyPeriod:       bramble.KeyPeriod,
	ebiten.KeySlash:        bramble.KeySlash,
	ebiten.KeyBackslash:    bramble.KeyBackslash,
	ebiten.KeySemicolon:    bramble.KeySemicolon,
	ebiten.KeyQuote:        bramble.KeyQuote,
	ebiten.KeyBracketLeft:  bramble.KeyBracketLeft,
	ebiten.KeyBracketRight: bramble.KeyBracketRight,
	ebiten.KeyBackquote:    bramble.KeyBackquote,
}

// mapKey translates an Ebitengine key. Unmapped keys become KeyUnknown; the
// original code is still carried in KeyEvent.Scancode.
func mapKey(k ebiten.Key) bramble.Key {
	if bk, ok := keyMap[k]; ok {
		return bk
	}
	return bramble.KeyUnknown
}

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	b  bramble.MouseButton
}{
	{ebiten.MouseButtonLeft, bramble.MouseButtonLeft},
	{ebiten.MouseButtonRight, bramble.MouseButtonRight},
	{ebiten.MouseButtonMiddle, bramble.MouseButtonMiddle},
	{ebiten.MouseButton3, bramble.MouseButtonBack},
	{ebiten.MouseButton4, bramble.MouseButtonForward},
}

// modifiers reports the current modifier state.
func modifiers() bramble.Modifiers {
	var m bramble.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= bramble.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= bramble.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= bramble.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= bramble.ModSuper
	}
	return m
}
