package bramble

import (
	"strconv"
	"strings"
)

// Key is a symbolic, layout-independent key.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShift
	KeyControl
	KeyAlt
	KeySuper
	KeyCapsLock
	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBracketLeft
	KeyBracketRight
	KeyBackquote
)

var namedKeys = map[Key]string{
	KeyUnknown:      "unknown",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyDelete:       "delete",
	KeyInsert:       "insert",
	KeySpace:        "space",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyPageUp:       "pageup",
	KeyPageDown:     "pagedown",
	KeyShift:        "shift",
	KeyControl:      "control",
	KeyAlt:          "alt",
	KeySuper:        "super",
	KeyCapsLock:     "capslock",
	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyQuote:        "quote",
	KeyBracketLeft:  "bracketleft",
	KeyBracketRight: "bracketright",
	KeyBackquote:    "backquote",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	return "key" + strconv.Itoa(int(k))
}

// ParseKey is the inverse of Key.String. It returns KeyUnknown and false for
// names it does not recognize.
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(name)
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a'), true
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), true
		}
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(name, "f")); err == nil && name[0] == 'f' && n >= 1 && n <= 12 {
		return KeyF1 + Key(n-1), true
	}
	for k, s := range namedKeys {
		if s == name && k != KeyUnknown {
			return k, true
		}
	}
	return KeyUnknown, false
}
