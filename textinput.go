package bramble

import (
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
)

// clipboardRead is replaced in tests.
var clipboardRead = clipboard.ReadAll

// cursorBlink is the cursor blink half-period in seconds.
const cursorBlink = 0.5

// TextInput is a single-line editable text field. Clicking it takes keyboard
// focus; clicking anywhere else releases it. While focused it consumes
// character input and editing keys.
type TextInput struct {
	Base
	Font        FontDescriptor
	Color       Color
	Background  Color
	Placeholder string
	Padding     Border
	// MaxLen limits the text to this many runes; 0 means no limit.
	MaxLen int

	// OnChange is called after every edit with the new text.
	OnChange func(text string)

	measurer TextMeasurer
	text     []rune
	cursor   int
	focused  bool
	blink    float32
	caretOn  bool
	width    uint32
}

// NewTextInput returns an empty input width pixels wide.
func NewTextInput(width uint32, m TextMeasurer) *TextInput {
	return &TextInput{
		Color:      White,
		Background: Opaque(0.1, 0.1, 0.12),
		Padding:    Uniform(4),
		measurer:   m,
		width:      width,
		caretOn:    true,
	}
}

// Text returns the current text.
func (t *TextInput) Text() string { return string(t.text) }

// SetText replaces the text and moves the cursor to the end.
func (t *TextInput) SetText(s string) {
	t.text = []rune(s)
	if t.MaxLen > 0 && len(t.text) > t.MaxLen {
		t.text = t.text[:t.MaxLen]
	}
	t.cursor = len(t.text)
}

// Cursor returns the cursor position in runes.
func (t *TextInput) Cursor() int { return t.cursor }

// Focused reports whether the input has keyboard focus.
func (t *TextInput) Focused() bool { return t.focused }

// Focus gives or takes keyboard focus.
func (t *TextInput) Focus(v bool) {
	t.focused = v
	t.blink = 0
	t.caretOn = true
}

func (t *TextInput) Layout(Size) {
	line := measurerOr(t.measurer).MeasureText("M", t.Font)
	t.SetSize(Size{W: t.width, H: line.H + t.Padding.Vertical()})
}

func (t *TextInput) Draw(ctx DrawContext) error {
	if err := ctx.FillBounds(t.Background); err != nil {
		return err
	}
	inner := ctx.Local().Inset(t.Padding)
	if len(t.text) == 0 && t.Placeholder != "" {
		ctx.Text(inner.Point, t.Placeholder, t.Font, Color{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: t.Color.A * 0.4})
	} else {
		ctx.Text(inner.Point, string(t.text), t.Font, t.Color)
	}
	if !t.focused || !t.caretOn {
		return nil
	}
	x := inner.X + int32(measurerOr(t.measurer).MeasureText(string(t.text[:t.cursor]), t.Font).W)
	return ctx.Line(Pt(x, inner.Y), Pt(x, inner.EndY()), t.Color)
}

func (t *TextInput) Event(ctx EventContext, e Event) EventResult {
	switch e := e.(type) {
	case MouseButtonEvent:
		if e.Button == MouseButtonLeft && e.Pressed {
			t.Focus(true)
			t.cursor = len(t.text)
			return Consumed
		}
	case CharEvent:
		if !t.focused || ctx.Modifiers.Ctrl() || ctx.Modifiers.Super() || !unicode.IsPrint(e.Char) {
			return Pass
		}
		t.insert(string(e.Char))
		return Consumed
	case KeyEvent:
		if !t.focused || !e.Pressed {
			return Pass
		}
		if t.key(ctx.Modifiers, e.Key) {
			return Consumed
		}
	case FocusEvent:
		if !e.Focused {
			t.Focus(false)
		}
	}
	return Pass
}

// EventConsumed drops focus when a press lands on some other widget or on
// nothing at all.
func (t *TextInput) EventConsumed(ctx EventContext, e Event, by WidgetID) {
	if m, ok := e.(MouseButtonEvent); ok && m.Pressed && t.focused && by != t.ID() {
		t.Focus(false)
	}
}

func (t *TextInput) Animate(dt float32) bool {
	if !t.focused {
		return false
	}
	t.blink += dt
	if t.blink < cursorBlink {
		return false
	}
	t.blink = 0
	t.caretOn = !t.caretOn
	return true
}

func (t *TextInput) key(mods Modifiers, k Key) bool {
	switch k {
	case KeyBackspace:
		if t.cursor > 0 {
			t.text = append(t.text[:t.cursor-1], t.text[t.cursor:]...)
			t.cursor--
			t.changed()
		}
	case KeyDelete:
		if t.cursor < len(t.text) {
			t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
			t.changed()
		}
	case KeyLeft:
		t.cursor = max(t.cursor-1, 0)
	case KeyRight:
		t.cursor = min(t.cursor+1, len(t.text))
	case KeyHome:
		t.cursor = 0
	case KeyEnd:
		t.cursor = len(t.text)
	case KeyV:
		if !mods.Ctrl() && !mods.Super() {
			return false
		}
		s, err := clipboardRead()
		if err != nil || s == "" {
			return true
		}
		// Single line: drop everything from the first line break.
		if i := strings.IndexAny(s, "\r\n"); i >= 0 {
			s = s[:i]
		}
		t.insert(s)
	case KeyEscape:
		t.Focus(false)
	default:
		return false
	}
	t.blink = 0
	t.caretOn = true
	return true
}

func (t *TextInput) insert(s string) {
	r := []rune(s)
	if t.MaxLen > 0 {
		room := t.MaxLen - len(t.text)
		if room <= 0 {
			return
		}
		if len(r) > room {
			r = r[:room]
		}
	}
	if len(r) == 0 {
		return
	}
	text := make([]rune, 0, len(t.text)+len(r))
	text = append(text, t.text[:t.cursor]...)
	text = append(text, r...)
	text = append(text, t.text[t.cursor:]...)
	t.text = text
	t.cursor += len(r)
	t.changed()
}

func (t *TextInput) changed() {
	if t.OnChange != nil {
		t.OnChange(string(t.text))
	}
}
