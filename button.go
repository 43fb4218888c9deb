package bramble

import "github.com/tanema/gween/ease"

// ButtonFade is how long a button takes to change color, in seconds.
const ButtonFade = 0.12

// Button is a clickable text button. Hovering and pressing fade its
// background between Normal, Hover and Pressed.
type Button struct {
	Base
	Text      string
	Font      FontDescriptor
	TextColor Color
	Padding   Border

	Normal  Color
	Hover   Color
	Pressed Color

	// OnClick is called when the left button is pressed and released over
	// the button.
	OnClick func()

	measurer TextMeasurer
	color    Color
	fade     *TweenGroup
	hovered  bool
	pressed  bool
}

// NewButton returns a button with a grey palette. m measures the text; nil
// uses an approximation.
func NewButton(text string, m TextMeasurer, onClick func()) *Button {
	b := &Button{
		Text:      text,
		TextColor: White,
		Padding:   Border{Top: 6, Right: 12, Bottom: 6, Left: 12},
		Normal:    Opaque(0.25, 0.25, 0.28),
		Hover:     Opaque(0.35, 0.35, 0.40),
		Pressed:   Opaque(0.15, 0.15, 0.18),
		OnClick:   onClick,
		measurer:  m,
	}
	b.color = b.Normal
	return b
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// IsPressed reports whether the button is held down.
func (b *Button) IsPressed() bool { return b.pressed }

// Color returns the current background color.
func (b *Button) Color() Color { return b.color }

func (b *Button) Layout(Size) {
	text := measurerOr(b.measurer).MeasureText(b.Text, b.Font)
	b.SetSize(Size{W: text.W + b.Padding.Horizontal(), H: text.H + b.Padding.Vertical()})
}

func (b *Button) Draw(ctx DrawContext) error {
	if err := ctx.FillBounds(b.color); err != nil {
		return err
	}
	text := measurerOr(b.measurer).MeasureText(b.Text, b.Font)
	r := Align(text, ctx.Local(), AlignCenter, AlignMiddle)
	ctx.Text(r.Point, b.Text, b.Font, b.TextColor)
	return nil
}

func (b *Button) Event(ctx EventContext, e Event) EventResult {
	switch e := e.(type) {
	case PointerInsideEvent:
		b.hovered = e.Inside
		b.retarget()
	case MouseButtonEvent:
		if e.Button != MouseButtonLeft {
			return Pass
		}
		if e.Pressed {
			b.pressed = true
			b.retarget()
			return Consumed
		}
		if !b.pressed {
			return Pass
		}
		b.pressed = false
		b.retarget()
		if b.OnClick != nil {
			b.OnClick()
		}
		return Consumed
	}
	return Pass
}

// EventConsumed releases the button when the left button goes up anywhere
// else.
func (b *Button) EventConsumed(ctx EventContext, e Event, by WidgetID) {
	if m, ok := e.(MouseButtonEvent); ok && b.pressed && by != b.ID() &&
		m.Button == MouseButtonLeft && !m.Pressed {
		b.pressed = false
		b.retarget()
	}
}

func (b *Button) Animate(dt float32) bool {
	if !b.fade.Update(dt) {
		return false
	}
	if b.fade.Done {
		b.fade = nil
	}
	return true
}

func (b *Button) target() Color {
	switch {
	case b.pressed:
		return b.Pressed
	case b.hovered:
		return b.Hover
	}
	return b.Normal
}

func (b *Button) retarget() {
	to := b.target()
	if to == b.color && b.fade == nil {
		return
	}
	b.fade = TweenColor(&b.color, to, ButtonFade, ease.InOutCubic)
}
