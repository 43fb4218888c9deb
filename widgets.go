package bramble

import (
	"math"
	"unicode/utf8"
)

// positioner is implemented by widgets whose position is set by their
// parent's layout. Base implements it.
type positioner interface {
	SetPosition(p Point)
}

// setPosition moves w if it can be moved.
func setPosition(w Widget, p Point) {
	if ps, ok := w.(positioner); ok {
		ps.SetPosition(p)
	}
}

// approxMeasurer sizes text without a font backend: every rune is 0.6em wide
// and a line is 1.25em tall. Used when a widget has no TextMeasurer.
type approxMeasurer struct{}

func (approxMeasurer) MeasureText(s string, font FontDescriptor) Size {
	em := font.Size
	if em <= 0 {
		em = DefaultFontSize
	}
	n := utf8.RuneCountInString(s)
	return Size{
		W: uint32(math.Ceil(float64(em) * 0.6 * float64(n))),
		H: uint32(math.Ceil(float64(em) * 1.25)),
	}
}

// DefaultFontSize is used by FontDescriptors with no size.
const DefaultFontSize = 14

func measurerOr(m TextMeasurer) TextMeasurer {
	if m == nil {
		return approxMeasurer{}
	}
	return m
}

// --- Fill ---

// Fill is a solid rectangle. With Expand set it takes the whole viewport it
// is laid out in.
type Fill struct {
	Base
	Color  Color
	Expand bool
}

// NewFill returns a fill of the given size and color.
func NewFill(s Size, c Color) *Fill {
	f := &Fill{Color: c}
	f.SetSize(s)
	return f
}

func (f *Fill) Layout(viewport Size) {
	if f.Expand {
		f.SetSize(viewport)
	}
}

func (f *Fill) Draw(ctx DrawContext) error {
	return ctx.FillBounds(f.Color)
}

// --- Label ---

// Label draws a single line of text and sizes itself to fit it.
type Label struct {
	Base
	Text  string
	Font  FontDescriptor
	Color Color

	measurer TextMeasurer
}

// NewLabel returns a white label. m measures the text; nil uses an
// approximation.
func NewLabel(text string, m TextMeasurer) *Label {
	return &Label{Text: text, Color: White, measurer: m}
}

// SetText replaces the text. The new size applies on the next layout.
func (l *Label) SetText(s string) {
	l.Text = s
}

func (l *Label) Layout(Size) {
	l.SetSize(measurerOr(l.measurer).MeasureText(l.Text, l.Font))
}

func (l *Label) Draw(ctx DrawContext) error {
	ctx.Text(Point{}, l.Text, l.Font, l.Color)
	return nil
}

// --- Stack ---

// Direction is the main axis of a Stack.
type Direction uint8

const (
	Vertical   Direction = iota // top to bottom
	Horizontal                  // left to right
	Flow                        // left to right, wrapping at the viewport width
)

// Stack arranges its children along one axis with padding and spacing, and
// sizes itself to fit them.
type Stack struct {
	Group
	Direction  Direction
	Padding    Border
	Spacing    uint32
	Background Color
}

// NewStack returns a stack holding children.
func NewStack(dir Direction, children ...Widget) *Stack {
	s := &Stack{Direction: dir}
	s.Add(children...)
	return s
}

func (s *Stack) Layout(viewport Size) {
	avail := RectAt(viewport).Inset(s.Padding).Size
	offset := Pt(int32(s.Padding.Left), int32(s.Padding.Top))

	var content Rect
	switch s.Direction {
	case Flow:
		sizes := make([]Size, len(s.children))
		for i, c := range s.children {
			c.Layout(avail)
			sizes[i] = c.Bounds().Size
		}
		rects, bounds := FlowLayout(sizes, avail.W, s.Spacing)
		for i, c := range s.children {
			setPosition(c, rects[i].Point.Add(offset))
		}
		content = bounds
	default:
		var at int64
		for _, c := range s.children {
			c.Layout(avail)
			sz := c.Bounds().Size
			var r Rect
			if s.Direction == Horizontal {
				r = R(int32(at), 0, sz.W, sz.H)
				at += int64(sz.W) + int64(s.Spacing)
			} else {
				r = R(0, int32(at), sz.W, sz.H)
				at += int64(sz.H) + int64(s.Spacing)
			}
			setPosition(c, r.Point.Add(offset))
			content = content.Merge(r)
		}
	}

	c := content.ExpandToOrigin().Size
	s.SetSize(Size{W: c.W + s.Padding.Horizontal(), H: c.H + s.Padding.Vertical()})
}

func (s *Stack) Draw(ctx DrawContext) error {
	if s.Background.A == 0 {
		return nil
	}
	return ctx.FillBounds(s.Background)
}
