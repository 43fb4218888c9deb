package bramble

import (
	"errors"
	"math"
	"testing"
)

type fixedMeasurer struct{ w, h uint32 }

func (m fixedMeasurer) MeasureText(s string, _ FontDescriptor) Size {
	return Sz(m.w*uint32(len([]rune(s))), m.h)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestLabelLayout(t *testing.T) {
	l := NewLabel("hello", fixedMeasurer{w: 7, h: 12})
	l.Layout(Sz(100, 100))
	if l.Bounds().Size != Sz(35, 12) {
		t.Errorf("size = %v", l.Bounds().Size)
	}
	l.SetText("hi")
	l.Layout(Sz(100, 100))
	if l.Bounds().Size != Sz(14, 12) {
		t.Errorf("size after SetText = %v", l.Bounds().Size)
	}

	var q DrawQueue
	_ = l.Draw(DrawContext{Queue: &q, Abs: R(5, 6, 14, 12), Clip: R(5, 6, 14, 12)})
	if len(q.Commands) != 1 || q.Commands[0].Text != "hi" || q.Commands[0].Pos != Pt(5, 6) {
		t.Errorf("commands = %+v", q.Commands)
	}
}

func TestApproxMeasurer(t *testing.T) {
	l := NewLabel("ab", nil)
	l.Layout(Size{})
	if l.Bounds().Size != Sz(17, 18) {
		t.Errorf("size = %v, want 17x18", l.Bounds().Size)
	}
}

func TestFillExpand(t *testing.T) {
	f := NewFill(Sz(10, 10), Red)
	f.Layout(Sz(50, 60))
	if f.Bounds().Size != Sz(10, 10) {
		t.Error("fixed fill resized")
	}
	f.Expand = true
	f.Layout(Sz(50, 60))
	if f.Bounds().Size != Sz(50, 60) {
		t.Errorf("expanded size = %v", f.Bounds().Size)
	}
}

func TestSlot(t *testing.T) {
	s := NewSlot(nil)
	if s.ID() != NoWidget || !s.Bounds().Empty() || s.Children() != nil || !s.Empty() {
		t.Error("empty slot should be inert")
	}
	if s.Event(EventContext{}, KeyEvent{}) != Pass || s.Draw(DrawContext{}) != nil || s.Animate(1) {
		t.Error("empty slot should ignore calls")
	}

	f := NewFill(Sz(5, 5), Red)
	s.Set(f)
	if s.ID() != f.ID() || s.Bounds() != f.Bounds() {
		t.Error("slot should forward to its widget")
	}
	s.SetPosition(Pt(3, 4))
	if f.Bounds().Point != Pt(3, 4) {
		t.Error("SetPosition not forwarded")
	}
	if w, ok := s.Get(); !ok || w != Widget(f) {
		t.Error("Get returned the wrong widget")
	}
	if s.Take() != Widget(f) || !s.Empty() {
		t.Error("Take should empty the slot")
	}
}

func newButtonWindow(onClick func()) (*Window, *Button) {
	b := NewButton("OK", nil, onClick)
	root := NewStack(Vertical, b)
	attrs := DefaultWindowAttributes()
	attrs.SetSize(Sz(200, 200))
	w := NewWindow(root, WithAttributes(attrs))
	w.Size()
	return w, b
}

func TestButtonClick(t *testing.T) {
	clicks := 0
	w, b := newButtonWindow(func() { clicks++ })
	if b.Bounds().Size != Sz(41, 30) {
		t.Fatalf("button size = %v", b.Bounds().Size)
	}

	w.HandleEvent(motion(5, 5))
	if !b.Hovered() {
		t.Error("button should be hovered")
	}
	if !w.HandleEvent(press(MouseButtonLeft)) || !b.IsPressed() {
		t.Error("press should be consumed")
	}
	if !w.HandleEvent(release(MouseButtonLeft)) {
		t.Error("release should be consumed")
	}
	if clicks != 1 || b.IsPressed() {
		t.Errorf("clicks = %d, pressed = %v", clicks, b.IsPressed())
	}
	if w.HandleEvent(press(MouseButtonRight)) {
		t.Error("right button should pass")
	}
}

func TestButtonReleaseElsewhere(t *testing.T) {
	clicks := 0
	w, b := newButtonWindow(func() { clicks++ })

	w.HandleEvent(motion(5, 5))
	w.HandleEvent(press(MouseButtonLeft))
	w.HandleEvent(motion(150, 150))
	if b.Hovered() {
		t.Error("button still hovered after leaving")
	}
	w.HandleEvent(release(MouseButtonLeft))
	if clicks != 0 {
		t.Error("release away from the button should not click")
	}
	if b.IsPressed() {
		t.Error("button should be released by the notification pass")
	}
}

func TestButtonWindowEnterBroadcast(t *testing.T) {
	w, b := newButtonWindow(nil)
	w.HandleEvent(motion(150, 150))
	w.HandleEvent(PointerInsideEvent{Inside: true})
	if b.Hovered() {
		t.Error("window-level enter should not hover a button the pointer is not over")
	}
}

func TestButtonFade(t *testing.T) {
	w, b := newButtonWindow(nil)
	w.HandleEvent(motion(5, 5))
	if b.Color() != b.Normal {
		t.Error("color should not jump before animating")
	}
	if !w.Tick(ButtonFade / 2) {
		t.Error("fading button should request a redraw")
	}
	w.Tick(ButtonFade)
	c := b.Color()
	if !near(c.R, b.Hover.R) || !near(c.G, b.Hover.G) || !near(c.B, b.Hover.B) {
		t.Errorf("color = %v, want %v", c, b.Hover)
	}
	_, _ = w.Draw()
	if w.Tick(ButtonFade) {
		t.Error("finished fade should not request a redraw")
	}
}

func TestButtonDraw(t *testing.T) {
	b := NewButton("OK", fixedMeasurer{w: 5, h: 10}, nil)
	b.Layout(Size{})
	var q DrawQueue
	abs := R(10, 10, b.Bounds().W, b.Bounds().H)
	if err := b.Draw(DrawContext{Queue: &q, Abs: abs, Clip: abs}); err != nil {
		t.Fatal(err)
	}
	if len(q.Commands) != 2 || q.Commands[1].Type != CommandText {
		t.Fatalf("commands = %+v", q.Commands)
	}
	// 34x22 button, 10x10 text centered.
	if q.Commands[1].Pos != Pt(22, 16) {
		t.Errorf("text at %v", q.Commands[1].Pos)
	}
}

func TestTextInputTyping(t *testing.T) {
	in := NewTextInput(100, nil)
	var changes []string
	in.OnChange = func(s string) { changes = append(changes, s) }

	ctx := EventContext{}
	if in.Event(ctx, CharEvent{Char: 'a'}) != Pass {
		t.Error("unfocused input should not take characters")
	}
	in.Focus(true)
	for _, r := range "héllo" {
		in.Event(ctx, CharEvent{Char: r})
	}
	if in.Text() != "héllo" || in.Cursor() != 5 {
		t.Fatalf("text = %q, cursor = %d", in.Text(), in.Cursor())
	}

	keys := []Key{KeyLeft, KeyLeft, KeyBackspace, KeyHome, KeyDelete, KeyEnd}
	for _, k := range keys {
		if in.Event(ctx, KeyEvent{Pressed: true, Key: k}) != Consumed {
			t.Errorf("key %v not consumed", k)
		}
	}
	if in.Text() != "élo" || in.Cursor() != 3 {
		t.Errorf("text = %q, cursor = %d", in.Text(), in.Cursor())
	}
	if len(changes) != 7 || changes[len(changes)-1] != "élo" {
		t.Errorf("changes = %v", changes)
	}

	if in.Event(ctx, CharEvent{Char: '\t'}) != Pass {
		t.Error("control characters should pass")
	}
	if in.Event(EventContext{Modifiers: ModCtrl}, CharEvent{Char: 'x'}) != Pass {
		t.Error("ctrl+char should pass")
	}
	if in.Event(ctx, KeyEvent{Pressed: false, Key: KeyBackspace}) != Pass {
		t.Error("key release should pass")
	}
}

func TestTextInputMaxLen(t *testing.T) {
	in := NewTextInput(100, nil)
	in.MaxLen = 3
	in.Focus(true)
	for _, r := range "abcd" {
		in.Event(EventContext{}, CharEvent{Char: r})
	}
	if in.Text() != "abc" {
		t.Errorf("text = %q", in.Text())
	}
	in.SetText("wxyz")
	if in.Text() != "wxy" || in.Cursor() != 3 {
		t.Errorf("SetText = %q, cursor %d", in.Text(), in.Cursor())
	}
}

func TestTextInputPaste(t *testing.T) {
	orig := clipboardRead
	defer func() { clipboardRead = orig }()

	in := NewTextInput(100, nil)
	in.Focus(true)
	in.SetText("ab")
	in.Event(EventContext{}, KeyEvent{Pressed: true, Key: KeyLeft})

	clipboardRead = func() (string, error) { return "XY\nZ", nil }
	if in.Event(EventContext{Modifiers: ModCtrl}, KeyEvent{Pressed: true, Key: KeyV}) != Consumed {
		t.Fatal("paste not consumed")
	}
	if in.Text() != "aXYb" || in.Cursor() != 3 {
		t.Errorf("text = %q, cursor = %d", in.Text(), in.Cursor())
	}

	clipboardRead = func() (string, error) { return "", errors.New("no clipboard") }
	in.Event(EventContext{Modifiers: ModSuper}, KeyEvent{Pressed: true, Key: KeyV})
	if in.Text() != "aXYb" {
		t.Errorf("failed paste changed text to %q", in.Text())
	}

	if in.Event(EventContext{}, KeyEvent{Pressed: true, Key: KeyV}) != Pass {
		t.Error("plain V should pass (it arrives as a CharEvent)")
	}
}

func TestTextInputFocus(t *testing.T) {
	in := NewTextInput(100, nil)
	other := NewButton("x", nil, nil)
	root := NewStack(Horizontal, in, other)
	attrs := DefaultWindowAttributes()
	attrs.SetSize(Sz(300, 100))
	w := NewWindow(root, WithAttributes(attrs))

	w.HandleEvent(motion(5, 5))
	w.HandleEvent(press(MouseButtonLeft))
	w.HandleEvent(release(MouseButtonLeft))
	if !in.Focused() {
		t.Fatal("click should focus the input")
	}
	w.HandleEvent(CharEvent{Char: 'q'})
	if in.Text() != "q" {
		t.Errorf("text = %q", in.Text())
	}

	w.HandleEvent(motion(105, 5))
	w.HandleEvent(press(MouseButtonLeft))
	if in.Focused() {
		t.Error("press on another widget should drop focus")
	}

	in.Focus(true)
	w.HandleEvent(FocusEvent{Focused: false})
	if in.Focused() {
		t.Error("window focus loss should drop focus")
	}

	in.Focus(true)
	w.HandleEvent(KeyEvent{Pressed: true, Key: KeyEscape})
	if in.Focused() {
		t.Error("escape should drop focus")
	}
}

func TestTextInputCaretBlink(t *testing.T) {
	in := NewTextInput(100, nil)
	if in.Animate(1) {
		t.Error("unfocused input should not blink")
	}
	in.Focus(true)
	if in.Animate(cursorBlink / 2) {
		t.Error("caret toggled early")
	}
	if !in.Animate(cursorBlink / 2) {
		t.Error("caret should toggle after the blink period")
	}
}

func TestTextInputDraw(t *testing.T) {
	in := NewTextInput(100, fixedMeasurer{w: 6, h: 10})
	in.Placeholder = "name"
	in.Layout(Size{})
	if in.Bounds().Size != Sz(100, 18) {
		t.Fatalf("size = %v", in.Bounds().Size)
	}
	abs := RectAt(in.Bounds().Size)

	var q DrawQueue
	_ = in.Draw(DrawContext{Queue: &q, Abs: abs, Clip: abs})
	if len(q.Commands) != 2 || q.Commands[1].Text != "name" {
		t.Fatalf("commands = %+v", q.Commands)
	}

	q.Reset()
	in.SetText("ab")
	in.Focus(true)
	_ = in.Draw(DrawContext{Queue: &q, Abs: abs, Clip: abs})
	last := q.Commands[len(q.Commands)-1]
	if last.Kind != PrimitiveLines {
		t.Fatalf("caret not drawn: %+v", last)
	}
	if x := q.Vertices[len(q.Vertices)-1].Pos[0]; x != 16 {
		t.Errorf("caret x = %v, want 16", x)
	}
}

func newScrollWindow(content Size) (*Window, *ScrollView, *Fill) {
	f := NewFill(content, Red)
	s := NewScrollView(Sz(100, 100), f)
	s.Smooth = 0
	attrs := DefaultWindowAttributes()
	attrs.SetSize(Sz(200, 200))
	w := NewWindow(s, WithAttributes(attrs))
	w.HandleEvent(motion(50, 50))
	return w, s, f
}

func scroll(dx, dy float32) AxisEvent {
	return AxisEvent{Axis: Scroll{DX: dx, DY: dy}}
}

func TestScrollView(t *testing.T) {
	w, s, f := newScrollWindow(Sz(100, 400))

	if !w.HandleEvent(scroll(0, -1)) {
		t.Error("scroll should be consumed")
	}
	if s.Offset() != Pt(0, 40) {
		t.Errorf("offset = %v", s.Offset())
	}
	fr, _ := Find(s, Sz(200, 200), f.ID())
	if fr.Abs.Y != -40 || fr.Clip != R(0, 0, 100, 100) {
		t.Errorf("content frame abs = %v, clip = %v", fr.Abs, fr.Clip)
	}

	w.HandleEvent(scroll(0, -100))
	if s.Offset() != Pt(0, 300) {
		t.Errorf("offset = %v, want clamped to 300", s.Offset())
	}
	if w.HandleEvent(scroll(0, -1)) {
		t.Error("scroll past the end should pass")
	}
	if w.HandleEvent(scroll(1, 0)) {
		t.Error("horizontal scroll with no horizontal overflow should pass")
	}

	s.ScrollTo(Pt(0, 10))
	if s.Offset() != Pt(0, 10) {
		t.Errorf("ScrollTo = %v", s.Offset())
	}
}

func TestScrollViewShift(t *testing.T) {
	w, s, _ := newScrollWindow(Sz(400, 100))
	w.HandleEvent(ModifiersEvent{Modifiers: ModShift})
	w.HandleEvent(scroll(0, -1))
	if s.Offset() != Pt(40, 0) {
		t.Errorf("offset = %v, want (40,0)", s.Offset())
	}
}

func TestScrollViewOutsidePointer(t *testing.T) {
	w, s, _ := newScrollWindow(Sz(100, 400))
	w.HandleEvent(motion(150, 150))
	if w.HandleEvent(scroll(0, -1)) || s.Offset() != (Point{}) {
		t.Error("scroll outside the view should not move it")
	}
}

func TestScrollViewSmooth(t *testing.T) {
	w, s, _ := newScrollWindow(Sz(100, 400))
	s.Smooth = 0.1
	w.HandleEvent(scroll(0, -1))
	if s.Offset() != (Point{}) {
		t.Error("smooth scroll should not jump")
	}
	w.Tick(0.05)
	if y := s.Offset().Y; y <= 0 || y >= 40 {
		t.Errorf("mid-animation offset = %d", y)
	}
	w.Tick(0.05)
	w.Tick(0.01)
	if s.Offset() != Pt(0, 40) {
		t.Errorf("final offset = %v", s.Offset())
	}
}

func TestScrollViewEmpty(t *testing.T) {
	s := NewScrollView(Size{}, nil)
	s.Layout(Sz(30, 40))
	if s.Bounds().Size != Sz(30, 40) || len(s.Children()) != 0 {
		t.Errorf("empty scroll view = %v, %d children", s.Bounds(), len(s.Children()))
	}
	s.Content().Set(NewFill(Sz(10, 10), Red))
	if len(s.Children()) != 1 {
		t.Error("content not exposed as a child")
	}
}
