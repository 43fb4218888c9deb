package bramble

import "github.com/tanema/gween/ease"

// ScrollView shows a window onto a larger content widget. Wheel input over the
// scroll area moves the content; the content is clipped to the scroll bounds
// by the tree walk.
type ScrollView struct {
	Base
	// Step is the distance in pixels scrolled per wheel unit.
	Step float32
	// Smooth is the scroll animation duration in seconds; 0 jumps.
	Smooth float32

	content *Slot
	x, y    float32 // current offset
	tx, ty  float32 // target offset
	anim    *TweenGroup
	extent  Size
}

// NewScrollView returns a scroll area of the given size around content.
func NewScrollView(size Size, content Widget) *ScrollView {
	s := &ScrollView{Step: 40, Smooth: 0.1, content: NewSlot(content)}
	s.SetSize(size)
	return s
}

// Content returns the slot holding the scrolled widget.
func (s *ScrollView) Content() *Slot { return s.content }

// Offset returns the current scroll offset.
func (s *ScrollView) Offset() Point {
	return Pt(int32(s.x), int32(s.y))
}

func (s *ScrollView) Origin() Point {
	return s.Offset()
}

func (s *ScrollView) Children() []Widget {
	if s.content.Empty() {
		return nil
	}
	return []Widget{s.content}
}

// Layout lays the content out at the scroll area's size and re-clamps the
// offset. A scroll with no size takes the viewport.
func (s *ScrollView) Layout(viewport Size) {
	if s.Bounds().Empty() {
		s.SetSize(viewport)
	}
	s.content.Layout(s.Bounds().Size)
	s.extent = s.content.Bounds().ExpandToOrigin().Size
	s.scrollTo(s.tx, s.ty, false)
}

// ScrollTo moves the view so that p is at the top-left, clamped to the
// content.
func (s *ScrollView) ScrollTo(p Point) {
	s.scrollTo(float32(p.X), float32(p.Y), false)
}

func (s *ScrollView) Event(ctx EventContext, e Event) EventResult {
	a, ok := e.(AxisEvent)
	if !ok {
		return Pass
	}
	sc, ok := a.Axis.(Scroll)
	if !ok {
		return Pass
	}
	dx, dy := sc.DX, sc.DY
	if ctx.Modifiers.Shift() && dx == 0 {
		dx, dy = dy, 0
	}
	if !s.scrollTo(s.tx-dx*s.Step, s.ty-dy*s.Step, s.Smooth > 0) {
		return Pass
	}
	return Consumed
}

func (s *ScrollView) Animate(dt float32) bool {
	if !s.anim.Update(dt) {
		return false
	}
	if s.anim.Done {
		s.anim = nil
	}
	return true
}

// scrollTo clamps the target offset and moves towards it. It reports whether
// the target changed.
func (s *ScrollView) scrollTo(x, y float32, animate bool) bool {
	maxX := float32(max(int64(s.extent.W)-int64(s.Bounds().W), 0))
	maxY := float32(max(int64(s.extent.H)-int64(s.Bounds().H), 0))
	x = min(max(x, 0), maxX)
	y = min(max(y, 0), maxY)
	if x == s.tx && y == s.ty {
		if s.anim == nil {
			s.x, s.y = x, y
		}
		return false
	}
	s.tx, s.ty = x, y
	if !animate {
		s.x, s.y = x, y
		s.anim = nil
		return true
	}
	s.anim = TweenPair(&s.x, &s.y, x, y, s.Smooth, ease.Linear)
	return true
}
