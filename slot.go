package bramble

// Slot is an optional widget position in the tree. An empty slot has no id,
// no area and no children, and every operation on it is a no-op. A filled
// slot is transparent: it forwards every call to the widget it holds.
type Slot struct {
	w Widget
}

// NewSlot returns a slot holding w, which may be nil.
func NewSlot(w Widget) *Slot {
	return &Slot{w: w}
}

// Set replaces the held widget. Passing nil empties the slot.
func (s *Slot) Set(w Widget) {
	s.w = w
}

// Take empties the slot and returns what it held.
func (s *Slot) Take() Widget {
	w := s.w
	s.w = nil
	return w
}

// Get returns the held widget and whether there was one.
func (s *Slot) Get() (Widget, bool) {
	return s.w, s.w != nil
}

// Empty reports whether the slot holds nothing.
func (s *Slot) Empty() bool {
	return s.w == nil
}

func (s *Slot) ID() WidgetID {
	if s.w == nil {
		return NoWidget
	}
	return s.w.ID()
}

func (s *Slot) Bounds() Rect {
	if s.w == nil {
		return Rect{}
	}
	return s.w.Bounds()
}

func (s *Slot) Origin() Point {
	if s.w == nil {
		return Point{}
	}
	return s.w.Origin()
}

func (s *Slot) Children() []Widget {
	if s.w == nil {
		return nil
	}
	return s.w.Children()
}

func (s *Slot) Layout(viewport Size) {
	if s.w != nil {
		s.w.Layout(viewport)
	}
}

func (s *Slot) Draw(ctx DrawContext) error {
	if s.w == nil {
		return nil
	}
	return s.w.Draw(ctx)
}

func (s *Slot) Event(ctx EventContext, e Event) EventResult {
	if s.w == nil {
		return Pass
	}
	return s.w.Event(ctx, e)
}

func (s *Slot) EventConsumed(ctx EventContext, e Event, by WidgetID) {
	if s.w != nil {
		s.w.EventConsumed(ctx, e, by)
	}
}

// Animate forwards to the held widget when it is an Animator.
func (s *Slot) Animate(dt float32) bool {
	if a, ok := s.w.(Animator); ok {
		return a.Animate(dt)
	}
	return false
}

// SetPosition forwards to the held widget when its position can be set.
func (s *Slot) SetPosition(p Point) {
	if s.w != nil {
		setPosition(s.w, p)
	}
}
