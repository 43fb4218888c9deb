package bramble

// Widget is a node in the retained UI tree.
//
// Bounds are relative to the parent's child origin; the dispatcher and the
// draw pass turn them into absolute window coordinates while walking the
// tree. Origin is a scroll-like offset subtracted from the positions of the
// widget's children.
type Widget interface {
	ID() WidgetID
	Bounds() Rect
	Origin() Point
	Children() []Widget

	// Layout positions the widget (and its children) for the given
	// viewport size.
	Layout(viewport Size)

	// Draw appends the widget's own primitives. Children are drawn by the
	// caller after their parent.
	Draw(ctx DrawContext) error

	// Event handles one event. Returning Consumed stops propagation.
	Event(ctx EventContext, e Event) EventResult

	// EventConsumed is called on every widget after each dispatch with the
	// id of the consumer, or NoWidget if nothing consumed the event.
	EventConsumed(ctx EventContext, e Event, by WidgetID)
}

// Animator is implemented by widgets with time-based state. Animate advances
// by dt seconds and reports whether anything visible changed.
type Animator interface {
	Animate(dt float32) bool
}

// --- Base ---

// Base supplies identity, bounds and no-op defaults. Embed it in widget
// structs and override what the widget needs. The zero value is ready to use;
// the id is allocated on first access.
type Base struct {
	id     WidgetID
	bounds Rect
	origin Point
}

// ID returns the widget id, allocating it on first use.
func (b *Base) ID() WidgetID {
	if b.id == NoWidget {
		b.id = NewWidgetID()
	}
	return b.id
}

func (b *Base) Bounds() Rect { return b.bounds }
func (b *Base) SetBounds(r Rect) { b.bounds = r }
func (b *Base) SetPosition(p Point) { b.bounds.Point = p }
func (b *Base) SetSize(s Size) { b.bounds.Size = s }
func (b *Base) Origin() Point { return b.origin }
func (b *Base) SetOrigin(p Point) { b.origin = p }
func (b *Base) Children() []Widget { return nil }
func (b *Base) Layout(Size) {}
func (b *Base) Draw(DrawContext) error { return nil }

func (b *Base) Event(EventContext, Event) EventResult { return Pass }

func (b *Base) EventConsumed(EventContext, Event, WidgetID) {}

// --- Group ---

// Group is a Base with an ordered child list. Later children are drawn on top
// of earlier ones.
type Group struct {
	Base
	children []Widget
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (g *Group) Children() []Widget {
	return g.children
}

// Add appends children. Panics if a child is nil or already present.
func (g *Group) Add(children ...Widget) {
	for _, c := range children {
		if c == nil {
			panic("bramble: cannot add nil child")
		}
		if g.indexOf(c) >= 0 {
			panic("bramble: child already added")
		}
		g.children = append(g.children, c)
	}
}

// Remove detaches child. Panics if child is not in the group.
func (g *Group) Remove(child Widget) {
	i := g.indexOf(child)
	if i < 0 {
		panic("bramble: child's parent is not this group")
	}
	copy(g.children[i:], g.children[i+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
}

// RemoveAll detaches every child.
func (g *Group) RemoveAll() {
	clear(g.children)
	g.children = g.children[:0]
}

// Layout lays out every child against the same viewport.
func (g *Group) Layout(viewport Size) {
	for _, c := range g.children {
		c.Layout(viewport)
	}
}

func (g *Group) indexOf(child Widget) int {
	for i, c := range g.children {
		if c == child {
			return i
		}
	}
	return -1
}

// --- DrawContext ---

// DrawContext is handed to Widget.Draw. Abs is the widget's absolute bounds,
// Clip the visible region it may draw into. Helper methods take rects and
// points in widget-local coordinates.
type DrawContext struct {
	Queue *DrawQueue
	Abs   Rect
	Clip  Rect
}

// Local returns the widget's bounds at the local origin.
func (c DrawContext) Local() Rect {
	return RectAt(c.Abs.Size)
}

// Fill draws a solid rect given in local coordinates.
func (c DrawContext) Fill(r Rect, col Color) error {
	return c.Queue.Rect(c.Clip, r.Translate(c.Abs.Point), col)
}

// FillBounds fills the whole widget.
func (c DrawContext) FillBounds(col Color) error {
	return c.Queue.Rect(c.Clip, c.Abs, col)
}

// Image draws img stretched over a local rect, tinted by col.
func (c DrawContext) Image(r Rect, img *Image, col Color) error {
	return c.Queue.TexturedRect(c.Clip, r.Translate(c.Abs.Point), img, col)
}

// Line draws a one-pixel line between two local points.
func (c DrawContext) Line(from, to Point, col Color) error {
	return c.Queue.Line(c.Clip, from.Add(c.Abs.Point), to.Add(c.Abs.Point), col)
}

// Text places s with its top-left corner at a local point.
func (c DrawContext) Text(pos Point, s string, font FontDescriptor, col Color) {
	c.Queue.Text(c.Clip, s, font, pos.Add(c.Abs.Point), col)
}

// Clear clears the widget's visible region.
func (c DrawContext) Clear(col Color) {
	c.Queue.Clear(c.Clip, col)
}
