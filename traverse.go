package bramble

// Order selects when a walk visits a node relative to its children.
type Order uint8

const (
	PreOrder  Order = iota // node, then children
	PostOrder              // children, then node
)

// Step tells a walk how to continue after visiting a node.
type Step uint8

const (
	// Continue walks on.
	Continue Step = iota
	// SkipChildren does not descend into the node's children but continues
	// with its siblings. Only meaningful in pre-order walks; post-order walks
	// treat it as Continue.
	SkipChildren
	// Stop halts the walk and hands the visitor's value back to the caller.
	Stop
)

// Frame is a node as seen during a walk, with its geometry resolved into
// absolute window coordinates.
type Frame struct {
	Widget   Widget
	ID       WidgetID
	ParentID WidgetID
	Depth    int

	// Abs is the widget's bounds in window coordinates.
	Abs Rect
	// Clip is Abs clipped against every ancestor's visible region. It is
	// only meaningful when Visible is true.
	Clip    Rect
	Visible bool
	// ChildOrigin is where the widget's children's positions are measured
	// from: Abs minus the widget's Origin.
	ChildOrigin Point
}

// Walk describes a traversal.
type Walk struct {
	Order   Order
	Reverse bool // visit children last-to-first
	// Filter, if set, is consulted before a node is visited. Returning false
	// skips the node and its whole subtree.
	Filter func(f *Frame) bool
}

func rootFrame(root Widget, viewport Size) Frame {
	f := Frame{
		Widget:   root,
		ID:       root.ID(),
		ParentID: NoWidget,
		Abs:      root.Bounds(),
	}
	f.Clip, f.Visible = f.Abs.ClipInside(RectAt(viewport))
	f.ChildOrigin = f.Abs.Point.Sub(root.Origin())
	return f
}

func childFrame(parent *Frame, child Widget) Frame {
	f := Frame{
		Widget:   child,
		ID:       child.ID(),
		ParentID: parent.ID,
		Depth:    parent.Depth + 1,
		Abs:      child.Bounds().Translate(parent.ChildOrigin),
	}
	if parent.Visible {
		f.Clip, f.Visible = f.Abs.ClipInside(parent.Clip)
	}
	f.ChildOrigin = f.Abs.Point.Sub(child.Origin())
	return f
}

// Visit walks the tree rooted at root. fn is called once per visited node; a
// Stop step ends the walk and Visit returns fn's value with true. When the
// walk runs to completion Visit returns the zero value and false.
func Visit[T any](root Widget, viewport Size, w Walk, fn func(f *Frame) (T, Step)) (T, bool) {
	if root == nil {
		var zero T
		return zero, false
	}
	f := rootFrame(root, viewport)
	return visit(&f, &w, fn)
}

func visit[T any](f *Frame, w *Walk, fn func(f *Frame) (T, Step)) (T, bool) {
	var zero T
	if w.Filter != nil && !w.Filter(f) {
		return zero, false
	}

	if w.Order == PreOrder {
		v, step := fn(f)
		switch step {
		case Stop:
			return v, true
		case SkipChildren:
			return zero, false
		}
	}

	children := f.Widget.Children()
	n := len(children)
	for i := 0; i < n; i++ {
		c := children[i]
		if w.Reverse {
			c = children[n-1-i]
		}
		cf := childFrame(f, c)
		if v, stopped := visit(&cf, w, fn); stopped {
			return v, true
		}
	}

	if w.Order == PostOrder {
		if v, step := fn(f); step == Stop {
			return v, true
		}
	}
	return zero, false
}

// Find locates the widget with the given id by walking the tree.
func Find(root Widget, viewport Size, id WidgetID) (Frame, bool) {
	if id == NoWidget {
		return Frame{}, false
	}
	return Visit(root, viewport, Walk{}, func(f *Frame) (Frame, Step) {
		if f.ID == id {
			return *f, Stop
		}
		return Frame{}, Continue
	})
}

// HitTest returns the deepest widget whose visible region contains p, or
// NoWidget. Children are searched first-to-last and the first match wins, so
// when siblings overlap the earlier sibling is reported.
func HitTest(root Widget, viewport Size, p Point) WidgetID {
	id, _ := Visit(root, viewport, Walk{
		Order:  PostOrder,
		Filter: func(f *Frame) bool { return f.Visible && f.Clip.Contains(p) },
	}, func(f *Frame) (WidgetID, Step) {
		return f.ID, Stop
	})
	return id
}

// forEach visits every node pre-order, first child first.
func forEach(root Widget, viewport Size, fn func(f *Frame)) {
	Visit(root, viewport, Walk{}, func(f *Frame) (struct{}, Step) {
		fn(f)
		return struct{}{}, Continue
	})
}
