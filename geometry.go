package bramble

import "fmt"

// Point is a signed integer position. The coordinate system has its origin at
// the top-left of the window, with Y increasing downward.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is an unsigned width and height.
type Size struct {
	W, H uint32
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h uint32) Size {
	return Size{W: w, H: h}
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.W == 0 || s.H == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is an integer rectangle: a top-left position plus a size.
// A rect with zero width or height has no area and never intersects anything.
type Rect struct {
	Point
	Size
}

// R builds a rect from its position and size components.
func R(x, y int32, w, h uint32) Rect {
	return Rect{Point: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// RectAt builds a rect at the origin with the given size.
func RectAt(s Size) Rect {
	return Rect{Size: s}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Point {
	return r.Point
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.Empty()
}

// EndX returns the last column covered by r (x + w - 1).
// Only meaningful when r has at least 1x1 area.
func (r Rect) EndX() int32 {
	return r.X + int32(r.W) - 1
}

// EndY returns the last row covered by r (y + h - 1).
// Only meaningful when r has at least 1x1 area.
func (r Rect) EndY() int32 {
	return r.Y + int32(r.H) - 1
}

// Right returns the exclusive right edge (x + w).
func (r Rect) Right() int64 {
	return int64(r.X) + int64(r.W)
}

// Bottom returns the exclusive bottom edge (y + h).
func (r Rect) Bottom() int64 {
	return int64(r.Y) + int64(r.H)
}

// Contains reports whether p lies inside r. The far edges are exclusive.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && int64(p.X) < r.Right() &&
		p.Y >= r.Y && int64(p.Y) < r.Bottom()
}

// Intersects reports whether r and o share at least one pixel, using a
// half-open overlap test on both axes. Empty rects never intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return int64(r.X) < o.Right() && int64(o.X) < r.Right() &&
		int64(r.Y) < o.Bottom() && int64(o.Y) < r.Bottom()
}

// Inside reports whether r lies entirely within o.
func (r Rect) Inside(o Rect) bool {
	if r.Empty() {
		return false
	}
	return r.X >= o.X && r.Y >= o.Y && r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}

// ClipInside returns the part of r that lies within bounds. The second result
// is false when the two rects do not overlap, in which case there is no region.
func (r Rect) ClipInside(bounds Rect) (Rect, bool) {
	if !r.Intersects(bounds) {
		return Rect{}, false
	}

	// Pull the near edges inside bounds.
	dx := max(int64(bounds.X)-int64(r.X), 0)
	dy := max(int64(bounds.Y)-int64(r.Y), 0)
	x := int64(r.X) + dx
	y := int64(r.Y) + dy
	w := int64(r.W) - dx
	h := int64(r.H) - dy

	// Shrink by whatever still sticks out past the far edges.
	if over := x + w - bounds.Right(); over > 0 {
		w -= over
	}
	if over := y + h - bounds.Bottom(); over > 0 {
		h -= over
	}

	return R(int32(x), int32(y), uint32(w), uint32(h)), true
}

// Merge returns the smallest rect containing both r and o. Empty operands are
// ignored; merging two empty rects yields the zero rect.
func (r Rect) Merge(o Rect) Rect {
	switch {
	case r.Empty() && o.Empty():
		return Rect{}
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return R(x, y, uint32(right-int64(x)), uint32(bottom-int64(y)))
}

// Translate returns r moved by p.
func (r Rect) Translate(p Point) Rect {
	r.Point = r.Point.Add(p)
	return r
}

// ExpandToOrigin grows r so that it starts at (0,0) while keeping its far
// edges. Far edges left of or above the origin collapse to zero.
func (r Rect) ExpandToOrigin() Rect {
	if r.Empty() {
		return Rect{}
	}
	return Rect{Size: Size{
		W: uint32(max(r.Right(), 0)),
		H: uint32(max(r.Bottom(), 0)),
	}}
}

// Inset shrinks r by b on every side, clamping the size at zero.
func (r Rect) Inset(b Border) Rect {
	out := R(r.X+int32(b.Left), r.Y+int32(b.Top), 0, 0)
	if h := b.Horizontal(); r.W > h {
		out.W = r.W - h
	}
	if v := b.Vertical(); r.H > v {
		out.H = r.H - v
	}
	return out
}

// Outset grows r by b on every side.
func (r Rect) Outset(b Border) Rect {
	return R(r.X-int32(b.Left), r.Y-int32(b.Top), r.W+b.Horizontal(), r.H+b.Vertical())
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Point, r.Size)
}

// Border holds per-side widths, used for padding and frame thickness.
type Border struct {
	Top, Right, Bottom, Left uint32
}

// Uniform returns a border with the same width on every side.
func Uniform(v uint32) Border {
	return Border{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (b Border) Horizontal() uint32 {
	return b.Left + b.Right
}

// Vertical returns Top + Bottom.
func (b Border) Vertical() uint32 {
	return b.Top + b.Bottom
}
