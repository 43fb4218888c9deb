package bramble

// HAlign is horizontal alignment within a container.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical alignment within a container.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Align positions a rect of size s inside within. If s is larger than within
// on an axis, the rect overhangs on the far side (left/top aligned).
func Align(s Size, within Rect, h HAlign, v VAlign) Rect {
	r := Rect{Point: within.Point, Size: s}
	if s.W < within.W {
		switch h {
		case AlignCenter:
			r.X += int32((within.W - s.W) / 2)
		case AlignRight:
			r.X += int32(within.W - s.W)
		}
	}
	if s.H < within.H {
		switch v {
		case AlignMiddle:
			r.Y += int32((within.H - s.H) / 2)
		case AlignBottom:
			r.Y += int32(within.H - s.H)
		}
	}
	return r
}

// FlowLayout places items left to right, wrapping to a new row when the next
// item would cross maxWidth. It returns one rect per item and the bounds of
// all of them. Items wider than maxWidth get a row of their own.
func FlowLayout(items []Size, maxWidth uint32, spacing uint32) ([]Rect, Rect) {
	out := make([]Rect, len(items))
	var (
		x, y   int64
		row    Rect
		bounds Rect
	)
	for i, s := range items {
		if x > 0 && x+int64(s.W) > int64(maxWidth) {
			bounds = bounds.Merge(row)
			y = row.Bottom() + int64(spacing)
			x = 0
			row = Rect{}
		}
		r := R(int32(x), int32(y), s.W, s.H)
		out[i] = r
		row = row.Merge(r)
		x += int64(s.W) + int64(spacing)
	}
	return out, bounds.Merge(row)
}
