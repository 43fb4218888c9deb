package bramble

import (
	"sync"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := R(10, 10, 20, 5)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(29, 14), true},
		{Pt(30, 14), false},
		{Pt(29, 15), false},
		{Pt(9, 10), false},
		{Pt(-5, -5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tt.p, got, tt.want)
		}
	}
	if R(0, 0, 0, 10).Contains(Pt(0, 0)) {
		t.Error("empty rect should contain nothing")
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", R(0, 0, 10, 10), R(5, 5, 10, 10), true},
		{"touching edges", R(0, 0, 10, 10), R(10, 0, 10, 10), false},
		{"contained", R(0, 0, 100, 100), R(40, 40, 1, 1), true},
		{"disjoint", R(0, 0, 10, 10), R(50, 50, 10, 10), false},
		{"negative", R(-10, -10, 11, 11), R(0, 0, 5, 5), true},
		{"empty", R(0, 0, 0, 10), R(0, 0, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClipInside(t *testing.T) {
	tests := []struct {
		name   string
		r, b   Rect
		want   Rect
		wantOK bool
	}{
		{"inside", R(10, 10, 5, 5), R(0, 0, 100, 100), R(10, 10, 5, 5), true},
		{"overhang right", R(90, 10, 20, 5), R(0, 0, 100, 100), R(90, 10, 10, 5), true},
		{"overhang left", R(-10, -10, 20, 20), R(0, 0, 100, 100), R(0, 0, 10, 10), true},
		{"covers", R(-10, -10, 200, 200), R(5, 5, 10, 10), R(5, 5, 10, 10), true},
		{"disjoint", R(200, 200, 5, 5), R(0, 0, 100, 100), Rect{}, false},
		{"empty", R(10, 10, 0, 5), R(0, 0, 100, 100), Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.ClipInside(tt.b)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ClipInside = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Every pixel of the clipped rect lies in both inputs, and every pixel in
// both inputs lies in the clipped rect.
func TestRectClipInsideExhaustive(t *testing.T) {
	bounds := R(3, 2, 6, 5)
	for x := int32(-2); x < 12; x += 1 {
		for y := int32(-2); y < 10; y += 3 {
			for w := uint32(0); w < 9; w += 2 {
				for h := uint32(0); h < 8; h += 3 {
					r := R(x, y, w, h)
					clip, ok := r.ClipInside(bounds)
					if ok != r.Intersects(bounds) {
						t.Fatalf("%v clip ok=%v, intersects=%v", r, ok, r.Intersects(bounds))
					}
					for px := int32(-3); px < 14; px++ {
						for py := int32(-3); py < 12; py++ {
							p := Pt(px, py)
							in := r.Contains(p) && bounds.Contains(p)
							if ok && clip.Contains(p) != in {
								t.Fatalf("%v clipped to %v: pixel %v in=%v", r, clip, p, in)
							}
							if !ok && in {
								t.Fatalf("%v: no clip but pixel %v is shared", r, p)
							}
						}
					}
				}
			}
		}
	}
}

func TestRectMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", R(0, 0, 10, 10), R(20, 30, 5, 5), R(0, 0, 25, 35)},
		{"negative", R(-5, -5, 2, 2), R(0, 0, 1, 1), R(-5, -5, 6, 6)},
		{"left empty", Rect{}, R(3, 4, 5, 6), R(3, 4, 5, 6)},
		{"right empty", R(3, 4, 5, 6), R(100, 100, 0, 0), R(3, 4, 5, 6)},
		{"both empty", R(9, 9, 0, 0), R(1, 1, 0, 3), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Merge(tt.b); got != tt.want {
				t.Errorf("Merge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectExpandToOrigin(t *testing.T) {
	tests := []struct {
		r    Rect
		want Rect
	}{
		{R(10, 20, 30, 40), R(0, 0, 40, 60)},
		{R(-10, -10, 5, 5), R(0, 0, 0, 0)},
		{R(-10, 5, 20, 5), R(0, 0, 10, 10)},
		{R(50, 50, 0, 0), Rect{}},
	}
	for _, tt := range tests {
		if got := tt.r.ExpandToOrigin(); got != tt.want {
			t.Errorf("%v.ExpandToOrigin() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectEnd(t *testing.T) {
	r := R(10, 10, 20, 5)
	if r.EndX() != 29 || r.EndY() != 14 {
		t.Errorf("end = (%d,%d), want (29,14)", r.EndX(), r.EndY())
	}
	if r.Right() != 30 || r.Bottom() != 15 {
		t.Errorf("right/bottom = %d,%d, want 30,15", r.Right(), r.Bottom())
	}
}

func TestRectInside(t *testing.T) {
	outer := R(0, 0, 100, 100)
	if !R(0, 0, 100, 100).Inside(outer) {
		t.Error("rect should be inside itself")
	}
	if R(90, 90, 11, 5).Inside(outer) {
		t.Error("overhanging rect reported inside")
	}
	if R(10, 10, 0, 0).Inside(outer) {
		t.Error("empty rect reported inside")
	}
}

func TestRectInsetOutset(t *testing.T) {
	r := R(10, 10, 100, 50)
	b := Border{Top: 1, Right: 2, Bottom: 3, Left: 4}
	in := r.Inset(b)
	if in != R(14, 11, 94, 46) {
		t.Errorf("Inset = %v", in)
	}
	if out := in.Outset(b); out != r {
		t.Errorf("Outset(Inset) = %v, want %v", out, r)
	}
	if got := R(0, 0, 3, 3).Inset(Uniform(5)); !got.Empty() {
		t.Errorf("over-inset should be empty, got %v", got)
	}
}

func TestNewWidgetIDUnique(t *testing.T) {
	seen := make(map[WidgetID]bool)
	for i := 0; i < 1000; i++ {
		id := NewWidgetID()
		if id == NoWidget {
			t.Fatal("NewWidgetID returned NoWidget")
		}
		if seen[id] {
			t.Fatalf("duplicate id %v", id)
		}
		seen[id] = true
	}
}

func TestNewTextureIDConcurrent(t *testing.T) {
	const workers, per = 8, 200
	ids := make(chan TextureID, workers*per)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range per {
				ids <- NewTextureID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[TextureID]bool)
	for id := range ids {
		if id == 0 || seen[id] {
			t.Fatalf("bad or duplicate texture id %d", id)
		}
		seen[id] = true
	}
}

func TestBaseIDStable(t *testing.T) {
	var b Base
	id := b.ID()
	if !id.Valid() || b.ID() != id {
		t.Errorf("Base id not stable: %v then %v", id, b.ID())
	}
	if NoWidget.String() != "none" {
		t.Errorf("NoWidget.String() = %q", NoWidget.String())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#fff", White, false},
		{"000000", Black, false},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255}, false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if got != (Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if Black.Lerp(White, 2) != White {
		t.Error("Lerp should clamp t")
	}
}
