package bramble

import (
	"errors"
	"testing"
)

var testViewport = R(0, 0, 100, 100)

func TestDrawQueueRectVertices(t *testing.T) {
	var q DrawQueue
	if err := q.Rect(testViewport, R(10, 10, 20, 5), Red); err != nil {
		t.Fatal(err)
	}
	if len(q.Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(q.Vertices))
	}
	want := [4][2]float32{{10, 10}, {29, 10}, {29, 14}, {10, 14}}
	for i, w := range want {
		if q.Vertices[i].Pos != w {
			t.Errorf("vertex %d = %v, want %v", i, q.Vertices[i].Pos, w)
		}
		if q.Vertices[i].Color != Red {
			t.Errorf("vertex %d color = %v", i, q.Vertices[i].Color)
		}
	}
	wantIdx := []uint32{0, 1, 2, 2, 3, 0}
	if len(q.Indices) != len(wantIdx) {
		t.Fatalf("indices = %v", q.Indices)
	}
	for i := range wantIdx {
		if q.Indices[i] != wantIdx[i] {
			t.Fatalf("indices = %v, want %v", q.Indices, wantIdx)
		}
	}
	if len(q.Commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(q.Commands))
	}
	cmd := q.Commands[0]
	if cmd.Type != CommandPrimitives || cmd.Kind != PrimitiveTriangles || cmd.IdxLen != 6 || cmd.Viewport != testViewport {
		t.Errorf("command = %+v", cmd)
	}
}

func TestDrawQueueRectSkipsInvisible(t *testing.T) {
	var q DrawQueue
	_ = q.Rect(testViewport, R(10, 10, 0, 5), Red)
	_ = q.Rect(testViewport, R(200, 200, 5, 5), Red)
	if len(q.Commands) != 0 || len(q.Vertices) != 0 {
		t.Errorf("expected nothing queued, got %d commands", len(q.Commands))
	}
}

func TestDrawQueueBatching(t *testing.T) {
	t.Run("identical draws merge", func(t *testing.T) {
		var q DrawQueue
		for i := 0; i < 50; i++ {
			if err := q.Rect(testViewport, R(int32(i), 0, 1, 1), Blue); err != nil {
				t.Fatal(err)
			}
		}
		if len(q.Commands) != 1 {
			t.Fatalf("commands = %d, want 1", len(q.Commands))
		}
		if q.Commands[0].IdxLen != 300 || len(q.Vertices) != 200 {
			t.Errorf("IdxLen = %d, vertices = %d", q.Commands[0].IdxLen, len(q.Vertices))
		}
	})

	t.Run("viewport change splits", func(t *testing.T) {
		var q DrawQueue
		other := R(0, 0, 50, 50)
		_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
		_ = q.Rect(testViewport, R(5, 0, 5, 5), Blue)
		_ = q.Rect(other, R(10, 0, 5, 5), Blue)
		_ = q.Rect(testViewport, R(15, 0, 5, 5), Blue)
		if len(q.Commands) != 3 {
			t.Fatalf("commands = %d, want 3", len(q.Commands))
		}
		if q.Commands[0].IdxLen != 12 || q.Commands[1].Viewport != other || q.Commands[2].IdxOffset != 18 {
			t.Errorf("unexpected commands: %+v", q.Commands)
		}
	})

	t.Run("kind change splits", func(t *testing.T) {
		var q DrawQueue
		_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
		_ = q.Line(testViewport, Pt(0, 0), Pt(5, 5), Blue)
		_ = q.Point(testViewport, Pt(1, 1), Blue)
		_ = q.Point(testViewport, Pt(2, 2), Blue)
		if q.Batches() != 3 {
			t.Errorf("batches = %d, want 3", q.Batches())
		}
	})

	t.Run("texture change splits", func(t *testing.T) {
		var q DrawQueue
		img := NewImage(1, 1, FormatRGBA8, []byte{1, 2, 3, 4})
		_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
		_ = q.TexturedRect(testViewport, R(0, 0, 5, 5), img, White)
		_ = q.TexturedRect(testViewport, R(5, 0, 5, 5), img, White)
		if q.Batches() != 2 || q.Commands[1].Texture != img {
			t.Errorf("batches = %d", q.Batches())
		}
	})

	t.Run("text breaks batch", func(t *testing.T) {
		var q DrawQueue
		_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
		q.Text(testViewport, "hi", FontDescriptor{}, Pt(0, 0), White)
		_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
		if len(q.Commands) != 3 || q.Batches() != 2 {
			t.Errorf("commands = %d, batches = %d", len(q.Commands), q.Batches())
		}
	})
}

func TestDrawQueueIndexOutOfBounds(t *testing.T) {
	var q DrawQueue
	_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
	verts, inds, cmds := len(q.Vertices), len(q.Indices), len(q.Commands)

	tri := []Vertex{{}, {}, {}}
	err := q.Triangles(testViewport, nil, tri, []uint32{0, 1, 3})
	var oob *IndexOutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected IndexOutOfBoundsError, got %v", err)
	}
	if oob.Index != 3 || oob.VertexCount != 3 {
		t.Errorf("error = %+v", oob)
	}
	if len(q.Vertices) != verts || len(q.Indices) != inds || len(q.Commands) != cmds {
		t.Error("rejected draw mutated the queue")
	}
	if q.Commands[0].IdxLen != 6 {
		t.Errorf("IdxLen changed to %d", q.Commands[0].IdxLen)
	}
}

func TestDrawQueueIndicesRebased(t *testing.T) {
	var q DrawQueue
	_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
	_ = q.Rect(testViewport, R(5, 5, 5, 5), Blue)
	got := q.CommandIndices(&q.Commands[0])
	want := []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	if len(got) != len(want) {
		t.Fatalf("indices = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indices = %v, want %v", got, want)
		}
	}
}

func TestDrawQueueReset(t *testing.T) {
	var q DrawQueue
	q.Clear(testViewport, Black)
	_ = q.Rect(testViewport, R(0, 0, 5, 5), Blue)
	q.Reset()
	if len(q.Vertices) != 0 || len(q.Indices) != 0 || len(q.Commands) != 0 {
		t.Error("Reset left data behind")
	}
	if cap(q.Vertices) == 0 {
		t.Error("Reset dropped vertex capacity")
	}
}

func TestDrawQueueEmptyText(t *testing.T) {
	var q DrawQueue
	q.Text(testViewport, "", FontDescriptor{}, Pt(0, 0), White)
	if len(q.Commands) != 0 {
		t.Error("empty text should not queue a command")
	}
}

func TestDrawQueueVerticesWithoutIndices(t *testing.T) {
	var q DrawQueue
	verts := []Vertex{{Color: White}, {Color: White}}
	if err := q.Triangles(testViewport, nil, verts, nil); err != nil {
		t.Fatal(err)
	}
	if len(q.Vertices) != 2 || len(q.Indices) != 0 || len(q.Commands) != 0 {
		t.Errorf("vertices=%d indices=%d commands=%d", len(q.Vertices), len(q.Indices), len(q.Commands))
	}

	// Later indices are rebased past the stored vertices.
	if err := q.Triangles(testViewport, nil, make([]Vertex, 3), []uint32{0, 1, 2}); err != nil {
		t.Fatal(err)
	}
	if got := q.Indices; len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("indices = %v, want [2 3 4]", got)
	}
}

func TestScissorRect(t *testing.T) {
	x, y, w, h := ScissorRect(R(10, 20, 30, 40), 480)
	if x != 10 || y != 420 || w != 30 || h != 40 {
		t.Errorf("ScissorRect = %d,%d,%d,%d", x, y, w, h)
	}
}
