package bramble

import "fmt"

// Vertex is one corner of a primitive. Pos is in window pixels, UV in
// normalized texture space.
type Vertex struct {
	Pos   [2]float32
	Color Color
	UV    [2]float32
}

// PrimitiveKind is the topology of a Primitives command.
type PrimitiveKind uint8

const (
	PrimitivePoints    PrimitiveKind = iota // one index per point
	PrimitiveLines                          // two indices per line
	PrimitiveTriangles                      // three indices per triangle
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitivePoints:
		return "points"
	case PrimitiveLines:
		return "lines"
	case PrimitiveTriangles:
		return "triangles"
	}
	return fmt.Sprintf("primitive(%d)", uint8(k))
}

// CommandType identifies the kind of a Command.
type CommandType uint8

const (
	CommandClear      CommandType = iota // clear Viewport to Color
	CommandPrimitives                    // draw Indices[IdxOffset:IdxOffset+IdxLen]
	CommandText                          // draw Text at Pos
)

// Command is a single backend instruction. A flat struct is used for every
// command type; only the fields relevant to Type are set.
type Command struct {
	Type     CommandType
	Viewport Rect  // clip region, top-left origin
	Color    Color // Clear and Text

	// Primitives
	Kind      PrimitiveKind
	IdxOffset int
	IdxLen    int
	Texture   *Image // nil means untextured (backends bind a white texel)

	// Text
	Text string
	Font FontDescriptor
	Pos  Point
}

// batchKey is the state that forces a new Primitives command when it changes.
type batchKey struct {
	kind     PrimitiveKind
	texture  *Image
	viewport Rect
}

// IndexOutOfBoundsError reports a draw call whose indices reference vertices
// it did not supply. It signals a bug in the caller.
type IndexOutOfBoundsError struct {
	Index       uint32
	VertexCount int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("bramble: draw index %d out of bounds for %d vertices", e.Index, e.VertexCount)
}

// DrawQueue accumulates one frame of drawing. All primitives share a single
// vertex buffer; consecutive draws with the same kind, texture and viewport
// are merged into one command.
//
// A queue is reused across frames: Reset truncates the buffers but keeps
// their capacity.
type DrawQueue struct {
	Vertices []Vertex
	Indices  []uint32
	Commands []Command
}

// Reset empties the queue for the next frame.
func (q *DrawQueue) Reset() {
	q.Vertices = q.Vertices[:0]
	q.Indices = q.Indices[:0]
	q.Commands = q.Commands[:0]
}

// Clear clears viewport to c. Backends may implement it as a framebuffer
// clear rather than geometry.
func (q *DrawQueue) Clear(viewport Rect, c Color) {
	q.Commands = append(q.Commands, Command{
		Type:     CommandClear,
		Viewport: viewport,
		Color:    c,
	})
}

// Primitives appends verts and draws them using inds, which index into verts
// starting at 0. Every index must be below len(verts); otherwise nothing is
// appended and an *IndexOutOfBoundsError is returned. Vertices are appended
// even when inds is empty, but no command is recorded then.
func (q *DrawQueue) Primitives(viewport Rect, kind PrimitiveKind, tex *Image, verts []Vertex, inds []uint32) error {
	for _, i := range inds {
		if int(i) >= len(verts) {
			return &IndexOutOfBoundsError{Index: i, VertexCount: len(verts)}
		}
	}

	base := uint32(len(q.Vertices))
	q.Vertices = append(q.Vertices, verts...)
	if len(inds) == 0 {
		return nil
	}
	start := len(q.Indices)
	for _, i := range inds {
		q.Indices = append(q.Indices, base+i)
	}

	key := batchKey{kind: kind, texture: tex, viewport: viewport}
	if n := len(q.Commands); n > 0 {
		last := &q.Commands[n-1]
		if last.Type == CommandPrimitives && commandBatchKey(last) == key {
			last.IdxLen += len(inds)
			return nil
		}
	}
	q.Commands = append(q.Commands, Command{
		Type:      CommandPrimitives,
		Viewport:  viewport,
		Kind:      kind,
		IdxOffset: start,
		IdxLen:    len(inds),
		Texture:   tex,
	})
	return nil
}

func commandBatchKey(cmd *Command) batchKey {
	return batchKey{kind: cmd.Kind, texture: cmd.Texture, viewport: cmd.Viewport}
}

// Points draws one point per index.
func (q *DrawQueue) Points(viewport Rect, tex *Image, verts []Vertex, inds []uint32) error {
	return q.Primitives(viewport, PrimitivePoints, tex, verts, inds)
}

// Lines draws one line per pair of indices.
func (q *DrawQueue) Lines(viewport Rect, tex *Image, verts []Vertex, inds []uint32) error {
	return q.Primitives(viewport, PrimitiveLines, tex, verts, inds)
}

// Triangles draws one triangle per three indices.
func (q *DrawQueue) Triangles(viewport Rect, tex *Image, verts []Vertex, inds []uint32) error {
	return q.Primitives(viewport, PrimitiveTriangles, tex, verts, inds)
}

// Point draws a single untextured point.
func (q *DrawQueue) Point(viewport Rect, p Point, c Color) error {
	v := [1]Vertex{vertexAt(p, c, 0, 0)}
	return q.Points(viewport, nil, v[:], []uint32{0})
}

// Line draws a single untextured line.
func (q *DrawQueue) Line(viewport Rect, from, to Point, c Color) error {
	v := [2]Vertex{vertexAt(from, c, 0, 0), vertexAt(to, c, 1, 1)}
	return q.Lines(viewport, nil, v[:], []uint32{0, 1})
}

// Triangle draws a single untextured triangle.
func (q *DrawQueue) Triangle(viewport Rect, a, b, cc Point, c Color) error {
	v := [3]Vertex{vertexAt(a, c, 0, 0), vertexAt(b, c, 1, 0), vertexAt(cc, c, 1, 1)}
	return q.Triangles(viewport, nil, v[:], []uint32{0, 1, 2})
}

// rectIndices splits a quad along its TL-BR diagonal:
// top-left, top-right, bottom-right, then bottom-right, bottom-left, top-left.
var rectIndices = []uint32{0, 1, 2, 2, 3, 0}

// Rect fills r with c. Corners sit on the first and last covered pixel
// (x+w-1, y+h-1); backends rasterize with the pixel-center rule. A rect with
// no area or entirely outside viewport draws nothing.
func (q *DrawQueue) Rect(viewport Rect, r Rect, c Color) error {
	return q.TexturedRect(viewport, r, nil, c)
}

// TexturedRect maps tex over r, tinted by c. A nil tex behaves like Rect.
func (q *DrawQueue) TexturedRect(viewport Rect, r Rect, tex *Image, c Color) error {
	if r.Empty() || !r.Intersects(viewport) {
		return nil
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.EndX(), r.EndY()
	v := [4]Vertex{
		vertexAt(Point{x0, y0}, c, 0, 0),
		vertexAt(Point{x1, y0}, c, 1, 0),
		vertexAt(Point{x1, y1}, c, 1, 1),
		vertexAt(Point{x0, y1}, c, 0, 1),
	}
	return q.Triangles(viewport, tex, v[:], rectIndices)
}

// Text queues s for the backend to shape and draw with its top-left corner at
// pos.
func (q *DrawQueue) Text(viewport Rect, s string, font FontDescriptor, pos Point, c Color) {
	if s == "" {
		return
	}
	q.Commands = append(q.Commands, Command{
		Type:     CommandText,
		Viewport: viewport,
		Color:    c,
		Text:     s,
		Font:     font,
		Pos:      pos,
	})
}

// Batches returns the number of Primitives commands, i.e. the number of draw
// calls a backend will issue for geometry.
func (q *DrawQueue) Batches() int {
	n := 0
	for i := range q.Commands {
		if q.Commands[i].Type == CommandPrimitives {
			n++
		}
	}
	return n
}

// CommandIndices returns the index slice a Primitives command refers to.
func (q *DrawQueue) CommandIndices(cmd *Command) []uint32 {
	return q.Indices[cmd.IdxOffset : cmd.IdxOffset+cmd.IdxLen]
}

func vertexAt(p Point, c Color, u, v float32) Vertex {
	return Vertex{
		Pos:   [2]float32{float32(p.X), float32(p.Y)},
		Color: c,
		UV:    [2]float32{u, v},
	}
}

// ScissorRect converts a top-left-origin viewport into a scissor box for
// backends whose window coordinates start at the bottom-left, such as OpenGL.
func ScissorRect(viewport Rect, windowHeight uint32) (x, y int32, w, h uint32) {
	return viewport.X, int32(int64(windowHeight) - viewport.Bottom()), viewport.W, viewport.H
}
