package ebitenbackend

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/bramble"
)

// Renderer replays a bramble DrawQueue onto an Ebitengine image. Each
// Primitives command becomes one DrawTriangles32 call on a sub-image of the
// target, which acts as the scissor rectangle. Ebitengine's origin is the
// top-left, like bramble's, so no Y flip is needed.
type Renderer struct {
	Fonts *Fonts

	textures *textureCache
	verts    []ebiten.Vertex
	inds     []uint32
	stats    frameStats
}

// NewRenderer returns a renderer drawing text with fonts. A nil fonts gets a
// fresh registry.
func NewRenderer(fonts *Fonts) *Renderer {
	if fonts == nil {
		fonts = NewFonts()
	}
	return &Renderer{Fonts: fonts, textures: newTextureCache()}
}

// PrepareTexture uploads img ahead of its first draw.
func (r *Renderer) PrepareTexture(img *bramble.Image) error {
	_, err := r.textures.get(img)
	return err
}

// LoadFont implements bramble.Resources.
func (r *Renderer) LoadFont(name string, data []byte, index int) error {
	return r.Fonts.LoadFont(name, data, index)
}

// LoadFontFile implements bramble.Resources.
func (r *Renderer) LoadFontFile(name, path string, index int) error {
	return r.Fonts.LoadFontFile(name, path, index)
}

// MeasureText implements bramble.Resources.
func (r *Renderer) MeasureText(s string, d bramble.FontDescriptor) bramble.Size {
	return r.Fonts.MeasureText(s, d)
}

var _ bramble.Resources = (*Renderer)(nil)

// Render draws q onto target. A texture that cannot be uploaded aborts the
// frame with its *bramble.TextureError.
func (r *Renderer) Render(target *ebiten.Image, q *bramble.DrawQueue) error {
	r.stats = frameStats{commands: len(q.Commands)}
	for i := range q.Commands {
		cmd := &q.Commands[i]
		dst, ok := clipTo(target, cmd.Viewport)
		if !ok {
			continue
		}
		switch cmd.Type {
		case bramble.CommandClear:
			dst.Fill(cmd.Color)
		case bramble.CommandPrimitives:
			if err := r.drawPrimitives(dst, q, cmd); err != nil {
				return err
			}
		case bramble.CommandText:
			r.drawText(dst, cmd)
		}
	}
	r.stats.evicted = r.textures.endFrame()
	r.stats.textures = r.textures.len()
	return nil
}

// clipTo returns the part of target inside viewport, or false if nothing of
// it is visible.
func clipTo(target *ebiten.Image, viewport bramble.Rect) (*ebiten.Image, bool) {
	b := target.Bounds()
	vp := image.Rect(int(viewport.X), int(viewport.Y), int(viewport.Right()), int(viewport.Bottom()))
	vp = vp.Intersect(b)
	if vp.Empty() {
		return nil, false
	}
	if vp == b {
		return target, true
	}
	return target.SubImage(vp).(*ebiten.Image), true
}

func (r *Renderer) drawPrimitives(dst *ebiten.Image, q *bramble.DrawQueue, cmd *bramble.Command) error {
	src := ensureWhitePixel()
	if cmd.Texture != nil {
		var err error
		if src, err = r.textures.get(cmd.Texture); err != nil {
			return err
		}
	}
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()

	r.verts, r.inds = r.verts[:0], r.inds[:0]
	inds := q.CommandIndices(cmd)
	switch cmd.Kind {
	case bramble.PrimitiveTriangles:
		for i := 0; i+2 < len(inds); i += 3 {
			r.appendTriangle(q.Vertices[inds[i]], q.Vertices[inds[i+1]], q.Vertices[inds[i+2]], sw, sh)
		}
	case bramble.PrimitiveLines:
		for i := 0; i+1 < len(inds); i += 2 {
			r.appendLine(q.Vertices[inds[i]], q.Vertices[inds[i+1]], sw, sh)
		}
	case bramble.PrimitivePoints:
		for _, i := range inds {
			v := q.Vertices[i]
			r.appendQuad(v.Pos[0], v.Pos[1], v.Pos[0]+1, v.Pos[1]+1, v, sw, sh)
		}
	}
	if len(r.inds) == 0 {
		return nil
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	dst.DrawTriangles32(r.verts, r.inds, src, &op)
	r.stats.batches++
	return nil
}

func ebitenVertex(x, y float32, v bramble.Vertex, sw, sh int) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   v.UV[0] * float32(sw),
		SrcY:   v.UV[1] * float32(sh),
		ColorR: v.Color.R,
		ColorG: v.Color.G,
		ColorB: v.Color.B,
		ColorA: v.Color.A,
	}
}

// appendTriangle converts one triangle. Queue coordinates name pixels, and a
// rect's far corner is its last covered pixel, so every vertex is pushed half
// a pixel away from the triangle's centroid (after moving to the pixel
// center). For the two halves of a rect this covers exactly w x h pixels.
func (r *Renderer) appendTriangle(a, b, c bramble.Vertex, sw, sh int) {
	cx := (a.Pos[0] + b.Pos[0] + c.Pos[0]) / 3
	cy := (a.Pos[1] + b.Pos[1] + c.Pos[1]) / 3
	base := uint32(len(r.verts))
	for _, v := range [3]bramble.Vertex{a, b, c} {
		x := v.Pos[0] + 0.5 + halfStep(v.Pos[0]-cx)
		y := v.Pos[1] + 0.5 + halfStep(v.Pos[1]-cy)
		r.verts = append(r.verts, ebitenVertex(x, y, v, sw, sh))
	}
	r.inds = append(r.inds, base, base+1, base+2)
}

func halfStep(d float32) float32 {
	switch {
	case d > 0:
		return 0.5
	case d < 0:
		return -0.5
	}
	return 0
}

// appendLine converts a line between two pixels into a one-pixel-wide quad
// that covers both end pixels.
func (r *Renderer) appendLine(a, b bramble.Vertex, sw, sh int) {
	ax, ay := a.Pos[0]+0.5, a.Pos[1]+0.5
	bx, by := b.Pos[0]+0.5, b.Pos[1]+0.5
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		r.appendQuad(a.Pos[0], a.Pos[1], a.Pos[0]+1, a.Pos[1]+1, a, sw, sh)
		return
	}
	// Unit direction and normal, each scaled to half a pixel.
	ux, uy := dx/l*0.5, dy/l*0.5
	nx, ny := -uy, ux

	base := uint32(len(r.verts))
	r.verts = append(r.verts,
		ebitenVertex(ax-ux+nx, ay-uy+ny, a, sw, sh),
		ebitenVertex(bx+ux+nx, by+uy+ny, b, sw, sh),
		ebitenVertex(bx+ux-nx, by+uy-ny, b, sw, sh),
		ebitenVertex(ax-ux-nx, ay-uy-ny, a, sw, sh),
	)
	r.inds = append(r.inds, base, base+1, base+2, base+2, base+3, base)
}

// appendQuad adds an axis-aligned quad sampling v's texel.
func (r *Renderer) appendQuad(x0, y0, x1, y1 float32, v bramble.Vertex, sw, sh int) {
	base := uint32(len(r.verts))
	r.verts = append(r.verts,
		ebitenVertex(x0, y0, v, sw, sh),
		ebitenVertex(x1, y0, v, sw, sh),
		ebitenVertex(x1, y1, v, sw, sh),
		ebitenVertex(x0, y1, v, sw, sh),
	)
	r.inds = append(r.inds, base, base+1, base+2, base+2, base+3, base)
}

func (r *Renderer) drawText(dst *ebiten.Image, cmd *bramble.Command) {
	face := r.Fonts.Face(cmd.Font)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cmd.Pos.X), float64(cmd.Pos.Y))
	op.ColorScale.ScaleWithColor(cmd.Color)
	op.LineSpacing = lineHeight(face)
	text.Draw(dst, cmd.Text, face, op)
	r.stats.texts++
}
