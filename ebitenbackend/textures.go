package ebitenbackend

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble"
)

// MaxTextureSize is the largest texture edge the cache accepts.
const MaxTextureSize = 8192

// whitePixel is the 1x1 opaque white texture bound for untextured draws.
// Single-threaded like the rest of the backend, so no sync.Once.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixel
}

type textureEntry struct {
	id        bramble.TextureID
	image     bramble.ImageID
	img       *ebiten.Image
	lastFrame uint64
}

// textureCache holds GPU copies of bramble images. Each upload gets its own
// TextureID; images map to their current texture. An entry referenced in
// neither the current nor the previous frame is released when the frame
// ends, so widgets never have to unregister images.
type textureCache struct {
	entries map[bramble.TextureID]*textureEntry
	byImage map[bramble.ImageID]bramble.TextureID
	frame   uint64
}

func newTextureCache() *textureCache {
	return &textureCache{
		entries: make(map[bramble.TextureID]*textureEntry),
		byImage: make(map[bramble.ImageID]bramble.TextureID),
	}
}

// lookup returns the live entry for an image, marking it used this frame.
func (c *textureCache) lookup(id bramble.ImageID) (*textureEntry, bool) {
	tid, ok := c.byImage[id]
	if !ok {
		return nil, false
	}
	e := c.entries[tid]
	e.lastFrame = c.frame
	return e, true
}

// add registers an uploaded texture for image and returns its id.
func (c *textureCache) add(image bramble.ImageID, img *ebiten.Image) bramble.TextureID {
	e := &textureEntry{id: bramble.NewTextureID(), image: image, img: img, lastFrame: c.frame}
	c.entries[e.id] = e
	c.byImage[image] = e.id
	return e.id
}

// get returns the texture for img, uploading it on first use.
func (c *textureCache) get(img *bramble.Image) (*ebiten.Image, error) {
	if e, ok := c.lookup(img.ID); ok {
		return e.img, nil
	}
	pix, err := texturePixels(img)
	if err != nil {
		return nil, err
	}
	eimg := ebiten.NewImage(int(img.Width), int(img.Height))
	eimg.WritePixels(pix)
	c.add(img.ID, eimg)
	return eimg, nil
}

// textureID returns the texture currently backing an image.
func (c *textureCache) textureID(id bramble.ImageID) (bramble.TextureID, bool) {
	tid, ok := c.byImage[id]
	return tid, ok
}

// endFrame evicts textures unused since the previous frame and starts a new
// frame. It returns the number of textures released.
func (c *textureCache) endFrame() int {
	n := 0
	for id, e := range c.entries {
		if e.lastFrame+1 < c.frame {
			if e.img != nil {
				e.img.Deallocate()
			}
			delete(c.entries, id)
			delete(c.byImage, e.image)
			n++
		}
	}
	c.frame++
	return n
}

// len returns the number of cached textures.
func (c *textureCache) len() int {
	return len(c.entries)
}

// texturePixels validates img and returns its pixels as premultiplied RGBA.
func texturePixels(img *bramble.Image) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.Width > MaxTextureSize || img.Height > MaxTextureSize {
		return nil, &bramble.TextureError{
			Kind:   bramble.TextureDimensions,
			Image:  img.ID,
			Detail: fmt.Sprintf("%dx%d exceeds %d", img.Width, img.Height, MaxTextureSize),
		}
	}
	switch img.Format {
	case bramble.FormatRGBA8:
		return img.Pix, nil
	case bramble.FormatAlpha8:
		pix := make([]byte, len(img.Pix)*4)
		for i, a := range img.Pix {
			pix[i*4+0] = a
			pix[i*4+1] = a
			pix[i*4+2] = a
			pix[i*4+3] = a
		}
		return pix, nil
	}
	return nil, &bramble.TextureError{Kind: bramble.TextureFormat, Image: img.ID, Detail: img.Format.String()}
}
