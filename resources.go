package bramble

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// PixelFormat describes the memory layout of Image.Pix.
type PixelFormat uint8

const (
	FormatRGBA8 PixelFormat = iota // 4 bytes per pixel, premultiplied alpha
	FormatAlpha8                   // 1 byte per pixel, coverage only
	FormatRGB8                     // 3 bytes per pixel; not accepted by every backend
)

// BytesPerPixel returns the pixel stride of f, or 0 for an unknown format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA8:
		return 4
	case FormatAlpha8:
		return 1
	case FormatRGB8:
		return 3
	}
	return 0
}

func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatAlpha8:
		return "alpha8"
	case FormatRGB8:
		return "rgb8"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Image is CPU-side pixel data shared by pointer between widgets and the
// backend. Backends upload it on first use and key their texture cache by ID,
// so the pixels of a live Image must not change after it is first drawn.
type Image struct {
	ID     ImageID
	Width  uint32
	Height uint32
	Format PixelFormat
	Pix    []byte
}

// NewImage wraps pix, which must hold width*height pixels of format f.
func NewImage(width, height uint32, f PixelFormat, pix []byte) *Image {
	return &Image{
		ID:     NewImageID(),
		Width:  width,
		Height: height,
		Format: f,
		Pix:    pix,
	}
}

// NewImageFromRGBA copies src into a new RGBA8 image.
func NewImageFromRGBA(src image.Image) *Image {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	pix := make([]byte, len(rgba.Pix))
	copy(pix, rgba.Pix)
	return NewImage(uint32(b.Dx()), uint32(b.Dy()), FormatRGBA8, pix)
}

// Validate checks that the image's dimensions and buffer agree.
func (img *Image) Validate() error {
	if img.Width == 0 || img.Height == 0 {
		return &TextureError{Kind: TextureDimensions, Image: img.ID,
			Detail: fmt.Sprintf("%dx%d", img.Width, img.Height)}
	}
	bpp := img.Format.BytesPerPixel()
	if bpp == 0 {
		return &TextureError{Kind: TextureFormat, Image: img.ID, Detail: img.Format.String()}
	}
	if want := int(img.Width) * int(img.Height) * bpp; len(img.Pix) != want {
		return &TextureError{Kind: TextureDimensions, Image: img.ID,
			Detail: fmt.Sprintf("have %d bytes, want %d", len(img.Pix), want)}
	}
	return nil
}

// FontDescriptor selects a loaded font face. Family names a font registered
// with Resources.LoadFont; an empty Family means the backend default.
type FontDescriptor struct {
	Family string
	Size   float32
	Bold   bool
	Italic bool
}

// TextMeasurer reports the size a string occupies when drawn.
type TextMeasurer interface {
	MeasureText(s string, font FontDescriptor) Size
}

// Resources is implemented by backends that own textures and fonts.
type Resources interface {
	TextMeasurer
	// PrepareTexture uploads img ahead of its first draw.
	PrepareTexture(img *Image) error
	// LoadFont registers font data under name. index selects a face within a
	// font collection and must be 0 for single-face files.
	LoadFont(name string, data []byte, index int) error
	// LoadFontFile is LoadFont reading data from path.
	LoadFontFile(name, path string, index int) error
}

// --- Errors ---

var (
	// ErrUnsupportedTexture matches every *TextureError.
	ErrUnsupportedTexture = errors.New("bramble: unsupported texture")
	// ErrFontLoad matches every *FontError.
	ErrFontLoad = errors.New("bramble: font load failed")
)

// TextureErrorKind classifies a TextureError.
type TextureErrorKind uint8

const (
	TextureFormat     TextureErrorKind = iota // pixel format not supported
	TextureDimensions                         // size zero, too large, or mismatched buffer
	TextureType                               // texture kind not supported
)

func (k TextureErrorKind) String() string {
	switch k {
	case TextureFormat:
		return "format"
	case TextureDimensions:
		return "dimensions"
	case TextureType:
		return "type"
	}
	return "unknown"
}

// TextureError is returned when a backend cannot accept an image.
type TextureError struct {
	Kind   TextureErrorKind
	Image  ImageID
	Detail string
}

func (e *TextureError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("bramble: unsupported texture %s for image %d", e.Kind, e.Image)
	}
	return fmt.Sprintf("bramble: unsupported texture %s for image %d: %s", e.Kind, e.Image, e.Detail)
}

func (e *TextureError) Is(target error) bool {
	return target == ErrUnsupportedTexture
}

// FontErrorKind classifies a FontError.
type FontErrorKind uint8

const (
	FontInvalidData  FontErrorKind = iota // data is not a parseable font
	FontInvalidIndex                      // collection index out of range
	FontIO                                // reading the font failed
)

func (k FontErrorKind) String() string {
	switch k {
	case FontInvalidData:
		return "invalid data"
	case FontInvalidIndex:
		return "invalid index"
	case FontIO:
		return "io"
	}
	return "unknown"
}

// FontError is returned when a font cannot be loaded.
type FontError struct {
	Kind FontErrorKind
	Name string
	Err  error
}

func (e *FontError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bramble: load font %q: %s", e.Name, e.Kind)
	}
	return fmt.Sprintf("bramble: load font %q: %s: %v", e.Name, e.Kind, e.Err)
}

func (e *FontError) Unwrap() error { return e.Err }

func (e *FontError) Is(target error) bool {
	return target == ErrFontLoad
}
