package bramble

import (
	"strconv"
	"sync/atomic"
)

// WidgetID is a process-unique widget handle. IDs are identity only: they are
// never reused and carry no reference to the widget they name.
type WidgetID uint64

// NoWidget is the sentinel id meaning "no widget". It is the parent id of a
// tree root and the consumer id of an event nobody consumed.
const NoWidget WidgetID = 0

var widgetIDCounter atomic.Uint64

// NewWidgetID returns the next widget id. Safe for concurrent use.
func NewWidgetID() WidgetID {
	return WidgetID(widgetIDCounter.Add(1))
}

// Valid reports whether id names a widget.
func (id WidgetID) Valid() bool {
	return id != NoWidget
}

func (id WidgetID) String() string {
	if id == NoWidget {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ImageID identifies image data shared with a rendering backend. Backends key
// their texture caches by it.
type ImageID uint64

var imageIDCounter atomic.Uint64

// NewImageID returns the next image id.
func NewImageID() ImageID {
	return ImageID(imageIDCounter.Add(1))
}

// TextureID identifies a texture a backend created from an image. An
// image keeps its ImageID for life; the texture behind it can be released
// and recreated under a new TextureID.
type TextureID uint64

var textureIDCounter atomic.Uint64

// NewTextureID returns the next texture id.
func NewTextureID() TextureID {
	return TextureID(textureIDCounter.Add(1))
}
