package ebitenbackend

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/bramble"
)

// fontStyle indexes the four faces of a family.
type fontStyle uint8

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
	styleBoldItalic
)

func styleOf(d bramble.FontDescriptor) fontStyle {
	switch {
	case d.Bold && d.Italic:
		return styleBoldItalic
	case d.Bold:
		return styleBold
	case d.Italic:
		return styleItalic
	}
	return styleRegular
}

type faceKey struct {
	family string
	style  fontStyle
	size   float32
}

// Fonts is a registry of text/v2 face sources. The empty family is the Go
// font family from golang.org/x/image, loaded on first use. A family
// registered with LoadFont has one source for all styles unless styled
// variants are registered as "name:bold", "name:italic" and
// "name:bolditalic".
type Fonts struct {
	sources map[string]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// NewFonts returns an empty registry.
func NewFonts() *Fonts {
	return &Fonts{
		sources: make(map[string]*text.GoTextFaceSource),
		faces:   make(map[faceKey]*text.GoTextFace),
	}
}

var styleSuffix = [...]string{"", ":bold", ":italic", ":bolditalic"}

var goFonts = [...][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}

// LoadFont registers font data under name. For font collections index selects
// the face; single fonts require index 0.
func (f *Fonts) LoadFont(name string, data []byte, index int) error {
	src, err := parseFont(name, data, index)
	if err != nil {
		return err
	}
	f.sources[name] = src
	f.dropFaces(name)
	return nil
}

// LoadFontFile reads path and registers it under name.
func (f *Fonts) LoadFontFile(name, path string, index int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &bramble.FontError{Kind: bramble.FontIO, Name: name, Err: err}
	}
	return f.LoadFont(name, data, index)
}

// LoadFontFS is LoadFontFile reading from fsys.
func (f *Fonts) LoadFontFS(name string, fsys fs.FS, path string, index int) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return &bramble.FontError{Kind: bramble.FontIO, Name: name, Err: err}
	}
	return f.LoadFont(name, data, index)
}

func parseFont(name string, data []byte, index int) (*text.GoTextFaceSource, error) {
	if index < 0 {
		return nil, &bramble.FontError{Kind: bramble.FontInvalidIndex, Name: name}
	}
	if index == 0 {
		if src, err := text.NewGoTextFaceSource(bytes.NewReader(data)); err == nil {
			return src, nil
		}
	}
	srcs, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(data))
	if err != nil {
		return nil, &bramble.FontError{Kind: bramble.FontInvalidData, Name: name, Err: err}
	}
	if index >= len(srcs) {
		return nil, &bramble.FontError{
			Kind: bramble.FontInvalidIndex,
			Name: name,
			Err:  errors.New("collection has fewer faces"),
		}
	}
	return srcs[index], nil
}

func (f *Fonts) dropFaces(name string) {
	for k := range f.faces {
		if k.family == name || k.family+styleSuffix[k.style] == name {
			delete(f.faces, k)
		}
	}
}

// source finds the source for a family and style, falling back to the
// family's regular face and then to the default family.
func (f *Fonts) source(family string, style fontStyle) *text.GoTextFaceSource {
	if src, ok := f.sources[family+styleSuffix[style]]; ok {
		return src
	}
	if family != "" {
		if src, ok := f.sources[family]; ok {
			return src
		}
		return f.source("", style)
	}
	// Default family: the Go fonts are known-good, so a parse error here is
	// a broken build of golang.org/x/image.
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goFonts[style]))
	if err != nil {
		panic("ebitenbackend: parse built-in Go font: " + err.Error())
	}
	f.sources[styleSuffix[style]] = src
	return src
}

// Face returns the text/v2 face for d.
func (f *Fonts) Face(d bramble.FontDescriptor) *text.GoTextFace {
	size := d.Size
	if size <= 0 {
		size = bramble.DefaultFontSize
	}
	key := faceKey{family: d.Family, style: styleOf(d), size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source(key.family, key.style), Size: float64(size)}
	f.faces[key] = face
	return face
}

// lineHeight returns the distance between baselines for face.
func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureText returns the size s occupies when drawn with d.
func (f *Fonts) MeasureText(s string, d bramble.FontDescriptor) bramble.Size {
	face := f.Face(d)
	w, h := text.Measure(s, face, lineHeight(face))
	return bramble.Size{W: uint32(math.Ceil(w)), H: uint32(math.Ceil(h))}
}
