package bramble

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormat selects the decoder for a WindowConfig file.
type ConfigFormat uint8

const (
	ConfigTOML ConfigFormat = iota
	ConfigYAML
)

// WindowConfig is the file form of WindowAttributes. Pointer fields
// distinguish "not in the file" from a zero value; only fields present in the
// file are applied.
type WindowConfig struct {
	Title       *string `toml:"title" yaml:"title"`
	X           *int32  `toml:"x" yaml:"x"`
	Y           *int32  `toml:"y" yaml:"y"`
	Width       uint32  `toml:"width" yaml:"width"`
	Height      uint32  `toml:"height" yaml:"height"`
	MinWidth    uint32  `toml:"min_width" yaml:"min_width"`
	MinHeight   uint32  `toml:"min_height" yaml:"min_height"`
	MaxWidth    uint32  `toml:"max_width" yaml:"max_width"`
	MaxHeight   uint32  `toml:"max_height" yaml:"max_height"`
	Background  string  `toml:"background" yaml:"background"`
	Resizable   *bool   `toml:"resizable" yaml:"resizable"`
	Maximized   *bool   `toml:"maximized" yaml:"maximized"`
	Transparent *bool   `toml:"transparent" yaml:"transparent"`
	AlwaysOnTop *bool   `toml:"always_on_top" yaml:"always_on_top"`
	Decorated   *bool   `toml:"decorated" yaml:"decorated"`

	// Debug enables debug logging in backends that honor it.
	Debug bool `toml:"debug" yaml:"debug"`
}

// LoadWindowConfig reads a window config file. The format is chosen by
// extension: .toml, or .yaml/.yml.
func LoadWindowConfig(path string) (WindowConfig, error) {
	var format ConfigFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = ConfigTOML
	case ".yaml", ".yml":
		format = ConfigYAML
	default:
		return WindowConfig{}, fmt.Errorf("bramble: window config %s: unknown extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseWindowConfig(data, format)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseWindowConfig decodes data in the given format. Unknown keys are
// rejected.
func ParseWindowConfig(data []byte, format ConfigFormat) (WindowConfig, error) {
	var cfg WindowConfig
	switch format {
	case ConfigTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return WindowConfig{}, err
		}
	case ConfigYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return WindowConfig{}, err
		}
	default:
		return WindowConfig{}, fmt.Errorf("bramble: unknown config format %d", format)
	}
	return cfg, nil
}

// Apply copies every field present in the config onto a. The attributes are
// left untouched if the config is invalid.
func (c WindowConfig) Apply(a *WindowAttributes) error {
	out := *a
	if c.Title != nil {
		out.SetTitle(*c.Title)
	}
	if c.X != nil || c.Y != nil {
		p := out.Position.Or(Point{})
		if c.X != nil {
			p.X = *c.X
		}
		if c.Y != nil {
			p.Y = *c.Y
		}
		out.SetPosition(p)
	}
	if c.Width != 0 || c.Height != 0 {
		if c.Width == 0 || c.Height == 0 {
			return fmt.Errorf("bramble: window config: width and height must both be set")
		}
		out.SetSize(Sz(c.Width, c.Height))
	}
	if c.MinWidth != 0 || c.MinHeight != 0 {
		out.SetMinSize(Sz(c.MinWidth, c.MinHeight))
	}
	if c.MaxWidth != 0 || c.MaxHeight != 0 {
		out.SetMaxSize(Sz(c.MaxWidth, c.MaxHeight))
	}
	if c.Background != "" {
		bg, err := ParseHexColor(c.Background)
		if err != nil {
			return fmt.Errorf("bramble: window config: background: %w", err)
		}
		out.SetBackground(bg)
	}
	applyBool(c.Resizable, &out.Resizable)
	applyBool(c.Maximized, &out.Maximized)
	applyBool(c.Transparent, &out.Transparent)
	applyBool(c.AlwaysOnTop, &out.AlwaysOnTop)
	applyBool(c.Decorated, &out.Decorated)

	*a = out
	return nil
}

func applyBool(src *bool, dst *bool) {
	if src != nil {
		*dst = *src
	}
}
