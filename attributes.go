package bramble

import "fmt"

// DefaultWindowSize is used when neither the window nor its content report a
// size.
var DefaultWindowSize = Size{W: 640, H: 480}

// Opt is a value that remembers whether it was explicitly set, so that "set to
// zero" and "never set" can be told apart.
type Opt[T any] struct {
	v   T
	set bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, set: true}
}

// Set stores v and marks the option set.
func (o *Opt[T]) Set(v T) {
	o.v = v
	o.set = true
}

// Unset clears the option.
func (o *Opt[T]) Unset() {
	var zero T
	o.v = zero
	o.set = false
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.set
}

// IsSet reports whether the option was set.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the value if set, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.v
	}
	return def
}

func (o Opt[T]) String() string {
	if !o.set {
		return "unset"
	}
	return fmt.Sprint(o.v)
}

// WindowAttributes are the requested properties of a top-level window. The
// backend reads them at window creation and applies later changes on a
// best-effort basis.
//
// Sizes with zero area count as unset: a window without a size derives it from
// its content.
type WindowAttributes struct {
	Title       Opt[string]
	Position    Opt[Point]
	Size        Opt[Size]
	MinSize     Opt[Size]
	MaxSize     Opt[Size]
	Background  Color
	Resizable   bool
	Maximized   bool
	Transparent bool
	AlwaysOnTop bool
	Decorated   bool
	Focused     bool
}

// DefaultWindowAttributes returns attributes with an opaque black background,
// resizable and decorated, and every optional value unset.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Background: Black,
		Resizable:  true,
		Decorated:  true,
	}
}

// SetTitle sets the window title.
func (a *WindowAttributes) SetTitle(title string) *WindowAttributes {
	a.Title.Set(title)
	return a
}

// SetPosition sets the window position in screen coordinates.
func (a *WindowAttributes) SetPosition(p Point) *WindowAttributes {
	a.Position.Set(p)
	return a
}

// SetSize sets the window size. A zero-area size unsets it.
func (a *WindowAttributes) SetSize(s Size) *WindowAttributes {
	if s.Empty() {
		a.Size.Unset()
	} else {
		a.Size.Set(s)
	}
	return a
}

// SetMinSize sets the minimum window size.
func (a *WindowAttributes) SetMinSize(s Size) *WindowAttributes {
	a.MinSize.Set(s)
	return a
}

// SetMaxSize sets the maximum window size.
func (a *WindowAttributes) SetMaxSize(s Size) *WindowAttributes {
	a.MaxSize.Set(s)
	return a
}

// SetBackground sets the color the window is cleared to before each draw.
func (a *WindowAttributes) SetBackground(c Color) *WindowAttributes {
	a.Background = c
	return a
}

// SetResizable sets whether the user can resize the window.
func (a *WindowAttributes) SetResizable(v bool) *WindowAttributes {
	a.Resizable = v
	return a
}

// SetMaximized sets whether the window opens maximized.
func (a *WindowAttributes) SetMaximized(v bool) *WindowAttributes {
	a.Maximized = v
	return a
}

// SetTransparent sets whether the window background is transparent.
func (a *WindowAttributes) SetTransparent(v bool) *WindowAttributes {
	a.Transparent = v
	return a
}

// SetAlwaysOnTop sets whether the window floats above others.
func (a *WindowAttributes) SetAlwaysOnTop(v bool) *WindowAttributes {
	a.AlwaysOnTop = v
	return a
}

// SetDecorated sets whether the window has a title bar and border.
func (a *WindowAttributes) SetDecorated(v bool) *WindowAttributes {
	a.Decorated = v
	return a
}

// SizeOrDefault returns the window size, or DefaultWindowSize if unset.
func (a *WindowAttributes) SizeOrDefault() Size {
	return a.Size.Or(DefaultWindowSize)
}
