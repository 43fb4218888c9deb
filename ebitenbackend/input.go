package ebitenbackend

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bramble"
)

// input polls Ebitengine once per tick and turns state changes into bramble
// events. Ebitengine exposes input as state rather than a stream, so every
// transition is detected by comparing against the previous tick.
type input struct {
	size      bramble.Size
	cursor    bramble.Point
	inside    bool
	mods      bramble.Modifiers
	focused   bool
	position  bramble.Point
	started   bool
	resized   bool
	closeSent bool

	keys   []ebiten.Key
	chars  []rune
	events []bramble.Event
}

// resize records the window size reported by Game.Layout.
func (in *input) resize(s bramble.Size) {
	if s != in.size {
		in.size = s
		in.resized = true
	}
}

// poll returns the events for this tick. The returned slice is reused by the
// next call.
func (in *input) poll() []bramble.Event {
	ev := in.events[:0]

	if !in.started {
		in.started = true
		in.focused = ebiten.IsFocused()
		x, y := ebiten.WindowPosition()
		in.position = bramble.Pt(int32(x), int32(y))
	}

	if in.resized {
		in.resized = false
		ev = append(ev, bramble.ResizeEvent{Size: in.size})
	}

	if x, y := ebiten.WindowPosition(); int32(x) != in.position.X || int32(y) != in.position.Y {
		in.position = bramble.Pt(int32(x), int32(y))
		ev = append(ev, bramble.MoveEvent{Pos: in.position})
	}

	if f := ebiten.IsFocused(); f != in.focused {
		in.focused = f
		ev = append(ev, bramble.FocusEvent{Focused: f})
	}

	if m := modifiers(); m != in.mods {
		in.mods = m
		ev = append(ev, bramble.ModifiersEvent{Modifiers: m})
	}

	ev = in.pollPointer(ev)

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		ev = append(ev, bramble.KeyEvent{Pressed: true, Key: mapKey(k), Scancode: uint32(k)})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		ev = append(ev, bramble.KeyEvent{Pressed: false, Key: mapKey(k), Scancode: uint32(k)})
	}

	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		ev = append(ev, bramble.CharEvent{Char: r})
	}

	if files := ebiten.DroppedFiles(); files != nil {
		ev = appendDroppedFiles(ev, files)
	}

	if ebiten.IsWindowBeingClosed() && !in.closeSent {
		in.closeSent = true
		ev = append(ev, bramble.CloseRequestEvent{})
	}

	in.events = ev
	return ev
}

// pollPointer reports motion, window enter/leave, buttons and the wheel.
// Ebitengine keeps reporting the last cursor position after the pointer
// leaves the window, so leaving is detected by bounds.
func (in *input) pollPointer(ev []bramble.Event) []bramble.Event {
	x, y := ebiten.CursorPosition()
	p := bramble.Pt(int32(x), int32(y))
	inside := bramble.RectAt(in.size).Contains(p)

	if inside && (p != in.cursor || !in.inside) {
		if !in.inside {
			ev = append(ev, bramble.PointerInsideEvent{Inside: true})
		}
		ev = append(ev, bramble.AxisEvent{Axis: bramble.Motion{Pos: p}})
	}
	if !inside && in.inside {
		ev = append(ev, bramble.PointerInsideEvent{Inside: false})
	}
	in.cursor = p
	in.inside = inside

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			ev = append(ev, bramble.MouseButtonEvent{Pressed: true, Button: mb.b})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			ev = append(ev, bramble.MouseButtonEvent{Pressed: false, Button: mb.b})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		ev = append(ev, bramble.AxisEvent{Axis: bramble.Scroll{DX: float32(dx), DY: float32(dy)}})
	}
	return ev
}

// appendDroppedFiles adds one FileDropEvent per top-level entry of the
// dropped file system.
func appendDroppedFiles(ev []bramble.Event, files fs.FS) []bramble.Event {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return ev
	}
	for _, e := range entries {
		ev = append(ev, bramble.FileDropEvent{Path: e.Name()})
	}
	return ev
}
