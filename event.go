package bramble

import (
	"fmt"
	"time"
)

// --- Events ---

// Event is an input or lifecycle event delivered through the widget tree.
// The set of variants is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// KeyEvent is a raw key press or release.
type KeyEvent struct {
	Pressed  bool
	Key      Key
	Scancode uint32 // hardware or backend key code; 0 when unknown
}

// CharEvent carries one unicode character of text input.
type CharEvent struct {
	Char rune
}

// ModifiersEvent reports a change in the modifier key state.
type ModifiersEvent struct {
	Modifiers Modifiers
}

// AxisEvent reports pointer motion or another continuous pointer axis.
type AxisEvent struct {
	Axis Axis
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Pressed bool
	Button  MouseButton
}

// PointerInsideEvent reports that the pointer crossed a boundary. Backends
// send one when the pointer enters or leaves the window; the dispatcher
// consumes that itself and delivers PointerInsideEvents to widgets only as
// hover edges, one leave and one enter at most per dispatch.
type PointerInsideEvent struct {
	Inside bool
}

// FileDropEvent reports a file dropped onto the window.
type FileDropEvent struct {
	Path string
}

// ResizeEvent reports a new window size.
type ResizeEvent struct {
	Size Size
}

// MoveEvent reports a new window position.
type MoveEvent struct {
	Pos Point
}

// FocusEvent reports that the window gained or lost keyboard focus.
type FocusEvent struct {
	Focused bool
}

// CloseRequestEvent reports that the user asked to close the window.
type CloseRequestEvent struct{}

// CreatedEvent is delivered once after the window is created.
type CreatedEvent struct{}

// DestroyedEvent is delivered once before the window goes away.
type DestroyedEvent struct{}

func (KeyEvent) isEvent()           {}
func (CharEvent) isEvent()          {}
func (ModifiersEvent) isEvent()     {}
func (AxisEvent) isEvent()          {}
func (MouseButtonEvent) isEvent()   {}
func (PointerInsideEvent) isEvent() {}
func (FileDropEvent) isEvent()      {}
func (ResizeEvent) isEvent()        {}
func (MoveEvent) isEvent()          {}
func (FocusEvent) isEvent()         {}
func (CloseRequestEvent) isEvent()  {}
func (CreatedEvent) isEvent()       {}
func (DestroyedEvent) isEvent()     {}

// PositionDependent reports whether e is routed only to widgets under the
// pointer. Pointer axes, mouse buttons and file drops are; every other event
// is broadcast to the whole tree.
func PositionDependent(e Event) bool {
	switch e.(type) {
	case AxisEvent, MouseButtonEvent, FileDropEvent:
		return true
	}
	return false
}

// isPointerMotion reports whether e moves the pointer.
func isPointerMotion(e Event) bool {
	if a, ok := e.(AxisEvent); ok {
		_, motion := a.Axis.(Motion)
		return motion
	}
	return false
}

// isPointerLeft reports whether e says the pointer left the window.
func isPointerLeft(e Event) bool {
	p, ok := e.(PointerInsideEvent)
	return ok && !p.Inside
}

// --- Axis ---

// Axis is the payload of an AxisEvent.
type Axis interface {
	isAxis()
}

// Motion is an absolute pointer position in window coordinates.
type Motion struct {
	Pos Point
}

// Scroll is a wheel or touchpad scroll delta.
type Scroll struct {
	DX, DY float32
}

// Pressure is stylus pressure in [0, 1].
type Pressure struct {
	Value float32
}

// Tilt is stylus tilt in degrees.
type Tilt struct {
	X, Y float32
}

func (Motion) isAxis()   {}
func (Scroll) isAxis()   {}
func (Pressure) isAxis() {}
func (Tilt) isAxis()     {}

// --- Modifiers and buttons ---

// Modifiers is a bitmask of keyboard modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota // Shift key
	ModCtrl                        // Control key
	ModAlt                         // Alt / Option key
	ModSuper                       // Super / Command / Windows key
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonBack                      // back side button
	MouseButtonForward                   // forward side button
)

// Mask returns the bit for b in a MouseButtons set.
func (b MouseButton) Mask() MouseButtons {
	return 1 << b
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	}
	return fmt.Sprintf("button%d", uint8(b))
}

// MouseButtons is a bitmask of currently pressed mouse buttons.
type MouseButtons uint8

// Has reports whether b is pressed.
func (m MouseButtons) Has(b MouseButton) bool {
	return m&b.Mask() != 0
}

// --- Context and result ---

// EventContext describes the state at the moment an event reaches a widget.
// Pointer is window-relative; Local is relative to the receiving widget's
// top-left corner.
type EventContext struct {
	Time      time.Time
	Pointer   Point
	Local     Point
	Buttons   MouseButtons
	Modifiers Modifiers
	ID        WidgetID
	ParentID  WidgetID
}

// EventResult is the outcome of handing an event to a widget.
type EventResult uint8

const (
	// Pass leaves the event for the next widget in dispatch order.
	Pass EventResult = iota
	// Consumed stops propagation and implies a redraw.
	Consumed
)

func (r EventResult) String() string {
	if r == Consumed {
		return "consumed"
	}
	return "pass"
}

// eventName is used in debug logging.
func eventName(e Event) string {
	switch e := e.(type) {
	case KeyEvent:
		if e.Pressed {
			return "key-down " + e.Key.String()
		}
		return "key-up " + e.Key.String()
	case CharEvent:
		return fmt.Sprintf("char %q", e.Char)
	case ModifiersEvent:
		return "modifiers"
	case AxisEvent:
		switch a := e.Axis.(type) {
		case Motion:
			return "motion " + a.Pos.String()
		case Scroll:
			return "scroll"
		case Pressure:
			return "pressure"
		case Tilt:
			return "tilt"
		}
		return "axis"
	case MouseButtonEvent:
		if e.Pressed {
			return "button-down " + e.Button.String()
		}
		return "button-up " + e.Button.String()
	case PointerInsideEvent:
		if e.Inside {
			return "pointer-entered"
		}
		return "pointer-left"
	case FileDropEvent:
		return "file-drop"
	case ResizeEvent:
		return "resize " + e.Size.String()
	case MoveEvent:
		return "move " + e.Pos.String()
	case FocusEvent:
		return "focus"
	case CloseRequestEvent:
		return "close-request"
	case CreatedEvent:
		return "created"
	case DestroyedEvent:
		return "destroyed"
	}
	return fmt.Sprintf("%T", e)
}
