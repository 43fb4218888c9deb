package bramble

import (
	"io"
	"log/slog"
	"time"
)

// EventStore is the interface for optional ECS integration. When set on a
// Dispatcher, every dispatch is forwarded to it as a DispatchRecord.
type EventStore interface {
	EmitEvent(rec DispatchRecord)
}

// DispatchRecord summarizes one Dispatch call.
type DispatchRecord struct {
	Event      Event
	Context    EventContext // dispatcher state after the event; ID is NoWidget
	ConsumedBy WidgetID     // consumer of the event itself
	Entered    WidgetID     // widget that became hovered, if the hover changed
	Left       WidgetID     // widget that stopped being hovered, if the hover changed
	Redraw     bool
}

// Dispatcher routes events through a widget tree. It remembers the pointer
// position, pressed buttons and modifiers between calls and tracks which
// widget is hovered, synthesizing PointerInsideEvents when that changes.
//
// A Dispatcher is not safe for concurrent use; drive it from the thread that
// owns the window.
type Dispatcher struct {
	pointer    Point
	inWindow   bool
	buttons    MouseButtons
	modifiers  Modifiers
	lastInside WidgetID

	now    func() time.Time
	logger *slog.Logger
	store  EventStore
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock replaces time.Now as the source of event timestamps.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithEventStore forwards every dispatch to store.
func WithEventStore(store EventStore) DispatcherOption {
	return func(d *Dispatcher) {
		d.store = store
	}
}

// NewDispatcher creates a dispatcher with no hovered widget and the pointer
// outside the window.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		now:    time.Now,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the debug logger. nil restores the discard logger.
func (d *Dispatcher) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	d.logger = l
}

// SetEventStore sets or clears the ECS bridge.
func (d *Dispatcher) SetEventStore(store EventStore) {
	d.store = store
}

// Pointer returns the last known pointer position and whether the pointer is
// currently inside the window.
func (d *Dispatcher) Pointer() (Point, bool) {
	return d.pointer, d.inWindow
}

// Buttons returns the currently pressed mouse buttons.
func (d *Dispatcher) Buttons() MouseButtons {
	return d.buttons
}

// Modifiers returns the current modifier state.
func (d *Dispatcher) Modifiers() Modifiers {
	return d.modifiers
}

// Hovered returns the id of the hovered widget, or NoWidget.
func (d *Dispatcher) Hovered() WidgetID {
	return d.lastInside
}

// Dispatch delivers e to the tree rooted at root, laid out in a viewport of
// the given size. It reports whether anything consumed the event or a hover
// transition it caused, in which case the caller should schedule a redraw.
func (d *Dispatcher) Dispatch(e Event, viewport Size, root Widget) bool {
	d.track(e)
	base := d.context()
	rec := DispatchRecord{Event: e, Context: base}

	var hoverConsumed bool
	if root != nil && (isPointerMotion(e) || isPointerLeft(e)) {
		hoverConsumed = d.updateHover(root, viewport, base, &rec)
	}

	// A window-level PointerInsideEvent only moves hover; widgets see the
	// per-widget edges synthesized above, never the crossing itself.
	var by WidgetID
	if _, crossing := e.(PointerInsideEvent); root != nil && !crossing {
		by = d.route(root, viewport, base, e)
		d.notify(root, viewport, base, e, by)
	}
	if by != NoWidget {
		d.logger.Debug("event consumed", "event", eventName(e), "by", by)
	}

	rec.ConsumedBy = by
	rec.Redraw = by != NoWidget || hoverConsumed
	if d.store != nil {
		d.store.EmitEvent(rec)
	}
	return rec.Redraw
}

// track folds e into the remembered input state. It runs for every event,
// whether or not any widget ends up receiving it.
func (d *Dispatcher) track(e Event) {
	switch e := e.(type) {
	case AxisEvent:
		if m, ok := e.Axis.(Motion); ok {
			d.pointer = m.Pos
			d.inWindow = true
		}
	case MouseButtonEvent:
		if e.Pressed {
			d.buttons |= e.Button.Mask()
		} else {
			d.buttons &^= e.Button.Mask()
		}
	case ModifiersEvent:
		d.modifiers = e.Modifiers
	case PointerInsideEvent:
		d.inWindow = e.Inside
	}
}

func (d *Dispatcher) context() EventContext {
	return EventContext{
		Time:      d.now(),
		Pointer:   d.pointer,
		Buttons:   d.buttons,
		Modifiers: d.modifiers,
	}
}

// contextFor adjusts base for the widget at f.
func contextFor(base EventContext, f *Frame) EventContext {
	ctx := base
	ctx.Local = base.Pointer.Sub(f.Abs.Point)
	ctx.ID = f.ID
	ctx.ParentID = f.ParentID
	return ctx
}

// updateHover finds the deepest widget under the pointer and, if it differs
// from the last one, sends a leave to the old widget and an enter to the new.
func (d *Dispatcher) updateHover(root Widget, viewport Size, base EventContext, rec *DispatchRecord) bool {
	found := NoWidget
	if d.inWindow {
		found = HitTest(root, viewport, d.pointer)
	}
	if found == d.lastInside {
		return false
	}

	prev := d.lastInside
	d.lastInside = found
	rec.Left, rec.Entered = prev, found
	d.logger.Debug("hover changed", "from", prev, "to", found)

	var consumed bool
	if prev != NoWidget && d.deliver(root, viewport, base, prev, PointerInsideEvent{Inside: false}) {
		consumed = true
	}
	if found != NoWidget && d.deliver(root, viewport, base, found, PointerInsideEvent{Inside: true}) {
		consumed = true
	}
	return consumed
}

// deliver sends e to the single widget with the given id, followed by a
// consumed-notification pass. Widgets that have left the tree get nothing.
func (d *Dispatcher) deliver(root Widget, viewport Size, base EventContext, id WidgetID, e Event) bool {
	f, ok := Find(root, viewport, id)
	if !ok {
		return false
	}
	by := NoWidget
	if f.Widget.Event(contextFor(base, &f), e) == Consumed {
		by = id
	}
	d.notify(root, viewport, base, e, by)
	return by != NoWidget
}

// route runs the primary dispatch: children before parents, last child
// first, halting at the first consumer. Position-dependent events skip every
// widget whose visible region does not contain the pointer.
func (d *Dispatcher) route(root Widget, viewport Size, base EventContext, e Event) WidgetID {
	w := Walk{Order: PostOrder, Reverse: true}
	if PositionDependent(e) {
		if !d.inWindow {
			return NoWidget
		}
		p := d.pointer
		w.Filter = func(f *Frame) bool { return f.Visible && f.Clip.Contains(p) }
	}
	by, _ := Visit(root, viewport, w, func(f *Frame) (WidgetID, Step) {
		if f.Widget.Event(contextFor(base, f), e) == Consumed {
			return f.ID, Stop
		}
		return NoWidget, Continue
	})
	return by
}

// notify tells every widget who consumed e.
func (d *Dispatcher) notify(root Widget, viewport Size, base EventContext, e Event, by WidgetID) {
	forEach(root, viewport, func(f *Frame) {
		f.Widget.EventConsumed(contextFor(base, f), e, by)
	})
}
