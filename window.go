package bramble

import "log/slog"

// Window owns a root widget and connects it to a backend: it negotiates the
// window size, routes backend events through a Dispatcher and produces a
// DrawQueue for each frame.
//
// Like the Dispatcher, a Window must only be used from the thread that owns
// the backend window.
type Window struct {
	attrs      WindowAttributes
	root       Widget
	dispatcher *Dispatcher
	queue      DrawQueue
	logger     *slog.Logger

	negotiated     bool
	redraw         bool
	closeRequested bool

	injectQueue [][]Event
	testRunner  *TestRunner
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithAttributes replaces the default window attributes.
func WithAttributes(a WindowAttributes) WindowOption {
	return func(w *Window) {
		w.attrs = a
	}
}

// WithWindowLogger sets the logger for the window and its dispatcher.
func WithWindowLogger(l *slog.Logger) WindowOption {
	return func(w *Window) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDispatcher replaces the window's dispatcher.
func WithDispatcher(d *Dispatcher) WindowOption {
	return func(w *Window) {
		if d != nil {
			w.dispatcher = d
		}
	}
}

// NewWindow creates a window around root. A nil root gives an empty window.
func NewWindow(root Widget, opts ...WindowOption) *Window {
	if root == nil {
		root = NewSlot(nil)
	}
	w := &Window{
		attrs:  DefaultWindowAttributes(),
		root:   root,
		logger: discardLogger,
		redraw: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.dispatcher == nil {
		w.dispatcher = NewDispatcher(WithLogger(w.logger))
	}
	return w
}

// SetLogger replaces the logger of the window and its dispatcher. nil
// restores the discard logger.
func (w *Window) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	w.logger = l
	w.dispatcher.SetLogger(l)
}

// Logger returns the window's logger.
func (w *Window) Logger() *slog.Logger {
	return w.logger
}

// Root returns the root widget.
func (w *Window) Root() Widget {
	return w.root
}

// Dispatcher returns the window's event dispatcher.
func (w *Window) Dispatcher() *Dispatcher {
	return w.dispatcher
}

// Attributes returns the window attributes. Changes made through the pointer
// take effect on the next frame.
func (w *Window) Attributes() *WindowAttributes {
	return &w.attrs
}

// Size returns the current window size, negotiating it first if needed.
func (w *Window) Size() Size {
	if !w.negotiated {
		return w.Negotiate()
	}
	return w.attrs.SizeOrDefault()
}

// SetSize requests a new window size and lays out the tree for it.
func (w *Window) SetSize(s Size) {
	w.attrs.SetSize(s)
	w.negotiated = false
	w.Negotiate()
}

// Negotiate settles the window size and lays out the tree.
//
// With an explicit size the tree is laid out once at that size. Without one,
// the root's bounds (expanded to the origin) are used as the viewport for a
// layout pass, and the bounds the root reports afterwards become the window
// size. In both cases an empty size falls back to DefaultWindowSize.
func (w *Window) Negotiate() Size {
	w.negotiated = true
	w.redraw = true

	if size, ok := w.attrs.Size.Get(); ok && !size.Empty() {
		w.root.Layout(size)
		return size
	}

	size := w.contentSize()
	w.root.Layout(size)
	size = w.contentSize()
	w.attrs.Size.Set(size)
	w.logger.Debug("negotiated window size", "size", size.String())
	return size
}

func (w *Window) contentSize() Size {
	s := w.root.Bounds().ExpandToOrigin().Size
	if s.Empty() {
		return DefaultWindowSize
	}
	return s
}

// Relayout lays the tree out again at the current size. Call it after a
// change that affects widget sizes, such as new label text.
func (w *Window) Relayout() {
	w.root.Layout(w.Size())
	w.redraw = true
}

// HandleEvent applies window-level effects of e and dispatches it through the
// tree. It reports whether anything consumed the event.
func (w *Window) HandleEvent(e Event) bool {
	size := w.Size()
	switch e := e.(type) {
	case ResizeEvent:
		if !e.Size.Empty() && e.Size != size {
			w.attrs.Size.Set(e.Size)
			w.root.Layout(e.Size)
			size = e.Size
			w.redraw = true
		}
	case MoveEvent:
		w.attrs.Position.Set(e.Pos)
	case FocusEvent:
		w.attrs.Focused = e.Focused
	case CloseRequestEvent:
		w.closeRequested = true
	}

	consumed := w.dispatcher.Dispatch(e, size, w.root)
	if consumed {
		w.redraw = true
	}
	return consumed
}

// CloseRequested reports whether a CloseRequestEvent has been handled.
// Backends close the window when this is true.
func (w *Window) CloseRequested() bool {
	return w.closeRequested
}

// Close requests that the backend close the window, as if the user had.
func (w *Window) Close() {
	w.closeRequested = true
}

// CancelClose clears a pending close request.
func (w *Window) CancelClose() {
	w.closeRequested = false
}

// Tick advances the window by dt seconds: it runs the attached test runner,
// feeds at most one step of injected input and animates every Animator in
// the tree. It reports whether a redraw is needed.
func (w *Window) Tick(dt float32) bool {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInjectedInput()

	forEach(w.root, w.Size(), func(f *Frame) {
		if a, ok := f.Widget.(Animator); ok && a.Animate(dt) {
			w.redraw = true
		}
	})
	return w.redraw
}

// NeedsRedraw reports whether the window has changed since the last Draw.
func (w *Window) NeedsRedraw() bool {
	return w.redraw
}

// RequestRedraw forces the next NeedsRedraw to report true.
func (w *Window) RequestRedraw() {
	w.redraw = true
}

// Draw rebuilds the frame's draw queue: it clears the window to the
// background color and then draws every visible widget, parents before
// children, clipped to its visible region. The returned queue is reused by
// the next call. The first widget error stops the pass and is returned.
func (w *Window) Draw() (*DrawQueue, error) {
	size := w.Size()
	q := &w.queue
	q.Reset()
	q.Clear(RectAt(size), w.attrs.Background)

	var drawErr error
	Visit(w.root, size, Walk{Order: PreOrder}, func(f *Frame) (struct{}, Step) {
		if !f.Visible {
			return struct{}{}, SkipChildren
		}
		if err := f.Widget.Draw(DrawContext{Queue: q, Abs: f.Abs, Clip: f.Clip}); err != nil {
			drawErr = err
			return struct{}{}, Stop
		}
		return struct{}{}, Continue
	})
	w.redraw = false
	return q, drawErr
}
