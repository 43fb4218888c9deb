package bramble

// Injected input is queued on the window and fed through HandleEvent one step
// per Tick, exactly like backend input. A step may hold several events, e.g.
// the pointer motion that precedes a button press.

// InjectEvents queues events to be handled together on one tick.
func (w *Window) InjectEvents(events ...Event) {
	if len(events) == 0 {
		return
	}
	w.injectQueue = append(w.injectQueue, events)
}

// InjectMove queues a pointer move to p.
func (w *Window) InjectMove(p Point) {
	w.InjectEvents(AxisEvent{Axis: Motion{Pos: p}})
}

// InjectPress queues a left-button press at p.
func (w *Window) InjectPress(p Point) {
	w.InjectEvents(
		AxisEvent{Axis: Motion{Pos: p}},
		MouseButtonEvent{Pressed: true, Button: MouseButtonLeft},
	)
}

// InjectRelease queues a left-button release at p.
func (w *Window) InjectRelease(p Point) {
	w.InjectEvents(
		AxisEvent{Axis: Motion{Pos: p}},
		MouseButtonEvent{Pressed: false, Button: MouseButtonLeft},
	)
}

// InjectClick queues a press followed by a release at p. Consumes two ticks.
func (w *Window) InjectClick(p Point) {
	w.InjectPress(p)
	w.InjectRelease(p)
}

// InjectDrag queues a press at from, frames-2 linearly interpolated moves and
// a release at to. Minimum frames is 2 (press + release).
func (w *Window) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := float64(from.X) + float64(to.X-from.X)*t
		y := float64(from.Y) + float64(to.Y-from.Y)*t
		w.InjectMove(Pt(int32(x), int32(y)))
	}
	w.InjectRelease(to)
}

// InjectScroll queues a scroll at p.
func (w *Window) InjectScroll(p Point, dx, dy float32) {
	w.InjectEvents(
		AxisEvent{Axis: Motion{Pos: p}},
		AxisEvent{Axis: Scroll{DX: dx, DY: dy}},
	)
}

// InjectKey queues a press and release of k.
func (w *Window) InjectKey(k Key) {
	w.InjectEvents(KeyEvent{Pressed: true, Key: k})
	w.InjectEvents(KeyEvent{Pressed: false, Key: k})
}

// InjectText queues one CharEvent per rune of s, all on a single tick.
func (w *Window) InjectText(s string) {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, CharEvent{Char: r})
	}
	w.InjectEvents(events...)
}

// Pending reports how many injected steps are still queued.
func (w *Window) Pending() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one step from the inject queue and handles its
// events. Returns true if a step was processed.
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	step := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue[len(w.injectQueue)-1] = nil
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	for _, e := range step {
		w.HandleEvent(e)
	}
	return true
}
