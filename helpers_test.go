package bramble

import "fmt"

// probe is a test widget that records what it receives.
type probe struct {
	Group
	name    string
	log     *[]string
	consume func(e Event) bool

	lastCtx  EventContext
	notified []WidgetID
	animated float32
}

func newProbe(name string, r Rect, log *[]string, children ...Widget) *probe {
	p := &probe{name: name, log: log}
	p.SetBounds(r)
	p.Add(children...)
	return p
}

func (p *probe) Event(ctx EventContext, e Event) EventResult {
	p.lastCtx = ctx
	if p.log != nil {
		*p.log = append(*p.log, p.name+":"+shortEvent(e))
	}
	if p.consume != nil && p.consume(e) {
		return Consumed
	}
	return Pass
}

func (p *probe) EventConsumed(ctx EventContext, e Event, by WidgetID) {
	p.notified = append(p.notified, by)
}

func (p *probe) Animate(dt float32) bool {
	p.animated += dt
	return false
}

func (p *probe) Draw(ctx DrawContext) error {
	return ctx.FillBounds(White)
}

func shortEvent(e Event) string {
	switch e := e.(type) {
	case PointerInsideEvent:
		if e.Inside {
			return "enter"
		}
		return "leave"
	case AxisEvent:
		switch e.Axis.(type) {
		case Motion:
			return "motion"
		case Scroll:
			return "scroll"
		}
	case MouseButtonEvent:
		if e.Pressed {
			return "press"
		}
		return "release"
	case KeyEvent:
		return "key"
	case CharEvent:
		return fmt.Sprintf("char(%c)", e.Char)
	}
	return eventName(e)
}

func hoverOnly(log []string) []string {
	var out []string
	for _, s := range log {
		if n := len(s); n > 6 && (s[n-6:] == ":enter" || s[n-6:] == ":leave") {
			out = append(out, s)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func motion(x, y int32) AxisEvent {
	return AxisEvent{Axis: Motion{Pos: Pt(x, y)}}
}

func press(b MouseButton) MouseButtonEvent {
	return MouseButtonEvent{Pressed: true, Button: b}
}

func release(b MouseButton) MouseButtonEvent {
	return MouseButtonEvent{Pressed: false, Button: b}
}
