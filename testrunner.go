package bramble

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      int32   `json:"x,omitempty"`
	Y      int32   `json:"y,omitempty"`
	FromX  int32   `json:"fromX,omitempty"`
	FromY  int32   `json:"fromY,omitempty"`
	ToX    int32   `json:"toX,omitempty"`
	ToY    int32   `json:"toY,omitempty"`
	DX     float32 `json:"dx,omitempty"`
	DY     float32 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and snapshots across frames for
// automated testing. Attach it to a Window with SetTestRunner.
//
// Supported actions: move, click, drag, scroll, type, key, wait, snapshot.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// OnSnapshot is called for each "snapshot" step with the step's label.
	// Backends set it to capture the screen.
	OnSnapshot func(label string)
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Window via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "drag", "scroll", "type", "wait", "snapshot":
		case "key":
			if _, ok := ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the window. The runner advances
// once per Tick, before injected input is processed.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Window.Tick.
func (r *TestRunner) step(w *Window) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		if r.OnSnapshot != nil {
			r.OnSnapshot(st.Label)
		}
	case "move":
		w.InjectMove(Pt(st.X, st.Y))
	case "click":
		w.InjectClick(Pt(st.X, st.Y))
	case "drag":
		w.InjectDrag(Pt(st.FromX, st.FromY), Pt(st.ToX, st.ToY), st.Frames)
	case "scroll":
		w.InjectScroll(Pt(st.X, st.Y), st.DX, st.DY)
	case "type":
		w.InjectText(st.Text)
	case "key":
		k, _ := ParseKey(st.Key)
		w.InjectKey(k)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
