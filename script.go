package arbor

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ScriptStep is a single action in an input script.
type ScriptStep struct {
	Action  string  `toml:"action"` // hover, press, move, release, click, drag, leave, wait
	Pointer int     `toml:"pointer"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	FromX   float64 `toml:"from_x"`
	FromY   float64 `toml:"from_y"`
	ToX     float64 `toml:"to_x"`
	ToY     float64 `toml:"to_y"`
	Frames  int     `toml:"frames"`
}

type inputScript struct {
	Steps []ScriptStep `toml:"step"`
}

// ScriptRunner sequences injected input across frames. Attach it with
// Scene.SetScript; each Update advances it before input is processed.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a TOML input script:
//
//	[[step]]
//	action = "hover"
//	x = 10
//	y = 10
//
//	[[step]]
//	action = "wait"
//	frames = 3
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if _, err := toml.Decode(string(data), &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return NewScriptRunner(script.Steps)
}

// NewScriptRunner validates steps and returns a runner for them.
func NewScriptRunner(steps []ScriptStep) (*ScriptRunner, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range steps {
		switch st.Action {
		case "hover", "press", "move", "release", "click", "drag", "leave", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: steps}, nil
}

// SetScript attaches runner to the scene. nil detaches the current one.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether every step has been executed and its input consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
	case "hover":
		s.InjectPointer(st.Pointer, st.X, st.Y, false, MouseButtonLeft, 0)
	case "press", "move":
		s.InjectPointer(st.Pointer, st.X, st.Y, true, MouseButtonLeft, 0)
	case "release":
		s.InjectPointer(st.Pointer, st.X, st.Y, false, MouseButtonLeft, 0)
	case "click":
		s.InjectPointer(st.Pointer, st.X, st.Y, true, MouseButtonLeft, 0)
		s.InjectPointer(st.Pointer, st.X, st.Y, false, MouseButtonLeft, 0)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "leave":
		s.InjectLeave(st.Pointer)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
