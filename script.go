package osier

import (
	"encoding/json"
	"fmt"
)

// scenarioStep represents a single action in a scenario script.
type scenarioStep struct {
	Action string  `json:"action"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario.
type scenarioScript struct {
	Steps []scenarioStep `json:"steps"`
}

// ScenarioRunner sequences injected samples across ticks from a JSON
// script, for automated interaction testing. Call Step once per tick,
// before Tick (or Update), until Done reports true.
//
// Supported actions: "press", "move", "release" (button, x, y),
// "click", "doubleclick" (button, x, y), "drag" (button, fromX/fromY,
// toX/toY, frames), and "wait" (frames) — wait ticks let the multi-click
// window expire between clicks.
type ScenarioRunner struct {
	steps     []scenarioStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScenario parses a JSON scenario script.
func LoadScenario(jsonData []byte) (*ScenarioRunner, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("osier: parse scenario: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("osier: parse scenario: no steps")
	}
	for _, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "doubleclick", "drag", "wait":
		default:
			return nil, fmt.Errorf("osier: parse scenario: unknown action %q", st.Action)
		}
	}
	return &ScenarioRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the scenario have been executed and
// their injected samples consumed.
func (sr *ScenarioRunner) Done() bool {
	return sr.done
}

// Step advances the scenario by one tick, queueing injections on the
// router. It waits for pending injections to drain before moving to the
// next step, so multi-tick sequences (drags, double clicks) play out at
// one sample per tick.
func (sr *ScenarioRunner) Step(r *Router) {
	if sr.done {
		return
	}
	if r.PendingInjections() > 0 {
		return
	}
	if sr.waitCount > 0 {
		sr.waitCount--
		return
	}
	if sr.cursor >= len(sr.steps) {
		sr.done = true
		return
	}

	st := sr.steps[sr.cursor]
	sr.cursor++
	b := parseButton(st.Button)

	switch st.Action {
	case "press":
		r.InjectPress(b, st.X, st.Y)
	case "move":
		r.InjectDragTo(b, st.X, st.Y)
	case "release":
		r.InjectRelease(b, st.X, st.Y)
	case "click":
		r.InjectClick(b, st.X, st.Y)
	case "doubleclick":
		r.InjectDoubleClick(b, st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.InjectDrag(b, st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			sr.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if sr.cursor >= len(sr.steps) && sr.waitCount == 0 && r.PendingInjections() == 0 {
		sr.done = true
	}
}

// parseButton maps a scenario button name to a Button. Unnamed or unknown
// buttons default to the primary button.
func parseButton(name string) Button {
	switch name {
	case "secondary", "right":
		return ButtonSecondary
	case "auxiliary", "middle":
		return ButtonAuxiliary
	default:
		return ButtonPrimary
	}
}
