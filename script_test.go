package osier

import "testing"

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{steps: [}`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "hover"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScenario([]byte(tt.json)); err == nil {
				t.Errorf("LoadScenario(%s) succeeded", tt.json)
			}
		})
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		name string
		want Button
	}{
		{"", ButtonPrimary},
		{"primary", ButtonPrimary},
		{"secondary", ButtonSecondary},
		{"right", ButtonSecondary},
		{"auxiliary", ButtonAuxiliary},
		{"middle", ButtonAuxiliary},
	}
	for _, tt := range tests {
		if got := parseButton(tt.name); got != tt.want {
			t.Errorf("parseButton(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// runScenario drives the runner and router together until the scenario
// completes, with a tick cap so a stuck runner fails instead of hanging.
func runScenario(t *testing.T, sr *ScenarioRunner, r *Router, dt float64) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		sr.Step(r)
		r.Tick(dt)
		if sr.Done() {
			return
		}
	}
	t.Fatal("scenario did not complete within 1000 ticks")
}

func TestScenarioClickThenDrag(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "wait", "frames": 30},
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 20, "toY": 10, "frames": 4}
	]}`)

	sr, err := LoadScenario(script)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRouter()
	r.StartMonitoring(ButtonPrimary)
	if err := r.SetMultiClickTime(0.2); err != nil {
		t.Fatal(err)
	}

	var got []Kind
	r.OnEvent(func(e Event) { got = append(got, e.Kind) })

	runScenario(t, sr, r, 0.016) // 30 wait frames ≈ 0.48s, past the window

	want := []Kind{
		KindSingleClickPending, KindSingleClick, KindIdle,
		KindDragStart, KindDragging, KindDragComplete, KindIdle,
	}
	if !kindsEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestScenarioDoubleClick(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "doubleclick", "button": "secondary", "x": 5, "y": 5}
	]}`)

	sr, err := LoadScenario(script)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRouter()
	r.StartMonitoring(ButtonSecondary)

	var doubles int
	r.OnDoubleClick(func(e Event) {
		doubles++
		if e.Button != ButtonSecondary {
			t.Errorf("button = %v, want Secondary", e.Button)
		}
	})

	runScenario(t, sr, r, 0.01)

	if doubles != 1 {
		t.Errorf("doubles = %d, want 1", doubles)
	}
}

func TestScenarioPressMoveRelease(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "press", "x": 0, "y": 0},
		{"action": "move", "x": 30, "y": 0},
		{"action": "move", "x": 60, "y": 0},
		{"action": "release", "x": 60, "y": 0}
	]}`)

	sr, err := LoadScenario(script)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRouter()
	r.StartMonitoring(ButtonPrimary)
	if err := r.SetDragThreshold(10); err != nil {
		t.Fatal(err)
	}

	var complete Event
	r.OnDragComplete(func(e Event) { complete = e })

	runScenario(t, sr, r, 0.016)

	if complete.Kind != KindDragComplete {
		t.Fatalf("no drag completion, got %+v", complete)
	}
	if d := complete.DragDelta(); d != (Vec2{X: 30, Y: 0}) {
		t.Errorf("delta = %+v, want (30, 0) from the threshold-gated anchor", d)
	}
}

func TestScenarioWaitsForInjectionDrain(t *testing.T) {
	sr, err := LoadScenario([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "press", "x": 99, "y": 99}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	r := NewRouter()
	r.StartMonitoring(ButtonPrimary)

	// Step 1: click queues press+release.
	sr.Step(r)
	if r.PendingInjections() != 2 {
		t.Fatalf("expected 2 pending samples, got %d", r.PendingInjections())
	}

	// Stepping again must not advance while samples are still queued.
	sr.Step(r)
	if sr.cursor != 1 {
		t.Errorf("cursor = %d, want 1 while injections pending", sr.cursor)
	}

	r.Tick(0.01)
	r.Tick(0.01)

	// Queue drained, the press step may now run.
	sr.Step(r)
	if r.PendingInjections() != 1 {
		t.Errorf("expected the press step to queue 1 sample, got %d", r.PendingInjections())
	}
}

func TestScenarioDoneAfterDrain(t *testing.T) {
	sr, err := LoadScenario([]byte(`{"steps": [{"action": "press", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}

	r := NewRouter()
	r.StartMonitoring(ButtonPrimary)

	if sr.Done() {
		t.Fatal("runner done before stepping")
	}
	sr.Step(r)
	r.Tick(0.01)
	sr.Step(r)
	if !sr.Done() {
		t.Error("runner not done after its only step drained")
	}
}
