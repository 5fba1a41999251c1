package osier

// Sample is one raw pointer signal: which button, what happened to it, where
// the cursor was, and which modifier keys were held. Samples are immutable
// value objects produced by a Poller (or injected synthetically) and consumed
// by the per-button trackers.
type Sample struct {
	Button    Button
	Kind      SampleKind
	Position  Vec2
	Modifiers KeyModifiers
}

// Poller supplies the per-tick raw input. Poll returns the net signal for a
// single button this tick, or ok=false when the button produced no signal.
// The router calls Poll at most once per monitored button per tick; a Poller
// must never report the same edge (press or release) on two consecutive
// ticks.
type Poller interface {
	Poll(button Button) (sample Sample, ok bool)
}
