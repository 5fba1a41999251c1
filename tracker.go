package osier

import "math"

// tracker is the per-button state machine. It consumes the button's raw
// samples plus one advanceTick per host tick, and reports every state
// transition through notify. All mutation happens through advanceTick,
// processSample, and suspend — the router never pokes fields directly.
type tracker struct {
	button    Button
	kind      Kind
	modifiers KeyModifiers
	elapsed   float64 // seconds since the last state-affecting sample
	anchor    Vec2    // drag anchor, valid while kind.IsDrag()
	pressPos  Vec2    // where the current press began, for drag gating
	hasPress  bool
	position  Vec2
	// wasSuspended marks a gesture that began while the cursor was occluded.
	// Such a gesture must never complete as a drag or click once it resumes.
	wasSuspended bool

	cfg    *config
	notify func(Event)
}

// snapshot builds the immutable event value for the tracker's current state.
// Outside drag gestures the anchor is pinned to the position so DragDelta
// stays zero.
func (t *tracker) snapshot() Event {
	anchor := t.anchor
	if !t.kind.IsDrag() {
		anchor = t.position
	}
	return Event{
		Button:    t.button,
		Kind:      t.kind,
		Modifiers: t.modifiers,
		Anchor:    anchor,
		Position:  t.position,
	}
}

func (t *tracker) fire() {
	if t.notify != nil {
		t.notify(t.snapshot())
	}
}

// clear silently resets the machine to Idle. No notification fires; callers
// that want observers to see the reset call fire themselves.
func (t *tracker) clear() {
	t.kind = KindIdle
	t.elapsed = 0
	t.wasSuspended = false
	t.hasPress = false
}

// advanceTick runs once per host tick, before any of this tick's samples.
// It accumulates elapsed time, promotes a pending click whose multi-click
// window has expired, and retires terminal states after their single tick
// of observability.
func (t *tracker) advanceTick(dt float64) {
	if t.kind == KindIdle {
		return
	}
	t.elapsed += dt
	switch {
	case t.kind == KindSingleClickPending && t.elapsed >= t.cfg.multiClickTime:
		// The window expired with no second release: the lone release was a
		// single click after all.
		t.kind = KindSingleClick
		t.elapsed = 0
		t.fire()
	case t.kind.IsTerminal():
		t.clear()
		t.fire()
	}
}

// processSample feeds one raw sample into the machine. Samples for other
// buttons are ignored. Pressed samples only record the press position and
// modifiers; releases and drag motion drive the transitions.
func (t *tracker) processSample(s Sample) {
	if s.Button != t.button {
		return
	}
	switch s.Kind {
	case SampleReleased:
		t.release(s)
	case SampleDragging:
		t.drag(s)
	case SamplePressed:
		t.pressPos = s.Position
		t.hasPress = true
		t.wasSuspended = false
		t.position = s.Position
		t.modifiers = s.Modifiers
	}
}

// release applies the transition table for a released button.
func (t *tracker) release(s Sample) {
	if t.wasSuspended {
		// The gesture began while occluded; swallow its release so it can
		// never complete as a drag or click. The machine resets for the
		// next gesture without notifying anyone.
		t.clear()
		return
	}
	t.position = s.Position
	t.modifiers = s.Modifiers
	switch t.kind {
	case KindIdle:
		// A lone release is ambiguous: hold it as a tentative click until
		// the multi-click window decides.
		t.kind = KindSingleClickPending
		t.elapsed = 0
		t.fire()
	case KindSingleClickPending:
		// Second release while the window is still open.
		t.kind = KindDoubleClick
		t.elapsed = 0
		t.fire()
	case KindDragStart, KindDragging:
		t.kind = KindDragComplete
		t.elapsed = 0
		t.fire()
	default:
		// Out-of-sequence release: cancel whatever was pending.
		t.clear()
		t.fire()
	}
}

// drag applies the transition table for held-and-moved samples.
func (t *tracker) drag(s Sample) {
	if t.wasSuspended {
		return
	}
	switch {
	case t.kind == KindSingleClickPending:
		// Movement disambiguates the pending release: it was just a click.
		// The click does not retroactively become a drag, and the drag
		// machinery starts fresh with the next sample.
		t.kind = KindSingleClick
		t.elapsed = 0
		t.position = s.Position
		t.modifiers = s.Modifiers
		t.fire()
	case t.kind != KindDragStart && t.kind != KindDragging:
		if !t.pastDragThreshold(s.Position) {
			t.position = s.Position
			t.modifiers = s.Modifiers
			return
		}
		t.kind = KindDragStart
		t.anchor = s.Position
		t.elapsed = 0
		t.position = s.Position
		t.modifiers = s.Modifiers
		t.fire()
	default:
		t.kind = KindDragging
		t.elapsed = 0
		t.position = s.Position
		t.modifiers = s.Modifiers
		t.fire()
	}
}

// pastDragThreshold reports whether pos has traveled far enough from the
// press position for drag samples to open a gesture. Without a recorded
// press the gate passes so "impossible" sample orders still degrade to the
// plain transition table.
func (t *tracker) pastDragThreshold(pos Vec2) bool {
	if t.cfg.dragThreshold <= 0 || !t.hasPress {
		return true
	}
	return math.Hypot(pos.X-t.pressPos.X, pos.Y-t.pressPos.Y) >= t.cfg.dragThreshold
}

// suspend is invoked instead of processSample while the cursor is occluded.
// It records presses that begin under occlusion, lets a pending click
// finish its promotion, and cancels anything else in flight.
func (t *tracker) suspend(s Sample) {
	if s.Button != t.button {
		return
	}
	switch s.Kind {
	case SamplePressed:
		t.wasSuspended = true
		t.pressPos = s.Position
		t.hasPress = true
	case SampleDragging:
		// Swallowed with no state change: if the button is released after
		// occlusion ends, the release handler's wasSuspended check decides
		// whether the drag still completes.
	case SampleReleased:
		if t.kind == KindSingleClickPending {
			// A pending click isn't cancelled merely because the cursor is
			// now over a surface; the release promotes it as usual.
			t.kind = KindDoubleClick
			t.elapsed = 0
			t.position = s.Position
			t.modifiers = s.Modifiers
			t.fire()
			return
		}
		if t.kind != KindIdle {
			t.clear()
			t.fire()
			return
		}
		// The release ends a gesture that never left Idle under occlusion.
		t.wasSuspended = false
		t.hasPress = false
	default:
		if t.kind != KindIdle {
			t.clear()
			t.fire()
		}
	}
}
